package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/exam_analyzer/internal/domain"
	"github.com/kurochkinivan/exam_analyzer/internal/lifecycle"
)

const (
	filesField      = "files"
	multipartMemory = 32 << 20

	formatJSON = "json"
	formatCSV  = "csv"
)

type ExamService interface {
	Create(ctx context.Context, files []*domain.UploadFile) (*domain.Exam, error)
	Exam(ctx context.Context, id uuid.UUID) (*domain.Exam, error)
	Exams(ctx context.Context, status *domain.Status, limit, offset uint64) ([]*domain.Exam, int, error)
	Events(ctx context.Context, id uuid.UUID, limit, offset uint64) ([]*domain.ExamEvent, int, error)
	StartAnalysis(ctx context.Context, id uuid.UUID) (*lifecycle.StartResult, error)
	Report(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type ExamsHandler struct {
	log           *slog.Logger
	exams         ExamService
	maxUploadSize int64
}

func NewExamsHandler(log *slog.Logger, exams ExamService, maxUploadSize int64) *ExamsHandler {
	return &ExamsHandler{
		log:           log,
		exams:         exams,
		maxUploadSize: maxUploadSize,
	}
}

type ListExamsResponse struct {
	Exams      []*domain.Exam `json:"exams"`
	Pagination Pagination     `json:"pagination"`
}

type ListEventsResponse struct {
	Events     []*domain.ExamEvent `json:"events"`
	Pagination Pagination          `json:"pagination"`
}

func (h *ExamsHandler) CreateExam(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: failed to parse multipart form: %w", domain.ErrValidation, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[filesField]

	files := make([]*domain.UploadFile, 0, len(headers))
	for _, fh := range headers {
		file, err := readUpload(fh)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", domain.ErrValidation, err))
			return
		}
		files = append(files, file)
	}

	exam, err := h.exams.Create(r.Context(), files)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, exam)
}

func (h *ExamsHandler) ListExams(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var status *domain.Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.Status(s)
		status = &st
	}

	exams, total, err := h.exams.Exams(r.Context(), status, limit, (page-1)*limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if exams == nil {
		exams = []*domain.Exam{}
	}

	writeJSON(w, http.StatusOK, ListExamsResponse{
		Exams:      exams,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *ExamsHandler) GetExam(w http.ResponseWriter, r *http.Request) {
	id, err := parseExamID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	exam, err := h.exams.Exam(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, exam)
}

func (h *ExamsHandler) StartAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := parseExamID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.exams.StartAnalysis(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, result)
}

func (h *ExamsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseExamID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	doc, err := h.exams.Report(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report_"+id.String()+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

func (h *ExamsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	id, err := parseExamID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatJSON
	}
	if format != formatJSON && format != formatCSV {
		h.writeError(w, r, fmt.Errorf("%w: format must be %q or %q", domain.ErrValidation, formatJSON, formatCSV))
		return
	}

	events, total, err := h.exams.Events(r.Context(), id, limit, (page-1)*limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if events == nil {
		events = []*domain.ExamEvent{}
	}

	if format == formatJSON {
		writeJSON(w, http.StatusOK, ListEventsResponse{
			Events:     events,
			Pagination: newPagination(page, limit, total),
		})
		return
	}

	data, err := csvutil.Marshal(events)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("failed to encode events: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func readUpload(fh *multipart.FileHeader) (_ *domain.UploadFile, err error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &domain.UploadFile{
		Name:        fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func parseExamID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "exam_id")

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrInvalidExamID, raw)
	}

	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
