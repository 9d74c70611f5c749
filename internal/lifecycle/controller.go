// Package lifecycle owns the exam state machine:
//
//	uploaded -> processing -> processed_success | processed_error | error_processing_fatal
//	uploaded -> error_no_input_path
//
// Every status change is a conditional update from the expected status,
// written together with its history event.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/exam_analyzer/internal/domain"
)

const (
	MessageStarted     = "analysis started in background, poll the exam status"
	MessageInProgress  = "analysis already in progress"
	MessageInterrupted = "analysis interrupted by restart"

	// a lost conditional update is retried once per status change, and the
	// status can change at most twice before the guards turn it down
	maxGuardAttempts = 3
)

type StartResult struct {
	ExamID    uuid.UUID `json:"exam_id"`
	Message   string    `json:"message"`
	Scheduled bool      `json:"-"`
}

type Controller struct {
	log          *slog.Logger
	exams        ExamRepository
	events       EventRepository
	tx           Transactor
	blobs        BlobStore
	tasks        TaskSubmitter
	analyzer     Analyzer
	renderer     ReportRenderer
	uploadBucket string
}

func NewController(
	log *slog.Logger,
	exams ExamRepository,
	events EventRepository,
	tx Transactor,
	blobs BlobStore,
	tasks TaskSubmitter,
	analyzer Analyzer,
	renderer ReportRenderer,
	uploadBucket string,
) *Controller {
	return &Controller{
		log:          log,
		exams:        exams,
		events:       events,
		tx:           tx,
		blobs:        blobs,
		tasks:        tasks,
		analyzer:     analyzer,
		renderer:     renderer,
		uploadBucket: uploadBucket,
	}
}

// Create stores every file under {examId}/{filename} and records the exam as
// uploaded. Blobs written before a later failure are not removed.
func (c *Controller) Create(ctx context.Context, files []*domain.UploadFile) (*domain.Exam, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFiles
	}

	for _, f := range files {
		if err := validateFilename(f.Name); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	exam := &domain.Exam{
		ID:                uuid.New(),
		Status:            domain.StatusUploaded,
		CreatedAt:         now,
		UpdatedAt:         now,
		OriginalFilenames: make([]string, 0, len(files)),
		RawFilePaths:      make([]string, 0, len(files)),
	}

	log := c.log.With(slog.String("exam_id", exam.ID.String()))

	for _, f := range files {
		path, err := c.blobs.Put(ctx, c.uploadBucket, exam.ID.String()+"/"+f.Name, f.Data, f.ContentType)
		if err != nil {
			c.logOrphans(ctx, log, exam.RawFilePaths)
			return nil, fmt.Errorf("failed to store %s: %w", f.Name, err)
		}

		exam.OriginalFilenames = append(exam.OriginalFilenames, f.Name)
		exam.RawFilePaths = append(exam.RawFilePaths, path)

		if exam.PrincipalInputPath == nil && domain.IsVolumetric(f.Name) {
			exam.PrincipalInputPath = &path
		}
	}

	err := c.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := c.exams.CreateExam(ctx, exam); err != nil {
			return err
		}

		return c.events.AppendEvents(ctx, &domain.ExamEvent{
			ExamID:    exam.ID,
			ToStatus:  domain.StatusUploaded,
			Message:   fmt.Sprintf("%d file(s) uploaded", len(files)),
			CreatedAt: now,
		})
	})
	if err != nil {
		c.logOrphans(ctx, log, exam.RawFilePaths)
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	log.InfoContext(ctx, "exam created",
		slog.Int("files", len(files)),
		slog.Bool("has_principal_input", exam.PrincipalInputPath != nil),
	)

	return exam, nil
}

func (c *Controller) Exam(ctx context.Context, id uuid.UUID) (*domain.Exam, error) {
	exam, err := c.exams.ExamByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}

	return exam, nil
}

func (c *Controller) Exams(ctx context.Context, status *domain.Status, limit, offset uint64) ([]*domain.Exam, int, error) {
	if status != nil && !status.IsValid() {
		return nil, 0, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *status)
	}

	exams, total, err := c.exams.Exams(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exams: %w", err)
	}

	return exams, total, nil
}

func (c *Controller) Events(ctx context.Context, id uuid.UUID, limit, offset uint64) ([]*domain.ExamEvent, int, error) {
	if _, err := c.exams.ExamByID(ctx, id); err != nil {
		return nil, 0, fmt.Errorf("failed to get exam: %w", err)
	}

	events, total, err := c.events.Events(ctx, id, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exam events: %w", err)
	}

	return events, total, nil
}

// StartAnalysis moves an uploaded exam to processing and schedules the
// analysis task. A call that finds the exam already processing is a no-op.
func (c *Controller) StartAnalysis(ctx context.Context, id uuid.UUID) (*StartResult, error) {
	log := c.log.With(slog.String("exam_id", id.String()))

	for range maxGuardAttempts {
		exam, err := c.exams.ExamByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get exam: %w", err)
		}

		result, err := c.startAnalysis(ctx, log, exam)
		if errors.Is(err, domain.ErrStatusChanged) {
			log.DebugContext(ctx, "exam status changed concurrently, re-checking guards")
			continue
		}

		return result, err
	}

	return nil, fmt.Errorf("failed to start analysis: %w", domain.ErrStatusChanged)
}

func (c *Controller) startAnalysis(ctx context.Context, log *slog.Logger, exam *domain.Exam) (*StartResult, error) {
	switch {
	case exam.Status == domain.StatusProcessing:
		log.InfoContext(ctx, "analysis already in progress")
		return &StartResult{ExamID: exam.ID, Message: MessageInProgress}, nil

	case exam.Status.IsTerminal():
		return nil, fmt.Errorf("%w: status is %s", domain.ErrConflict, exam.Status)

	case exam.Status != domain.StatusUploaded:
		return nil, fmt.Errorf("%w: status is %s", domain.ErrInvalidState, exam.Status)
	}

	if reason := c.checkPrincipal(exam); reason != "" {
		err := c.transition(ctx, exam.ID, domain.StatusUploaded, &domain.ExamUpdate{
			Status:       domain.StatusErrorNoInputPath,
			UpdatedAt:    time.Now().UTC(),
			ErrorMessage: &reason,
		}, reason)
		if errors.Is(err, domain.ErrStatusChanged) {
			return nil, err
		}
		if err != nil {
			log.ErrorContext(ctx, "failed to record missing input", slog.String("err", err.Error()))
		}

		return nil, fmt.Errorf("%w: %s", domain.ErrBadInput, reason)
	}

	err := c.transition(ctx, exam.ID, domain.StatusUploaded, &domain.ExamUpdate{
		Status:    domain.StatusProcessing,
		UpdatedAt: time.Now().UTC(),
	}, "analysis scheduled")
	if err != nil {
		if errors.Is(err, domain.ErrStatusChanged) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if err := c.tasks.Submit("analysis "+exam.ID.String(), func(ctx context.Context) {
		c.runAnalysis(ctx, exam.ID)
	}); err != nil {
		c.failScheduling(ctx, log, exam.ID, err)
		return nil, fmt.Errorf("%w: failed to schedule analysis: %w", domain.ErrDependencyUnavailable, err)
	}

	log.InfoContext(ctx, "analysis scheduled", slog.String("input", *exam.PrincipalInputPath))

	return &StartResult{ExamID: exam.ID, Message: MessageStarted, Scheduled: true}, nil
}

// checkPrincipal returns why the principal input cannot be analyzed, or "".
func (c *Controller) checkPrincipal(exam *domain.Exam) string {
	if exam.PrincipalInputPath == nil || *exam.PrincipalInputPath == "" {
		return "no volumetric input file (.nii or .nii.gz) was uploaded"
	}

	if err := c.blobs.Validate(*exam.PrincipalInputPath); err != nil {
		return fmt.Sprintf("principal input path is invalid: %v", err)
	}

	return ""
}

func (c *Controller) failScheduling(ctx context.Context, log *slog.Logger, id uuid.UUID, cause error) {
	message := fmt.Sprintf("failed to schedule analysis: %v", cause)

	err := c.transition(ctx, id, domain.StatusProcessing, &domain.ExamUpdate{
		Status:       domain.StatusErrorProcessingFatal,
		UpdatedAt:    time.Now().UTC(),
		ErrorMessage: &message,
	}, message)
	if err != nil {
		log.ErrorContext(ctx, "failed to finalize unscheduled exam", slog.String("err", err.Error()))
	}
}

// runAnalysis is the body of the background task. Its outcome only lands in
// the exam record or in the log.
func (c *Controller) runAnalysis(ctx context.Context, id uuid.UUID) {
	log := c.log.With(slog.String("exam_id", id.String()))

	exam, err := c.exams.ExamByID(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "failed to load exam, analysis aborted", slog.String("err", err.Error()))
		return
	}

	if exam.Status != domain.StatusProcessing {
		log.WarnContext(ctx, "exam is no longer processing, analysis aborted", slog.String("status", string(exam.Status)))
		return
	}

	update := c.analyze(ctx, exam)

	message := "analysis finished"
	if update.ErrorMessage != nil {
		message = *update.ErrorMessage
	}

	if err := c.transition(ctx, id, domain.StatusProcessing, update, message); err != nil {
		log.ErrorContext(ctx, "failed to store analysis outcome",
			slog.String("status", string(update.Status)),
			slog.String("err", err.Error()),
		)
		return
	}

	log.InfoContext(ctx, "analysis finished", slog.String("status", string(update.Status)))
}

func (c *Controller) analyze(ctx context.Context, exam *domain.Exam) (update *domain.ExamUpdate) {
	defer func() {
		if r := recover(); r != nil {
			update = fatalUpdate(fmt.Sprintf("fatal analysis error: %v", r))
		}
	}()

	if exam.PrincipalInputPath == nil {
		return fatalUpdate("fatal analysis error: principal input path is missing")
	}

	result, err := c.analyzer.Analyze(ctx, exam.ID, *exam.PrincipalInputPath)
	if err != nil {
		return fatalUpdate(fmt.Sprintf("fatal analysis error: %v", err))
	}

	now := time.Now().UTC()

	if result.Failed() {
		return &domain.ExamUpdate{
			Status:             domain.StatusProcessedError,
			UpdatedAt:          now,
			OutputFindingsPath: optional(result.FindingsPath),
			ErrorMessage:       &result.Failure,
		}
	}

	return &domain.ExamUpdate{
		Status:             domain.StatusProcessedSuccess,
		UpdatedAt:          now,
		OutputMaskPath:     optional(result.MaskPath),
		OutputFindingsPath: optional(result.FindingsPath),
	}
}

// Report renders the findings of a successfully processed exam as a PDF.
func (c *Controller) Report(ctx context.Context, id uuid.UUID) (_ []byte, err error) {
	exam, err := c.exams.ExamByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}

	if exam.Status != domain.StatusProcessedSuccess {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrReportUnavailable, exam.Status)
	}

	if exam.OutputFindingsPath == nil || c.blobs.Validate(*exam.OutputFindingsPath) != nil {
		return nil, domain.ErrFindingsNotFound
	}

	tmpDir, err := os.MkdirTemp("", "report-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer func() { err = errors.Join(err, os.RemoveAll(tmpDir)) }()

	local := filepath.Join(tmpDir, "findings.txt")
	if err := c.blobs.Get(ctx, *exam.OutputFindingsPath, local); err != nil {
		if errors.Is(err, domain.ErrBlobNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrFindingsNotFound, err)
		}
		return nil, fmt.Errorf("failed to download findings: %w", err)
	}

	findings, err := os.ReadFile(local)
	if err != nil {
		return nil, fmt.Errorf("failed to read findings: %w", err)
	}

	return c.renderer.Render(exam.ID.String(), string(findings))
}

// Reconcile finalizes exams left in processing by a previous process.
func (c *Controller) Reconcile(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	var ids []uuid.UUID
	err := c.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		ids, err = c.exams.FailProcessing(ctx, MessageInterrupted, now)
		if err != nil {
			return err
		}

		events := make([]*domain.ExamEvent, 0, len(ids))
		for _, id := range ids {
			events = append(events, &domain.ExamEvent{
				ExamID:     id,
				FromStatus: domain.StatusProcessing,
				ToStatus:   domain.StatusErrorProcessingFatal,
				Message:    MessageInterrupted,
				CreatedAt:  now,
			})
		}

		return c.events.AppendEvents(ctx, events...)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile processing exams: %w", err)
	}

	return len(ids), nil
}

func (c *Controller) transition(
	ctx context.Context,
	id uuid.UUID,
	from domain.Status,
	update *domain.ExamUpdate,
	message string,
) error {
	return c.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := c.exams.TransitionStatus(ctx, id, from, update); err != nil {
			return err
		}

		return c.events.AppendEvents(ctx, &domain.ExamEvent{
			ExamID:     id,
			FromStatus: from,
			ToStatus:   update.Status,
			Message:    message,
			CreatedAt:  update.UpdatedAt,
		})
	})
}

func (c *Controller) logOrphans(ctx context.Context, log *slog.Logger, paths []string) {
	if len(paths) == 0 {
		return
	}

	log.WarnContext(ctx, "uploaded blobs left without an exam record", slog.Any("paths", paths))
}

func validateFilename(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", domain.ErrInvalidFilename, name)
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q", domain.ErrInvalidFilename, name)
	}

	return nil
}

func fatalUpdate(message string) *domain.ExamUpdate {
	return &domain.ExamUpdate{
		Status:       domain.StatusErrorProcessingFatal,
		UpdatedAt:    time.Now().UTC(),
		ErrorMessage: &message,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
