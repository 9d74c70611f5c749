package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/exam_analyzer/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorStatus(err error) int {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrBadInput),
		errors.Is(err, domain.ErrReportUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrExamNotFound),
		errors.Is(err, domain.ErrFindingsNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *ExamsHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)

	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.String("err", err.Error()),
		)
	}

	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
