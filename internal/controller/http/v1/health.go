package v1

import (
	"log/slog"
	"net/http"
)

// Readiness is measured once at startup.
type Readiness struct {
	Database  bool   `json:"database"`
	BlobStore bool   `json:"blob_store"`
	Analysis  string `json:"analysis"`
}

func (r Readiness) Ready() bool {
	return r.Database && r.BlobStore
}

type HealthResponse struct {
	Status string `json:"status"`
	Readiness
}

type HealthHandler struct {
	readiness Readiness
}

func NewHealthHandler(readiness Readiness) *HealthHandler {
	return &HealthHandler{readiness: readiness}
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, _ *http.Request) {
	status := "ok"
	if !h.readiness.Ready() {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: status, Readiness: h.readiness})
}

func requireReady(log *slog.Logger, readiness Readiness) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !readiness.Ready() {
				log.WarnContext(r.Context(), "rejecting request, dependencies are not ready",
					slog.Bool("database", readiness.Database),
					slog.Bool("blob_store", readiness.BlobStore),
				)
				writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "service dependencies are unavailable"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
