package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/exam_analyzer/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(log *slog.Logger, cfg config.HTTP, exams ExamService, readiness Readiness) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, cfg, exams, readiness),
		},
	}
}

func NewRouter(log *slog.Logger, cfg config.HTTP, exams ExamService, readiness Readiness) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", NewHealthHandler(readiness).GetHealth)

	h := NewExamsHandler(log, exams, cfg.MaxUploadSize)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requireReady(log, readiness))

		r.Route("/exams", func(r chi.Router) {
			r.Post("/", h.CreateExam)
			r.Get("/", h.ListExams)

			r.Route("/{exam_id}", func(r chi.Router) {
				r.Get("/", h.GetExam)
				r.Post("/analyze", h.StartAnalysis)
				r.Get("/report", h.GetReport)
				r.Get("/events", h.ListEvents)
			})
		})
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
