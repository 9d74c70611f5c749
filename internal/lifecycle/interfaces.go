package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/exam_analyzer/internal/domain"
)

type ExamRepository interface {
	CreateExam(ctx context.Context, exam *domain.Exam) error
	ExamByID(ctx context.Context, id uuid.UUID) (*domain.Exam, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from domain.Status, update *domain.ExamUpdate) error
	Exams(ctx context.Context, status *domain.Status, limit, offset uint64) ([]*domain.Exam, int, error)
	FailProcessing(ctx context.Context, message string, at time.Time) ([]uuid.UUID, error)
}

type EventRepository interface {
	AppendEvents(ctx context.Context, events ...*domain.ExamEvent) error
	Events(ctx context.Context, examID uuid.UUID, limit, offset uint64) ([]*domain.ExamEvent, int, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type BlobStore interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, path, localDestination string) error
	Validate(path string) error
}

type TaskSubmitter interface {
	Submit(name string, fn func(ctx context.Context)) error
}

type Analyzer interface {
	Analyze(ctx context.Context, examID uuid.UUID, principalPath string) (*domain.AnalysisResult, error)
}

type ReportRenderer interface {
	Render(examID, findings string) ([]byte, error)
}
