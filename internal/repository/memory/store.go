// Package memory keeps exams and their history in process memory. It serves
// local runs and tests; nothing survives a restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/exam_analyzer/internal/domain"
)

type Store struct {
	mu     sync.RWMutex
	exams  map[uuid.UUID]*domain.Exam
	events map[uuid.UUID][]*domain.ExamEvent

	// serializes WithTransaction callers, there is no rollback
	txMu sync.Mutex
}

func NewStore() *Store {
	return &Store{
		exams:  make(map[uuid.UUID]*domain.Exam),
		events: make(map[uuid.UUID][]*domain.ExamEvent),
	}
}

func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(ctx)
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) CreateExam(_ context.Context, exam *domain.Exam) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exams[exam.ID]; ok {
		return domain.ErrPersistence
	}

	s.exams[exam.ID] = cloneExam(exam)

	return nil
}

func (s *Store) ExamByID(_ context.Context, id uuid.UUID) (*domain.Exam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exam, ok := s.exams[id]
	if !ok {
		return nil, domain.ErrExamNotFound
	}

	return cloneExam(exam), nil
}

func (s *Store) TransitionStatus(_ context.Context, id uuid.UUID, from domain.Status, update *domain.ExamUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exam, ok := s.exams[id]
	if !ok || exam.Status != from {
		return domain.ErrStatusChanged
	}

	exam.Status = update.Status
	exam.UpdatedAt = update.UpdatedAt
	exam.OutputMaskPath = clonePtr(update.OutputMaskPath)
	exam.OutputFindingsPath = clonePtr(update.OutputFindingsPath)
	exam.ErrorMessage = clonePtr(update.ErrorMessage)

	return nil
}

func (s *Store) Exams(_ context.Context, status *domain.Status, limit, offset uint64) ([]*domain.Exam, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*domain.Exam, 0, len(s.exams))
	for _, exam := range s.exams {
		if status == nil || exam.Status == *status {
			matched = append(matched, exam)
		}
	}

	slices.SortFunc(matched, func(a, b *domain.Exam) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	page := paginate(matched, limit, offset)

	exams := make([]*domain.Exam, 0, len(page))
	for _, exam := range page {
		exams = append(exams, cloneExam(exam))
	}

	return exams, len(matched), nil
}

func (s *Store) FailProcessing(_ context.Context, message string, at time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uuid.UUID
	for id, exam := range s.exams {
		if exam.Status != domain.StatusProcessing {
			continue
		}

		exam.Status = domain.StatusErrorProcessingFatal
		exam.ErrorMessage = &message
		exam.UpdatedAt = at
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *Store) AppendEvents(_ context.Context, events ...*domain.ExamEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range events {
		e := *event
		s.events[e.ExamID] = append(s.events[e.ExamID], &e)
	}

	return nil
}

func (s *Store) Events(_ context.Context, examID uuid.UUID, limit, offset uint64) ([]*domain.ExamEvent, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.events[examID]
	page := paginate(all, limit, offset)

	events := make([]*domain.ExamEvent, 0, len(page))
	for _, event := range page {
		e := *event
		events = append(events, &e)
	}

	return events, len(all), nil
}

func paginate[T any](items []T, limit, offset uint64) []T {
	if offset >= uint64(len(items)) {
		return nil
	}

	end := uint64(len(items))
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return items[offset:end]
}

func cloneExam(exam *domain.Exam) *domain.Exam {
	c := *exam
	c.OriginalFilenames = slices.Clone(exam.OriginalFilenames)
	c.RawFilePaths = slices.Clone(exam.RawFilePaths)
	c.PrincipalInputPath = clonePtr(exam.PrincipalInputPath)
	c.OutputMaskPath = clonePtr(exam.OutputMaskPath)
	c.OutputFindingsPath = clonePtr(exam.OutputFindingsPath)
	c.ErrorMessage = clonePtr(exam.ErrorMessage)

	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
