package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExamEvent is one entry of an exam's transition history.
type ExamEvent struct {
	ExamID     uuid.UUID `csv:"exam_id"     db:"exam_id"     json:"exam_id"`
	FromStatus Status    `csv:"from_status" db:"from_status" json:"from_status"`
	ToStatus   Status    `csv:"to_status"   db:"to_status"   json:"to_status"`
	Message    string    `csv:"message"     db:"message"     json:"message"`
	CreatedAt  time.Time `csv:"created_at"  db:"created_at"  json:"created_at"`
}
