package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/exam_analyzer/internal/domain"
)

const TableExamEvents = "exam_events"

var eventColumns = []string{
	"exam_id",
	"from_status",
	"to_status",
	"message",
	"created_at",
}

type EventsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewEventsRepository(pool *pgxpool.Pool) *EventsRepository {
	return &EventsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *EventsRepository) AppendEvents(ctx context.Context, events ...*domain.ExamEvent) error {
	if len(events) == 0 {
		return nil
	}

	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableExamEvents}, eventColumns,
		pgx.CopyFromSlice(len(events), func(i int) ([]any, error) {
			return []any{
				events[i].ExamID,
				events[i].FromStatus,
				events[i].ToStatus,
				events[i].Message,
				events[i].CreatedAt,
			}, nil
		}),
	)
	if err != nil {
		return copyRowsError(TableExamEvents, err)
	}

	if copied != int64(len(events)) {
		return copyRowsError(TableExamEvents, fmt.Errorf("copied %d rows, expected %d", copied, len(events)))
	}

	return nil
}

func (r *EventsRepository) Events(
	ctx context.Context,
	examID uuid.UUID,
	limit, offset uint64,
) ([]*domain.ExamEvent, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableExamEvents).
		Where(sq.Eq{"exam_id": examID}).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(eventColumns...).
		From(TableExamEvents).
		Where(sq.Eq{"exam_id": examID}).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	events, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.ExamEvent])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return events, total, nil
}
