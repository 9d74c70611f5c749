package postgresql

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/exam_analyzer/internal/domain"
)

const TableExams = "exams"

var examColumns = []string{
	"id",
	"status",
	"created_at",
	"updated_at",
	"original_filenames",
	"raw_file_paths",
	"principal_input_path",
	"output_mask_path",
	"output_findings_path",
	"error_message",
}

type ExamsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewExamsRepository(pool *pgxpool.Pool) *ExamsRepository {
	return &ExamsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ExamsRepository) CreateExam(ctx context.Context, exam *domain.Exam) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableExams).
		Columns(examColumns...).
		Values(
			exam.ID,
			exam.Status,
			exam.CreatedAt,
			exam.UpdatedAt,
			exam.OriginalFilenames,
			exam.RawFilePaths,
			exam.PrincipalInputPath,
			exam.OutputMaskPath,
			exam.OutputFindingsPath,
			exam.ErrorMessage,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *ExamsRepository) ExamByID(ctx context.Context, id uuid.UUID) (*domain.Exam, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(examColumns...).
		From(TableExams).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	exam, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Exam])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExamNotFound
		}
		return nil, collectRowsError(err)
	}

	return exam, nil
}

// TransitionStatus applies update only while the exam is still in status from.
// It returns domain.ErrStatusChanged when another writer got there first.
func (r *ExamsRepository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from domain.Status,
	update *domain.ExamUpdate,
) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableExams).
		SetMap(map[string]any{
			"status":               update.Status,
			"updated_at":           update.UpdatedAt,
			"output_mask_path":     update.OutputMaskPath,
			"output_findings_path": update.OutputFindingsPath,
			"error_message":        update.ErrorMessage,
		}).
		Where(sq.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrStatusChanged
	}

	return nil
}

func (r *ExamsRepository) Exams(
	ctx context.Context,
	status *domain.Status,
	limit, offset uint64,
) ([]*domain.Exam, int, error) {
	db := extractDB(ctx, r.pool)

	filter := sq.And{}
	if status != nil {
		filter = append(filter, sq.Eq{"status": *status})
	}

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableExams).
		Where(filter).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(examColumns...).
		From(TableExams).
		Where(filter).
		OrderBy("created_at DESC", "id ASC").
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

	exams, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.Exam])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return exams, total, nil
}

// FailProcessing finalizes every exam left in processing and returns their ids.
func (r *ExamsRepository) FailProcessing(ctx context.Context, message string, at time.Time) ([]uuid.UUID, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableExams).
		Set("status", domain.StatusErrorProcessingFatal).
		Set("error_message", message).
		Set("updated_at", at).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return ids, nil
}
