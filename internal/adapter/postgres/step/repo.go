// Package step implements the Step repository using PostgreSQL.
package step

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asotobase/backend/internal/adapter/postgres"
	"github.com/asotobase/backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "steps"

var columns = []string{
	`id`, `goal_id`, `"order"`, `title`, `description`, `status`,
	`estimated_minutes`, `notes`, `due_date`, `completed_at`,
	`created_at`, `updated_at`,
}

// Repo provides step persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new step repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new step and returns the persisted domain.Step.
func (r *Repo) Create(ctx context.Context, s *domain.Step) (*domain.Step, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns(`id`, `goal_id`, `"order"`, `title`, `description`, `status`, `estimated_minutes`, `notes`, `due_date`).
		Values(s.ID, s.GoalID, s.Order, s.Title, s.Description, s.Status, s.EstimatedMinutes, s.Notes, s.DueDate).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert step: %w", err)
	}

	created, err := scanStep(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "step", s.ID.String())
	}

	return created, nil
}

// GetByID returns a step by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Step, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select step: %w", err)
	}

	s, err := scanStep(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "step", id.String())
	}

	return s, nil
}

// ListByGoal returns a goal's steps ordered by their "order" column.
// Order values are caller-assigned and may repeat; ties break on created_at.
func (r *Repo) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]domain.Step, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"goal_id": goalID}).
		OrderBy(`"order" ASC`, "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list steps: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "step", goalID.String())
	}
	defer rows.Close()

	steps := make([]domain.Step, 0)
	for rows.Next() {
		s, err := scanStep(rows)
		if err != nil {
			return nil, postgres.MapError(err, "step", goalID.String())
		}
		steps = append(steps, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "step", goalID.String())
	}

	return steps, nil
}

// Update writes the mutable columns of a step and returns the stored row.
func (r *Repo) Update(ctx context.Context, s *domain.Step) (*domain.Step, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update(table).
		Set(`"order"`, s.Order).
		Set("title", s.Title).
		Set("description", s.Description).
		Set("status", s.Status).
		Set("estimated_minutes", s.EstimatedMinutes).
		Set("notes", s.Notes).
		Set("due_date", s.DueDate).
		Set("completed_at", s.CompletedAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": s.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update step: %w", err)
	}

	updated, err := scanStep(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "step", s.ID.String())
	}

	return updated, nil
}

// Delete removes a step by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete step: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "step", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("step %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStep(row rowScanner) (*domain.Step, error) {
	var s domain.Step
	err := row.Scan(
		&s.ID,
		&s.GoalID,
		&s.Order,
		&s.Title,
		&s.Description,
		&s.Status,
		&s.EstimatedMinutes,
		&s.Notes,
		&s.DueDate,
		&s.CompletedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
