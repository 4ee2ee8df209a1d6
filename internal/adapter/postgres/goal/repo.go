// Package goal implements the Goal repository using PostgreSQL.
package goal

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

const table = "goals"

var columns = []string{
	"id", "user_id", "title", "description", "category", "status", "progress",
	"due_date", "completed_at", "created_at", "updated_at",
}

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new goal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new goal and returns the persisted domain.Goal.
func (r *Repo) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns("id", "user_id", "title", "description", "category", "status", "progress", "due_date").
		Values(g.ID, g.UserID, g.Title, g.Description, g.Category, g.Status, g.Progress, g.DueDate).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert goal: %w", err)
	}

	created, err := scanGoal(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "goal", g.ID.String())
	}

	return created, nil
}

// GetByID returns a goal by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select goal: %w", err)
	}

	g, err := scanGoal(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "goal", id.String())
	}

	return g, nil
}

// ListByUser returns a user's goals, newest first.
// status narrows the list when non-empty.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, status domain.GoalStatus) ([]domain.Goal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list goals: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "goal", userID.String())
	}
	defer rows.Close()

	goals := make([]domain.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, postgres.MapError(err, "goal", userID.String())
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "goal", userID.String())
	}

	return goals, nil
}

// ListActiveByUser returns a user's active goals, newest first, capped at limit.
// Used by the dashboard.
func (r *Repo) ListActiveByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Goal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "status": domain.GoalStatusActive}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active goals: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "goal", userID.String())
	}
	defer rows.Close()

	goals := make([]domain.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, postgres.MapError(err, "goal", userID.String())
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "goal", userID.String())
	}

	return goals, nil
}

// Update writes the mutable columns of a goal and returns the stored row.
func (r *Repo) Update(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update(table).
		Set("title", g.Title).
		Set("description", g.Description).
		Set("category", g.Category).
		Set("status", g.Status).
		Set("progress", g.Progress).
		Set("due_date", g.DueDate).
		Set("completed_at", g.CompletedAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": g.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update goal: %w", err)
	}

	updated, err := scanGoal(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "goal", g.ID.String())
	}

	return updated, nil
}

// Delete removes a goal by primary key. Steps cascade at the schema level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete goal: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "goal", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.Title,
		&g.Description,
		&g.Category,
		&g.Status,
		&g.Progress,
		&g.DueDate,
		&g.CompletedAt,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
