// Package log implements the reflection-log repository using PostgreSQL.
package log

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asotobase/backend/internal/adapter/postgres"
	"github.com/asotobase/backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "logs"

var columns = []string{
	"id", "user_id", "title", "content", "tags", "visibility",
	"related_event_id", "related_goal_id", "created_at", "updated_at",
}

// Repo provides reflection-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new log and returns the persisted domain.Log.
// When called inside TxManager.RunInTx it joins the caller's transaction.
func (r *Repo) Create(ctx context.Context, l *domain.Log) (*domain.Log, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns("id", "user_id", "title", "content", "tags", "visibility", "related_event_id", "related_goal_id").
		Values(l.ID, l.UserID, l.Title, l.Content, l.Tags, l.Visibility, l.RelatedEventID, l.RelatedGoalID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert log: %w", err)
	}

	created, err := scanLog(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "log", l.ID.String())
	}

	return created, nil
}

// GetByID returns a log by primary key. Visibility is enforced by the
// service, not here.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Log, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select log: %w", err)
	}

	l, err := scanLog(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "log", id.String())
	}

	return l, nil
}

// List returns logs readable by the viewer, newest first.
// Visibility "public" widens to all public logs; "private" narrows to
// the viewer's own private logs. Tag filtering uses JSONB containment.
func (r *Repo) List(ctx context.Context, f domain.LogFilter) ([]domain.Log, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Select(columns...).
		From(table).
		OrderBy("created_at DESC")

	switch f.Visibility {
	case domain.LogVisibilityPublic:
		builder = builder.Where(sq.Eq{"visibility": domain.LogVisibilityPublic})
	case domain.LogVisibilityPrivate:
		builder = builder.Where(sq.Eq{
			"user_id":    f.ViewerID,
			"visibility": domain.LogVisibilityPrivate,
		})
	default:
		builder = builder.Where(sq.Or{
			sq.Eq{"user_id": f.ViewerID},
			sq.Eq{"visibility": domain.LogVisibilityPublic},
		})
	}

	if f.Tag != "" {
		tagJSON, err := json.Marshal([]string{f.Tag})
		if err != nil {
			return nil, fmt.Errorf("marshal tag filter: %w", err)
		}
		builder = builder.Where(sq.Expr("tags @> ?::jsonb", string(tagJSON)))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list logs: %w", err)
	}

	return r.queryLogs(ctx, q, sql, args, f.ViewerID.String())
}

// ListRecentByUser returns a user's latest logs regardless of visibility.
// Used by the personal dashboard.
func (r *Repo) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Log, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recent logs: %w", err)
	}

	return r.queryLogs(ctx, q, sql, args, userID.String())
}

// ListRecentPublic returns the latest public logs across all users.
// Used by the community dashboard.
func (r *Repo) ListRecentPublic(ctx context.Context, limit int) ([]domain.Log, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"visibility": domain.LogVisibilityPublic}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list public logs: %w", err)
	}

	return r.queryLogs(ctx, q, sql, args, "public")
}

// Update writes the mutable columns of a log and returns the stored row.
func (r *Repo) Update(ctx context.Context, l *domain.Log) (*domain.Log, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update(table).
		Set("title", l.Title).
		Set("content", l.Content).
		Set("tags", l.Tags).
		Set("visibility", l.Visibility).
		Set("related_event_id", l.RelatedEventID).
		Set("related_goal_id", l.RelatedGoalID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": l.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update log: %w", err)
	}

	updated, err := scanLog(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "log", l.ID.String())
	}

	return updated, nil
}

// Delete removes a log by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete log: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "log", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("log %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) queryLogs(ctx context.Context, q postgres.Querier, sql string, args []any, ref string) ([]domain.Log, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "log", ref)
	}
	defer rows.Close()

	logs := make([]domain.Log, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, postgres.MapError(err, "log", ref)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "log", ref)
	}

	return logs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (*domain.Log, error) {
	var l domain.Log
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.Title,
		&l.Content,
		&l.Tags,
		&l.Visibility,
		&l.RelatedEventID,
		&l.RelatedGoalID,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
