// Package point implements the contribution-points ledger repository
// using PostgreSQL. The ledger is append-only: rows are inserted and
// summed, never updated or deleted.
package point

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

const table = "points"

var columns = []string{
	"id", "user_id", "amount", "action_type", "reference_id", "description", "created_at",
}

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new points repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends a ledger row and returns the persisted record.
// When called inside TxManager.RunInTx it joins the caller's transaction.
func (r *Repo) Create(ctx context.Context, p *domain.Point) (*domain.Point, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns("id", "user_id", "amount", "action_type", "reference_id", "description").
		Values(p.ID, p.UserID, p.Amount, p.ActionType, p.ReferenceID, p.Description).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert point: %w", err)
	}

	row := q.QueryRow(ctx, sql, args...)
	created, err := scanPoint(row)
	if err != nil {
		return nil, postgres.MapError(err, "point", p.ID.String())
	}

	return created, nil
}

// TotalByUser returns the sum of all ledger amounts for a user.
// The total is computed fresh on every call; there is no cached counter.
// A user with no rows has a total of zero, not an error.
func (r *Repo) TotalByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("COALESCE(SUM(amount), 0)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sum points: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "point_total", userID.String())
	}

	return total, nil
}

// HistoryByUser returns a user's ledger rows, newest first.
func (r *Repo) HistoryByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Point, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list points: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "point_history", userID.String())
	}
	defer rows.Close()

	points := make([]domain.Point, 0)
	for rows.Next() {
		p, err := scanPoint(rows)
		if err != nil {
			return nil, postgres.MapError(err, "point_history", userID.String())
		}
		points = append(points, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "point_history", userID.String())
	}

	return points, nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoint(row rowScanner) (*domain.Point, error) {
	var p domain.Point
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Amount,
		&p.ActionType,
		&p.ReferenceID,
		&p.Description,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
