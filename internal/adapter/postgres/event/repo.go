// Package event implements the Event and EventParticipant repositories
// using PostgreSQL.
package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asotobase/backend/internal/adapter/postgres"
	"github.com/asotobase/backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var eventColumns = []string{
	"id", "owner_id", "title", "description", "start_date", "end_date",
	"location_type", "location_detail", "max_attendees", "tags", "status",
	"created_at", "updated_at",
}

var participantColumns = []string{
	"id", "event_id", "user_id", "status", "joined_at", "created_at",
}

// Repo provides event and participant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Event operations
// ---------------------------------------------------------------------------

// Create inserts a new event and returns the persisted domain.Event.
// When called inside TxManager.RunInTx it joins the caller's transaction.
func (r *Repo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("events").
		Columns("id", "owner_id", "title", "description", "start_date", "end_date",
			"location_type", "location_detail", "max_attendees", "tags", "status").
		Values(e.ID, e.OwnerID, e.Title, e.Description, e.StartDate, e.EndDate,
			e.LocationType, e.LocationDetail, e.MaxAttendees, e.Tags, e.Status).
		Suffix("RETURNING " + strings.Join(eventColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert event: %w", err)
	}

	created, err := scanEvent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", e.ID.String())
	}

	return created, nil
}

// GetByID returns an event by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(eventColumns...).
		From("events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select event: %w", err)
	}

	e, err := scanEvent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", id.String())
	}

	return e, nil
}

// List returns all events ordered by start_date descending.
func (r *Repo) List(ctx context.Context) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(eventColumns...).
		From("events").
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	return r.queryEvents(ctx, q, sql, args, "all")
}

// ListUpcoming returns events starting at or after `from`, soonest first,
// capped at limit. Used by the community dashboard.
func (r *Repo) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(eventColumns...).
		From("events").
		Where(sq.GtOrEq{"start_date": from}).
		OrderBy("start_date ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list upcoming events: %w", err)
	}

	return r.queryEvents(ctx, q, sql, args, "upcoming")
}

// Update writes the mutable columns of an event and returns the stored row.
func (r *Repo) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("events").
		Set("title", e.Title).
		Set("description", e.Description).
		Set("start_date", e.StartDate).
		Set("end_date", e.EndDate).
		Set("location_type", e.LocationType).
		Set("location_detail", e.LocationDetail).
		Set("max_attendees", e.MaxAttendees).
		Set("tags", e.Tags).
		Set("status", e.Status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": e.ID}).
		Suffix("RETURNING " + strings.Join(eventColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update event: %w", err)
	}

	updated, err := scanEvent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", e.ID.String())
	}

	return updated, nil
}

// Delete removes an event by primary key. Participant rows cascade;
// logs referencing the event get their reference cleared at the schema
// level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete event: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "event", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Participant operations
// ---------------------------------------------------------------------------

// GetParticipant returns the participation row for (event, user),
// regardless of its status.
func (r *Repo) GetParticipant(ctx context.Context, eventID, userID uuid.UUID) (*domain.EventParticipant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(participantColumns...).
		From("event_participants").
		Where(sq.Eq{"event_id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select participant: %w", err)
	}

	p, err := scanParticipant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event_participant", eventID.String()+"/"+userID.String())
	}

	return p, nil
}

// CreateParticipant inserts a participation row. The (event_id, user_id)
// UNIQUE constraint maps a racing duplicate to domain.ErrAlreadyExists.
func (r *Repo) CreateParticipant(ctx context.Context, p *domain.EventParticipant) (*domain.EventParticipant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("event_participants").
		Columns("id", "event_id", "user_id", "status", "joined_at").
		Values(p.ID, p.EventID, p.UserID, p.Status, p.JoinedAt).
		Suffix("RETURNING " + strings.Join(participantColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert participant: %w", err)
	}

	created, err := scanParticipant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event_participant", p.EventID.String()+"/"+p.UserID.String())
	}

	return created, nil
}

// SetParticipantStatus updates the status of an existing participation.
// Rejoining resets joined_at; leaving keeps it.
func (r *Repo) SetParticipantStatus(ctx context.Context, id uuid.UUID, status domain.ParticipantStatus, joinedAt *time.Time) (*domain.EventParticipant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Update("event_participants").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(participantColumns, ", "))
	if joinedAt != nil {
		builder = builder.Set("joined_at", *joinedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update participant: %w", err)
	}

	updated, err := scanParticipant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event_participant", id.String())
	}

	return updated, nil
}

// ListJoinedParticipants returns the event's joined participants,
// newest-joined first. Cancelled rows are excluded.
func (r *Repo) ListJoinedParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.EventParticipant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(participantColumns...).
		From("event_participants").
		Where(sq.Eq{"event_id": eventID, "status": domain.ParticipantStatusJoined}).
		OrderBy("joined_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list participants: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "event_participant", eventID.String())
	}
	defer rows.Close()

	participants := make([]domain.EventParticipant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, postgres.MapError(err, "event_participant", eventID.String())
		}
		participants = append(participants, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "event_participant", eventID.String())
	}

	return participants, nil
}

func (r *Repo) queryEvents(ctx context.Context, q postgres.Querier, sql string, args []any, ref string) ([]domain.Event, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "event", ref)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, postgres.MapError(err, "event", ref)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "event", ref)
	}

	return events, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Title,
		&e.Description,
		&e.StartDate,
		&e.EndDate,
		&e.LocationType,
		&e.LocationDetail,
		&e.MaxAttendees,
		&e.Tags,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanParticipant(row rowScanner) (*domain.EventParticipant, error) {
	var p domain.EventParticipant
	err := row.Scan(
		&p.ID,
		&p.EventID,
		&p.UserID,
		&p.Status,
		&p.JoinedAt,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
