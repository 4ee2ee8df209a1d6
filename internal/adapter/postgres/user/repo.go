// Package user implements the User and UserProfile repositories using
// PostgreSQL.
package user

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

var userColumns = []string{
	"id", "email", "hashed_password", "full_name", "is_active", "role",
	"created_at", "updated_at",
}

var profileColumns = []string{
	"id", "user_id", "bio", "avatar_url", "skills", "interests",
	"available_time", "created_at", "updated_at",
}

// Repo provides user and profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("users").
		Columns("id", "email", "hashed_password", "full_name", "is_active", "role").
		Values(u.ID, u.Email, u.HashedPassword, u.FullName, u.IsActive, u.Role).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	created, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Profile operations
// ---------------------------------------------------------------------------

// GetProfile returns the profile for the given user.
// Users who never updated their profile have no row; callers treat
// domain.ErrNotFound as "empty profile".
func (r *Repo) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(profileColumns...).
		From("user_profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select profile: %w", err)
	}

	p, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", userID.String())
	}

	return p, nil
}

// UpsertProfile inserts the profile or updates the existing row for the
// same user. Profiles are created lazily on the first update.
func (r *Repo) UpsertProfile(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("user_profiles").
		Columns("id", "user_id", "bio", "avatar_url", "skills", "interests", "available_time").
		Values(p.ID, p.UserID, p.Bio, p.AvatarURL, p.Skills, p.Interests, p.AvailableTime).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests,
			available_time = EXCLUDED.available_time,
			updated_at = now()
		RETURNING ` + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert profile: %w", err)
	}

	saved, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", p.UserID.String())
	}

	return saved, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.HashedPassword,
		&u.FullName,
		&u.IsActive,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanProfile(row rowScanner) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Bio,
		&p.AvatarURL,
		&p.Skills,
		&p.Interests,
		&p.AvailableTime,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
