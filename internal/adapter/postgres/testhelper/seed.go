package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asotobase/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with a unique email.
// The stored password hash is a placeholder; login tests hash their own.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	fullName := "Test User " + suffix
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:             uuid.New(),
		Email:          "testuser-" + suffix + "@example.com",
		HashedPassword: "$2a$10$placeholderplaceholderplaceholderplace",
		FullName:       &fullName,
		IsActive:       true,
		Role:           domain.UserRoleUser,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, hashed_password, full_name, is_active, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.HashedPassword, user.FullName, user.IsActive, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedGoal creates an active goal for the given user.
func SeedGoal(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Goal {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	goal := domain.Goal{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Goal " + uniqueSuffix(),
		Category:  domain.GoalCategoryActivity,
		Status:    domain.GoalStatusActive,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO goals (id, user_id, title, category, status, progress, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		goal.ID, goal.UserID, goal.Title, string(goal.Category), string(goal.Status), goal.Progress, goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGoal insert goal: %v", err)
	}

	return goal
}

// SeedStep creates a pending step under the given goal.
func SeedStep(t *testing.T, pool *pgxpool.Pool, goalID uuid.UUID, order int) domain.Step {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	step := domain.Step{
		ID:        uuid.New(),
		GoalID:    goalID,
		Order:     order,
		Title:     "Step " + uniqueSuffix(),
		Status:    domain.StepStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO steps (id, goal_id, "order", title, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		step.ID, step.GoalID, step.Order, step.Title, string(step.Status), step.CreatedAt, step.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStep insert step: %v", err)
	}

	return step
}

// SeedEvent creates an upcoming event owned by the given user.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Event {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	event := domain.Event{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        "Event " + uniqueSuffix(),
		StartDate:    now.Add(24 * time.Hour),
		LocationType: domain.LocationTypeOnline,
		Tags:         []string{},
		Status:       domain.EventStatusUpcoming,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, owner_id, title, start_date, location_type, tags, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, event.OwnerID, event.Title, event.StartDate, string(event.LocationType), event.Tags, string(event.Status), event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert event: %v", err)
	}

	return event
}

// SeedProject creates an active asobi project owned by the given user,
// without the owner membership row.
func SeedProject(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Project {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	project := domain.Project{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Title:          "Project " + uniqueSuffix(),
		Category:       domain.ProjectCategoryAsobi,
		Status:         domain.ProjectStatusActive,
		StartDate:      now,
		LocationType:   domain.LocationTypeOnline,
		IsRecruiting:   false,
		RequiredSkills: []string{},
		Tags:           []string{},
		Visibility:     domain.ProjectVisibilityPublic,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, owner_id, title, category, status, start_date, location_type,
		    is_recruiting, required_skills, tags, visibility, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		project.ID, project.OwnerID, project.Title, string(project.Category), string(project.Status),
		project.StartDate, string(project.LocationType), project.IsRecruiting,
		project.RequiredSkills, project.Tags, string(project.Visibility), project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert project: %v", err)
	}

	return project
}

// SeedProjectMember creates a membership row with the given role and status.
func SeedProjectMember(t *testing.T, pool *pgxpool.Pool, projectID, userID uuid.UUID, role domain.MemberRole, status domain.MemberStatus) domain.ProjectMember {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	member := domain.ProjectMember{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == domain.MemberStatusActive {
		joined := now
		member.JoinedAt = &joined
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO project_members (id, project_id, user_id, role, status, joined_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		member.ID, member.ProjectID, member.UserID, string(member.Role), string(member.Status), member.JoinedAt, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProjectMember insert member: %v", err)
	}

	return member
}

// SeedLog creates a log entry with the given visibility.
func SeedLog(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, visibility domain.LogVisibility, tags []string) domain.Log {
	t.Helper()
	ctx := context.Background()

	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	logEntry := domain.Log{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      "Log " + uniqueSuffix(),
		Content:    "content",
		Tags:       tags,
		Visibility: visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO logs (id, user_id, title, content, tags, visibility, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		logEntry.ID, logEntry.UserID, logEntry.Title, logEntry.Content, logEntry.Tags, string(logEntry.Visibility), logEntry.CreatedAt, logEntry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLog insert log: %v", err)
	}

	return logEntry
}

// SeedPoint appends a ledger row for the given user.
func SeedPoint(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, amount int, actionType string) domain.Point {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	point := domain.Point{
		ID:         uuid.New(),
		UserID:     userID,
		Amount:     amount,
		ActionType: actionType,
		CreatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO points (id, user_id, amount, action_type, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		point.ID, point.UserID, point.Amount, point.ActionType, point.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPoint insert point: %v", err)
	}

	return point
}
