package domain

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a user's personal objective, decomposed into ordered steps.
// Progress is an integer 0–100 set directly by the owner; it is not
// derived from step completion.
type Goal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	Category    GoalCategory
	Status      GoalStatus
	Progress    int
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Step is a unit of work within a goal, ordered by Order.
// Order uniqueness and contiguity are not enforced.
type Step struct {
	ID               uuid.UUID
	GoalID           uuid.UUID
	Order            int
	Title            string
	Description      *string
	Status           StepStatus
	EstimatedMinutes *int
	Notes            *string
	DueDate          *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
