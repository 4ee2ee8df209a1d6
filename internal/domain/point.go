package domain

import (
	"time"

	"github.com/google/uuid"
)

// Point is one immutable row in the contribution-points ledger.
// Rows are only ever appended; no handler updates or deletes them.
// A user's total is the sum of Amount over all their rows.
type Point struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      int // negative amounts are permitted by the schema (penalties)
	ActionType  string
	ReferenceID *string // stringified id of the rewarded entity, not a foreign key
	Description *string
	CreatedAt   time.Time
}

// Action types recorded in the ledger.
const (
	ActionStepComplete  = "step_complete"
	ActionLogCreate     = "log_create"
	ActionEventCreate   = "event_create"
	ActionEventJoin     = "event_join"
	ActionProjectCreate = "project_create"
)

// Fixed reward amounts per action.
const (
	RewardStepComplete  = 10
	RewardLogCreate     = 5
	RewardEventCreate   = 50
	RewardEventJoin     = 10
	RewardProjectAsoto  = 50
	RewardProjectAsobi  = 30
)

// ProjectCreateReward returns the point amount granted for creating a
// project of the given category.
func ProjectCreateReward(category ProjectCategory) int {
	if category == ProjectCategoryAsoto {
		return RewardProjectAsoto
	}
	return RewardProjectAsobi
}

// PointSummary is a user's fresh ledger total. It is computed on every
// read; there is no cached counter.
type PointSummary struct {
	UserID      uuid.UUID
	TotalPoints int
}
