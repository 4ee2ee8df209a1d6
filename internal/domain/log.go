package domain

import (
	"time"

	"github.com/google/uuid"
)

// Log is a reflection log entry, optionally linked to a goal and/or an
// event. The links are weak references: when the target is deleted the
// reference is cleared, not blocked.
type Log struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Content        string // markdown
	Tags           []string
	Visibility     LogVisibility
	RelatedEventID *uuid.UUID
	RelatedGoalID  *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LogFilter narrows a log listing. The zero value lists everything the
// viewer can read: their own logs plus everyone's public logs.
type LogFilter struct {
	ViewerID   uuid.UUID
	Visibility LogVisibility // empty = both
	Tag        string        // empty = no tag filter
}
