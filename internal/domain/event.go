package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a community event with a participant roster.
type Event struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	Description    *string
	StartDate      time.Time
	EndDate        *time.Time
	LocationType   LocationType
	LocationDetail *string
	MaxAttendees   *int
	Tags           []string
	Status         EventStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EventParticipant links a user to an event. The (event, user) pair is
// unique at the storage layer, which is what makes racing join attempts
// fail cleanly instead of double-inserting.
type EventParticipant struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	UserID    uuid.UUID
	Status    ParticipantStatus
	JoinedAt  time.Time
	CreatedAt time.Time
}
