package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
// Accounts are soft-disabled via IsActive; there is no hard delete.
type User struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	FullName       *string
	IsActive       bool
	Role           UserRole
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserProfile holds the public profile attached to a user.
// It is created lazily on the first profile update.
type UserProfile struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Bio           *string
	AvatarURL     *string
	Skills        []string
	Interests     []string
	AvailableTime *int // minutes per week
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
