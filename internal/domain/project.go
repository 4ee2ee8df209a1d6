package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a collaborative initiative with members and tasks.
type Project struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	Description    *string
	Category       ProjectCategory
	Status         ProjectStatus
	StartDate      time.Time
	EndDate        *time.Time
	Frequency      *string
	LocationType   LocationType
	LocationDetail *string
	IsRecruiting   bool
	MaxMembers     *int
	RequiredSkills []string
	Tags           []string
	Visibility     ProjectVisibility
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProjectMember links a user to a project. The (project, user) pair is
// unique at the storage layer. The owner is auto-enrolled as an active
// member at project creation.
type ProjectMember struct {
	ID                 uuid.UUID
	ProjectID          uuid.UUID
	UserID             uuid.UUID
	Role               MemberRole
	Status             MemberStatus
	ContributionRole   *string
	ContributionPoints int
	JoinedAt           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProjectTask is a unit of work within a project, optionally assigned
// to a member.
type ProjectTask struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	AssigneeID  *uuid.UUID
	Title       string
	Description *string
	Status      TaskStatus
	Order       *int
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
