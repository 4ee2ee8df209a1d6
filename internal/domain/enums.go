package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// GoalCategory classifies a goal along the three community axes.
type GoalCategory string

const (
	GoalCategoryRelationship GoalCategory = "relationship"
	GoalCategoryActivity     GoalCategory = "activity"
	GoalCategorySensitivity  GoalCategory = "sensitivity"
)

func (c GoalCategory) String() string { return string(c) }

func (c GoalCategory) IsValid() bool {
	switch c {
	case GoalCategoryRelationship, GoalCategoryActivity, GoalCategorySensitivity:
		return true
	}
	return false
}

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
)

func (s GoalStatus) String() string { return string(s) }

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusArchived:
		return true
	}
	return false
}

// StepStatus represents the lifecycle state of a step within a goal.
type StepStatus string

const (
	StepStatusPending    StepStatus = "pending"
	StepStatusInProgress StepStatus = "in_progress"
	StepStatusCompleted  StepStatus = "completed"
	StepStatusSkipped    StepStatus = "skipped"
)

func (s StepStatus) String() string { return string(s) }

func (s StepStatus) IsValid() bool {
	switch s {
	case StepStatusPending, StepStatusInProgress, StepStatusCompleted, StepStatusSkipped:
		return true
	}
	return false
}

// LogVisibility controls who can read a reflection log.
type LogVisibility string

const (
	LogVisibilityPrivate LogVisibility = "private"
	LogVisibilityPublic  LogVisibility = "public"
)

func (v LogVisibility) String() string { return string(v) }

func (v LogVisibility) IsValid() bool {
	switch v {
	case LogVisibilityPrivate, LogVisibilityPublic:
		return true
	}
	return false
}

// LocationType describes where an event or project takes place.
type LocationType string

const (
	LocationTypeOnline  LocationType = "online"
	LocationTypeOffline LocationType = "offline"
	LocationTypeHybrid  LocationType = "hybrid"
)

func (l LocationType) String() string { return string(l) }

func (l LocationType) IsValid() bool {
	switch l {
	case LocationTypeOnline, LocationTypeOffline, LocationTypeHybrid:
		return true
	}
	return false
}

// EventStatus represents the stored state of an event.
// It is never transitioned automatically.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) String() string { return string(s) }

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// ParticipantStatus represents a user's participation in an event.
// Leaving an event sets the status to cancelled; the row is kept.
type ParticipantStatus string

const (
	ParticipantStatusJoined    ParticipantStatus = "joined"
	ParticipantStatusCancelled ParticipantStatus = "cancelled"
)

func (s ParticipantStatus) String() string { return string(s) }

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case ParticipantStatusJoined, ParticipantStatusCancelled:
		return true
	}
	return false
}

// ProjectCategory classifies a project. The category determines the
// contribution-point reward granted at creation.
type ProjectCategory string

const (
	ProjectCategoryAsobi ProjectCategory = "asobi"
	ProjectCategoryAsoto ProjectCategory = "asoto"
)

func (c ProjectCategory) String() string { return string(c) }

func (c ProjectCategory) IsValid() bool {
	switch c {
	case ProjectCategoryAsobi, ProjectCategoryAsoto:
		return true
	}
	return false
}

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusRecruiting ProjectStatus = "recruiting"
	ProjectStatusActive     ProjectStatus = "active"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusArchived   ProjectStatus = "archived"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusRecruiting, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// ProjectVisibility controls who can see a project.
type ProjectVisibility string

const (
	ProjectVisibilityPublic      ProjectVisibility = "public"
	ProjectVisibilityMembersOnly ProjectVisibility = "members_only"
)

func (v ProjectVisibility) String() string { return string(v) }

func (v ProjectVisibility) IsValid() bool {
	switch v {
	case ProjectVisibilityPublic, ProjectVisibilityMembersOnly:
		return true
	}
	return false
}

// MemberRole represents a user's role within a project.
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleMember MemberRole = "member"
)

func (r MemberRole) String() string { return string(r) }

func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleMember:
		return true
	}
	return false
}

// MemberStatus represents the state of a project membership.
// Join requests start as pending; there is no approval endpoint yet,
// so only owner auto-enrollment produces active members.
type MemberStatus string

const (
	MemberStatusPending MemberStatus = "pending"
	MemberStatusActive  MemberStatus = "active"
	MemberStatusLeft    MemberStatus = "left"
)

func (s MemberStatus) String() string { return string(s) }

func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusPending, MemberStatusActive, MemberStatusLeft:
		return true
	}
	return false
}

// TaskStatus represents the state of a project task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}
