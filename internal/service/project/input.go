package project

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

const (
	maxTags   = 20
	maxSkills = 50
)

// CreateProjectInput holds parameters for creating a project.
type CreateProjectInput struct {
	Title          string
	Description    *string
	Category       domain.ProjectCategory
	StartDate      time.Time
	EndDate        *time.Time
	Frequency      *string
	LocationType   domain.LocationType
	LocationDetail *string
	IsRecruiting   bool
	MaxMembers     *int
	RequiredSkills []string
	Tags           []string
	Visibility     domain.ProjectVisibility
}

// Validate validates the create project input.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be asobi or asoto"})
	}
	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if i.EndDate != nil && !i.StartDate.IsZero() && i.EndDate.Before(i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	if !i.LocationType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "location_type", Message: "must be online, offline or hybrid"})
	}
	if i.MaxMembers != nil && *i.MaxMembers < 1 {
		errs = append(errs, domain.FieldError{Field: "max_members", Message: "must be positive"})
	}
	if len(i.RequiredSkills) > maxSkills {
		errs = append(errs, domain.FieldError{Field: "required_skills", Message: "max 50 entries"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 entries"})
	}
	if !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be public or members_only"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds parameters for a partial project update.
// Nil fields are left unchanged.
type UpdateProjectInput struct {
	ProjectID      uuid.UUID
	Title          *string
	Description    *string
	Status         *domain.ProjectStatus
	StartDate      *time.Time
	EndDate        *time.Time
	Frequency      *string
	LocationType   *domain.LocationType
	LocationDetail *string
	IsRecruiting   *bool
	MaxMembers     *int
	RequiredSkills *[]string
	Tags           *[]string
	Visibility     *domain.ProjectVisibility
}

// Validate validates the update project input.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len(*i.Title) > 255 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be recruiting, active, completed or archived"})
	}
	if i.LocationType != nil && !i.LocationType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "location_type", Message: "must be online, offline or hybrid"})
	}
	if i.MaxMembers != nil && *i.MaxMembers < 1 {
		errs = append(errs, domain.FieldError{Field: "max_members", Message: "must be positive"})
	}
	if i.RequiredSkills != nil && len(*i.RequiredSkills) > maxSkills {
		errs = append(errs, domain.FieldError{Field: "required_skills", Message: "max 50 entries"})
	}
	if i.Tags != nil && len(*i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 entries"})
	}
	if i.Visibility != nil && !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be public or members_only"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTaskInput holds parameters for creating a task within a project.
type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Title       string
	Description *string
	AssigneeID  *uuid.UUID
	Order       *int
	DueDate     *time.Time
}

// Validate validates the create task input.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if i.Order != nil && *i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput holds parameters for a partial task update.
// Nil fields are left unchanged.
type UpdateTaskInput struct {
	ProjectID   uuid.UUID
	TaskID      uuid.UUID
	Title       *string
	Description *string
	AssigneeID  *uuid.UUID
	Status      *domain.TaskStatus
	Order       *int
	DueDate     *time.Time
}

// Validate validates the update task input.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len(*i.Title) > 255 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be todo, in_progress or done"})
	}
	if i.Order != nil && *i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
