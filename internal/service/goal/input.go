package goal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

// CreateGoalInput holds parameters for creating a goal.
type CreateGoalInput struct {
	Title       string
	Description *string
	Category    domain.GoalCategory
	DueDate     *time.Time
}

// Validate validates the create goal input.
func (i CreateGoalInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be relationship, activity or sensitivity"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateGoalInput holds parameters for a partial goal update.
// Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID      uuid.UUID
	Title       *string
	Description *string
	Category    *domain.GoalCategory
	Status      *domain.GoalStatus
	Progress    *int
	DueDate     *time.Time
}

// Validate validates the update goal input.
func (i UpdateGoalInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len(*i.Title) > 255 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be relationship, activity or sensitivity"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be active, completed or archived"})
	}
	if i.Progress != nil && (*i.Progress < 0 || *i.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateStepInput holds parameters for creating a step under a goal.
type CreateStepInput struct {
	GoalID           uuid.UUID
	Title            string
	Description      *string
	Order            int
	EstimatedMinutes *int
	DueDate          *time.Time
}

// Validate validates the create step input.
func (i CreateStepInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be non-negative"})
	}
	if i.EstimatedMinutes != nil && *i.EstimatedMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "estimated_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStepInput holds parameters for a partial step update.
// Nil fields are left unchanged.
type UpdateStepInput struct {
	StepID           uuid.UUID
	Title            *string
	Description      *string
	Status           *domain.StepStatus
	Order            *int
	EstimatedMinutes *int
	Notes            *string
	DueDate          *time.Time
}

// Validate validates the update step input.
func (i UpdateStepInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len(*i.Title) > 255 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, in_progress, completed or skipped"})
	}
	if i.Order != nil && *i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be non-negative"})
	}
	if i.EstimatedMinutes != nil && *i.EstimatedMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "estimated_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
