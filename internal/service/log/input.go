package log

import (
	"strings"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

const maxTags = 20

// CreateLogInput holds parameters for creating a reflection log.
type CreateLogInput struct {
	Title          string
	Content        string
	Tags           []string
	Visibility     domain.LogVisibility
	RelatedEventID *uuid.UUID
	RelatedGoalID  *uuid.UUID
}

// Validate validates the create log input.
func (i CreateLogInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 entries"})
	}
	if !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be private or public"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateLogInput holds parameters for a partial log update.
// Nil fields are left unchanged.
type UpdateLogInput struct {
	LogID          uuid.UUID
	Title          *string
	Content        *string
	Tags           *[]string
	Visibility     *domain.LogVisibility
	RelatedEventID *uuid.UUID
	RelatedGoalID  *uuid.UUID
}

// Validate validates the update log input.
func (i UpdateLogInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len(*i.Title) > 255 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Tags != nil && len(*i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 entries"})
	}
	if i.Visibility != nil && !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be private or public"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListLogsInput holds listing filters for reflection logs.
type ListLogsInput struct {
	Visibility domain.LogVisibility // empty = own plus public
	Tag        string
}

// Validate validates the list logs input.
func (i ListLogsInput) Validate() error {
	if i.Visibility != "" && !i.Visibility.IsValid() {
		return domain.NewValidationError("visibility", "must be private or public")
	}
	return nil
}
