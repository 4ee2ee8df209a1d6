package event

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

const maxTags = 20

// CreateEventInput holds parameters for creating a community event.
type CreateEventInput struct {
	Title          string
	Description    *string
	StartDate      time.Time
	EndDate        *time.Time
	LocationType   domain.LocationType
	LocationDetail *string
	MaxAttendees   *int
	Tags           []string
}

// Validate validates the create event input.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
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
	if i.MaxAttendees != nil && *i.MaxAttendees < 1 {
		errs = append(errs, domain.FieldError{Field: "max_attendees", Message: "must be positive"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 entries"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEventInput holds parameters for a partial event update.
// Nil fields are left unchanged.
type UpdateEventInput struct {
	EventID        uuid.UUID
	Title          *string
	Description    *string
	StartDate      *time.Time
	EndDate        *time.Time
	LocationType   *domain.LocationType
	LocationDetail *string
	MaxAttendees   *int
	Tags           *[]string
	Status         *domain.EventStatus
}

// Validate validates the update event input.
func (i UpdateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len(*i.Title) > 255 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}
	if i.LocationType != nil && !i.LocationType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "location_type", Message: "must be online, offline or hybrid"})
	}
	if i.MaxAttendees != nil && *i.MaxAttendees < 1 {
		errs = append(errs, domain.FieldError{Field: "max_attendees", Message: "must be positive"})
	}
	if i.Tags != nil && len(*i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 entries"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be upcoming, ongoing, completed or cancelled"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
