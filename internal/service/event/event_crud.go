package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// ListEvents returns all events newest-first. Every authenticated user
// sees the full catalogue.
func (s *Service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("event.ListEvents: %w", err)
	}
	return events, nil
}

// GetEvent returns a single event. Events are visible to every
// authenticated user regardless of ownership.
func (s *Service) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.events.GetByID(ctx, eventID)
}

// UpdateEvent applies a partial update to one of the authenticated
// user's events. Foreign events are reported as not found.
func (s *Service) UpdateEvent(ctx context.Context, input UpdateEventInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := s.getOwnedEvent(ctx, userID, input.EventID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		e.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		e.Description = input.Description
	}
	if input.StartDate != nil {
		e.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		e.EndDate = input.EndDate
	}
	if input.LocationType != nil {
		e.LocationType = *input.LocationType
	}
	if input.LocationDetail != nil {
		e.LocationDetail = input.LocationDetail
	}
	if input.MaxAttendees != nil {
		e.MaxAttendees = input.MaxAttendees
	}
	if input.Tags != nil {
		e.Tags = *input.Tags
	}
	if input.Status != nil {
		e.Status = *input.Status
	}

	updated, err := s.events.Update(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("event.UpdateEvent: %w", err)
	}
	return updated, nil
}

// DeleteEvent removes one of the authenticated user's events.
// Participant rows cascade at the storage layer; earned ledger rows are kept.
func (s *Service) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.getOwnedEvent(ctx, userID, eventID); err != nil {
		return err
	}

	if err := s.events.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("event.DeleteEvent: %w", err)
	}

	s.log.InfoContext(ctx, "event deleted",
		slog.String("user_id", userID.String()),
		slog.String("event_id", eventID.String()),
	)

	return nil
}

// ListParticipants returns the joined participants of an event.
// Cancelled participants are not included.
func (s *Service) ListParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.EventParticipant, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	participants, err := s.events.ListJoinedParticipants(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event.ListParticipants: %w", err)
	}
	return participants, nil
}
