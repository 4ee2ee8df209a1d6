// Package event implements community-event management and participation.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

// eventRepo defines the event repository interface needed by the event service.
type eventRepo interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetParticipant(ctx context.Context, eventID, userID uuid.UUID) (*domain.EventParticipant, error)
	CreateParticipant(ctx context.Context, p *domain.EventParticipant) (*domain.EventParticipant, error)
	SetParticipantStatus(ctx context.Context, id uuid.UUID, status domain.ParticipantStatus, joinedAt *time.Time) (*domain.EventParticipant, error)
	ListJoinedParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.EventParticipant, error)
}

// pointRepo defines the ledger append interface needed by the event service.
type pointRepo interface {
	Create(ctx context.Context, point *domain.Point) (*domain.Point, error)
}

// txManager defines the transaction manager interface needed by the event service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides community-event operations.
type Service struct {
	events eventRepo
	points pointRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new event service.
func NewService(logger *slog.Logger, events eventRepo, points pointRepo, tx txManager) *Service {
	return &Service{
		events: events,
		points: points,
		tx:     tx,
		log:    logger.With("service", "event"),
	}
}

// getOwnedEvent loads an event and verifies ownership. An event owned by
// another user is reported as not found.
func (s *Service) getOwnedEvent(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.OwnerID != userID {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}
	return e, nil
}
