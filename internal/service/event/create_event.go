package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// CreateEvent creates a community event and grants the event-creation
// reward in the same transaction. New events start upcoming; the owner
// is not enrolled as a participant.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	e := &domain.Event{
		ID:             uuid.New(),
		OwnerID:        userID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		LocationType:   input.LocationType,
		LocationDetail: input.LocationDetail,
		MaxAttendees:   input.MaxAttendees,
		Tags:           tags,
		Status:         domain.EventStatusUpcoming,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var created *domain.Event
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.events.Create(txCtx, e)
		if createErr != nil {
			return fmt.Errorf("create event: %w", createErr)
		}

		ref := created.ID.String()
		desc := fmt.Sprintf("Created event: %s", created.Title)
		if _, pointErr := s.points.Create(txCtx, &domain.Point{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      domain.RewardEventCreate,
			ActionType:  domain.ActionEventCreate,
			ReferenceID: &ref,
			Description: &desc,
			CreatedAt:   now,
		}); pointErr != nil {
			return fmt.Errorf("grant points: %w", pointErr)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("event.CreateEvent: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("user_id", userID.String()),
		slog.String("event_id", created.ID.String()),
		slog.Int("points", domain.RewardEventCreate),
	)

	return created, nil
}
