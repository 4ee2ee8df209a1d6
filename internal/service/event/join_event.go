package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// JoinEvent enrolls the authenticated user in an event and grants the
// join reward in the same transaction. Joining an event already joined
// is a conflict. Rejoining after leaving reactivates the existing row
// and grants the reward again. The unique (event, user) constraint at
// the storage layer decides the winner of racing first joins.
func (s *Service) JoinEvent(ctx context.Context, eventID uuid.UUID) (*domain.EventParticipant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	existing, err := s.events.GetParticipant(ctx, eventID, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("event.JoinEvent: %w", err)
	}
	if existing != nil && existing.Status == domain.ParticipantStatusJoined {
		return nil, fmt.Errorf("already joined event %s: %w", eventID, domain.ErrConflict)
	}

	now := time.Now()
	var participant *domain.EventParticipant
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var joinErr error
		if existing != nil {
			participant, joinErr = s.events.SetParticipantStatus(txCtx, existing.ID, domain.ParticipantStatusJoined, &now)
		} else {
			participant, joinErr = s.events.CreateParticipant(txCtx, &domain.EventParticipant{
				ID:        uuid.New(),
				EventID:   eventID,
				UserID:    userID,
				Status:    domain.ParticipantStatusJoined,
				JoinedAt:  now,
				CreatedAt: now,
			})
		}
		if joinErr != nil {
			return fmt.Errorf("join event: %w", joinErr)
		}

		ref := eventID.String()
		desc := fmt.Sprintf("Joined event: %s", e.Title)
		if _, pointErr := s.points.Create(txCtx, &domain.Point{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      domain.RewardEventJoin,
			ActionType:  domain.ActionEventJoin,
			ReferenceID: &ref,
			Description: &desc,
			CreatedAt:   now,
		}); pointErr != nil {
			return fmt.Errorf("grant points: %w", pointErr)
		}

		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("event.JoinEvent: %w", txErr)
	}

	s.log.InfoContext(ctx, "event joined",
		slog.String("user_id", userID.String()),
		slog.String("event_id", eventID.String()),
		slog.Int("points", domain.RewardEventJoin),
	)

	return participant, nil
}

// LeaveEvent cancels the authenticated user's participation. The row is
// kept with status cancelled and points already earned are not revoked.
func (s *Service) LeaveEvent(ctx context.Context, eventID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return err
	}

	existing, err := s.events.GetParticipant(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if existing.Status != domain.ParticipantStatusJoined {
		return fmt.Errorf("participation in event %s: %w", eventID, domain.ErrNotFound)
	}

	if _, err := s.events.SetParticipantStatus(ctx, existing.ID, domain.ParticipantStatusCancelled, nil); err != nil {
		return fmt.Errorf("event.LeaveEvent: %w", err)
	}

	s.log.InfoContext(ctx, "event left",
		slog.String("user_id", userID.String()),
		slog.String("event_id", eventID.String()),
	)

	return nil
}
