package log

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

// CreateLog creates a reflection log and grants the log-creation reward
// in the same transaction.
func (s *Service) CreateLog(ctx context.Context, input CreateLogInput) (*domain.Log, error) {
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
	l := &domain.Log{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          strings.TrimSpace(input.Title),
		Content:        input.Content,
		Tags:           tags,
		Visibility:     input.Visibility,
		RelatedEventID: input.RelatedEventID,
		RelatedGoalID:  input.RelatedGoalID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var created *domain.Log
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.logs.Create(txCtx, l)
		if createErr != nil {
			return fmt.Errorf("create log: %w", createErr)
		}

		ref := created.ID.String()
		desc := fmt.Sprintf("Created log: %s", created.Title)
		if _, pointErr := s.points.Create(txCtx, &domain.Point{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      domain.RewardLogCreate,
			ActionType:  domain.ActionLogCreate,
			ReferenceID: &ref,
			Description: &desc,
			CreatedAt:   now,
		}); pointErr != nil {
			return fmt.Errorf("grant points: %w", pointErr)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("log.CreateLog: %w", err)
	}

	s.log.InfoContext(ctx, "log created",
		slog.String("user_id", userID.String()),
		slog.String("log_id", created.ID.String()),
		slog.Int("points", domain.RewardLogCreate),
	)

	return created, nil
}
