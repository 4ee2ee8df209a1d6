package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// CompleteStep marks a step completed and grants the step-completion
// reward in the same transaction. There is no repeat-completion guard:
// completing an already completed step grants points again.
func (s *Service) CompleteStep(ctx context.Context, stepID uuid.UUID) (*domain.Step, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.getOwnedStep(ctx, userID, stepID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	st.Status = domain.StepStatusCompleted
	st.CompletedAt = &now

	var completed *domain.Step
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		completed, updateErr = s.steps.Update(txCtx, st)
		if updateErr != nil {
			return fmt.Errorf("update step: %w", updateErr)
		}

		ref := stepID.String()
		desc := fmt.Sprintf("Completed step: %s", completed.Title)
		if _, pointErr := s.points.Create(txCtx, &domain.Point{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      domain.RewardStepComplete,
			ActionType:  domain.ActionStepComplete,
			ReferenceID: &ref,
			Description: &desc,
			CreatedAt:   now,
		}); pointErr != nil {
			return fmt.Errorf("grant points: %w", pointErr)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("goal.CompleteStep: %w", err)
	}

	s.log.InfoContext(ctx, "step completed",
		slog.String("user_id", userID.String()),
		slog.String("step_id", stepID.String()),
		slog.Int("points", domain.RewardStepComplete),
	)

	return completed, nil
}
