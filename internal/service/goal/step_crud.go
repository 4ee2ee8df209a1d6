package goal

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

// CreateStep adds a step to one of the authenticated user's goals.
// New steps start pending.
func (s *Service) CreateStep(ctx context.Context, input CreateStepInput) (*domain.Step, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.getOwnedGoal(ctx, userID, input.GoalID); err != nil {
		return nil, err
	}

	now := time.Now()
	st, err := s.steps.Create(ctx, &domain.Step{
		ID:               uuid.New(),
		GoalID:           input.GoalID,
		Order:            input.Order,
		Title:            strings.TrimSpace(input.Title),
		Description:      input.Description,
		Status:           domain.StepStatusPending,
		EstimatedMinutes: input.EstimatedMinutes,
		DueDate:          input.DueDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("goal.CreateStep: %w", err)
	}

	s.log.InfoContext(ctx, "step created",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", input.GoalID.String()),
		slog.String("step_id", st.ID.String()),
	)

	return st, nil
}

// ListSteps returns the steps of one of the authenticated user's goals,
// ordered by their order column.
func (s *Service) ListSteps(ctx context.Context, goalID uuid.UUID) ([]domain.Step, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.getOwnedGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}

	steps, err := s.steps.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("goal.ListSteps: %w", err)
	}
	return steps, nil
}

// UpdateStep applies a partial update to a step owned via its parent goal.
func (s *Service) UpdateStep(ctx context.Context, input UpdateStepInput) (*domain.Step, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	st, err := s.getOwnedStep(ctx, userID, input.StepID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		st.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		st.Description = input.Description
	}
	if input.Status != nil {
		st.Status = *input.Status
		if st.Status == domain.StepStatusCompleted && st.CompletedAt == nil {
			now := time.Now()
			st.CompletedAt = &now
		}
	}
	if input.Order != nil {
		st.Order = *input.Order
	}
	if input.EstimatedMinutes != nil {
		st.EstimatedMinutes = input.EstimatedMinutes
	}
	if input.Notes != nil {
		st.Notes = input.Notes
	}
	if input.DueDate != nil {
		st.DueDate = input.DueDate
	}

	updated, err := s.steps.Update(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("goal.UpdateStep: %w", err)
	}
	return updated, nil
}

// DeleteStep removes a step owned via its parent goal.
func (s *Service) DeleteStep(ctx context.Context, stepID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.getOwnedStep(ctx, userID, stepID); err != nil {
		return err
	}

	if err := s.steps.Delete(ctx, stepID); err != nil {
		return fmt.Errorf("goal.DeleteStep: %w", err)
	}
	return nil
}
