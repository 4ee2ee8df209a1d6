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

// CreateGoal creates a new goal for the authenticated user.
// New goals start active with zero progress; no points are granted.
func (s *Service) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	g, err := s.goals.Create(ctx, &domain.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Status:      domain.GoalStatusActive,
		Progress:    0,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("goal.CreateGoal: %w", err)
	}

	s.log.InfoContext(ctx, "goal created",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", g.ID.String()),
	)

	return g, nil
}

// GetGoal returns one of the authenticated user's goals.
func (s *Service) GetGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.getOwnedGoal(ctx, userID, goalID)
}

// ListGoals returns the authenticated user's goals newest-first,
// optionally filtered by status.
func (s *Service) ListGoals(ctx context.Context, status domain.GoalStatus) ([]domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if status != "" && !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be active, completed or archived")
	}

	goals, err := s.goals.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("goal.ListGoals: %w", err)
	}
	return goals, nil
}

// UpdateGoal applies a partial update to one of the authenticated user's
// goals. Setting status to completed stamps completed_at once.
func (s *Service) UpdateGoal(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.getOwnedGoal(ctx, userID, input.GoalID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		g.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		g.Description = input.Description
	}
	if input.Category != nil {
		g.Category = *input.Category
	}
	if input.Status != nil {
		g.Status = *input.Status
		if g.Status == domain.GoalStatusCompleted && g.CompletedAt == nil {
			now := time.Now()
			g.CompletedAt = &now
		}
	}
	if input.Progress != nil {
		g.Progress = *input.Progress
	}
	if input.DueDate != nil {
		g.DueDate = input.DueDate
	}

	updated, err := s.goals.Update(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("goal.UpdateGoal: %w", err)
	}
	return updated, nil
}

// DeleteGoal removes one of the authenticated user's goals.
// Steps cascade at the storage layer.
func (s *Service) DeleteGoal(ctx context.Context, goalID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.getOwnedGoal(ctx, userID, goalID); err != nil {
		return err
	}

	if err := s.goals.Delete(ctx, goalID); err != nil {
		return fmt.Errorf("goal.DeleteGoal: %w", err)
	}

	s.log.InfoContext(ctx, "goal deleted",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", goalID.String()),
	)

	return nil
}
