// Package goal implements goal and step management.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

// goalRepo defines the goal repository interface needed by the goal service.
type goalRepo interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status domain.GoalStatus) ([]domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// stepRepo defines the step repository interface needed by the goal service.
type stepRepo interface {
	Create(ctx context.Context, step *domain.Step) (*domain.Step, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Step, error)
	ListByGoal(ctx context.Context, goalID uuid.UUID) ([]domain.Step, error)
	Update(ctx context.Context, step *domain.Step) (*domain.Step, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// pointRepo defines the ledger append interface needed by the goal service.
type pointRepo interface {
	Create(ctx context.Context, point *domain.Point) (*domain.Point, error)
}

// txManager defines the transaction manager interface needed by the goal service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides goal and step operations.
type Service struct {
	goals  goalRepo
	steps  stepRepo
	points pointRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new goal service.
func NewService(
	logger *slog.Logger,
	goals goalRepo,
	steps stepRepo,
	points pointRepo,
	tx txManager,
) *Service {
	return &Service{
		goals:  goals,
		steps:  steps,
		points: points,
		tx:     tx,
		log:    logger.With("service", "goal"),
	}
}

// getOwnedGoal loads a goal and verifies ownership. A goal owned by a
// different user is reported as not found, never as forbidden.
func (s *Service) getOwnedGoal(ctx context.Context, userID, goalID uuid.UUID) (*domain.Goal, error) {
	g, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if g.UserID != userID {
		return nil, fmt.Errorf("goal %s: %w", goalID, domain.ErrNotFound)
	}
	return g, nil
}

// getOwnedStep loads a step and verifies ownership via its parent goal.
func (s *Service) getOwnedStep(ctx context.Context, userID, stepID uuid.UUID) (*domain.Step, error) {
	st, err := s.steps.GetByID(ctx, stepID)
	if err != nil {
		return nil, err
	}
	if _, err := s.getOwnedGoal(ctx, userID, st.GoalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("step %s: %w", stepID, domain.ErrNotFound)
		}
		return nil, err
	}
	return st, nil
}
