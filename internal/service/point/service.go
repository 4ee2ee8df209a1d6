// Package point exposes read access to the contribution-points ledger.
package point

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// pointRepo defines the ledger repository interface needed by the point service.
type pointRepo interface {
	TotalByUser(ctx context.Context, userID uuid.UUID) (int, error)
	HistoryByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Point, error)
}

// HistoryLimit caps the number of ledger rows returned by GetMyHistory.
const HistoryLimit = 100

// Service provides point ledger read operations.
type Service struct {
	points pointRepo
	log    *slog.Logger
}

// NewService creates a new point service.
func NewService(logger *slog.Logger, points pointRepo) *Service {
	return &Service{
		points: points,
		log:    logger.With("service", "point"),
	}
}

// GetMySummary returns the authenticated user's fresh ledger total.
// The total is computed by summing rows on every call.
func (s *Service) GetMySummary(ctx context.Context) (*domain.PointSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	total, err := s.points.TotalByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("point.GetMySummary: %w", err)
	}

	return &domain.PointSummary{
		UserID:      userID,
		TotalPoints: total,
	}, nil
}

// GetMyHistory returns the authenticated user's most recent ledger rows,
// newest first, capped at HistoryLimit.
func (s *Service) GetMyHistory(ctx context.Context) ([]domain.Point, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	history, err := s.points.HistoryByUser(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("point.GetMyHistory: %w", err)
	}
	return history, nil
}
