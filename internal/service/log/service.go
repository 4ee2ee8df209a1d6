// Package log implements reflection-log management.
package log

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

// logRepo defines the log repository interface needed by the log service.
type logRepo interface {
	Create(ctx context.Context, log *domain.Log) (*domain.Log, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Log, error)
	List(ctx context.Context, f domain.LogFilter) ([]domain.Log, error)
	Update(ctx context.Context, log *domain.Log) (*domain.Log, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// pointRepo defines the ledger append interface needed by the log service.
type pointRepo interface {
	Create(ctx context.Context, point *domain.Point) (*domain.Point, error)
}

// txManager defines the transaction manager interface needed by the log service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides reflection-log operations.
type Service struct {
	logs   logRepo
	points pointRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new log service.
func NewService(logger *slog.Logger, logs logRepo, points pointRepo, tx txManager) *Service {
	return &Service{
		logs:   logs,
		points: points,
		tx:     tx,
		log:    logger.With("service", "log"),
	}
}

// getOwnedLog loads a log and verifies ownership. A log owned by another
// user is reported as not found.
func (s *Service) getOwnedLog(ctx context.Context, userID, logID uuid.UUID) (*domain.Log, error) {
	l, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if l.UserID != userID {
		return nil, fmt.Errorf("log %s: %w", logID, domain.ErrNotFound)
	}
	return l, nil
}
