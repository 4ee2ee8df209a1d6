// Package dashboard assembles the personal and community home view.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

// Section sizes of the dashboard. Fixed, not client-tunable.
const (
	activeGoalsLimit    = 3
	recentLogsLimit     = 3
	upcomingEventsLimit = 5
	publicLogsLimit     = 5
)

// goalRepo defines the goal listing interface needed by the dashboard.
type goalRepo interface {
	ListActiveByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Goal, error)
}

// logRepo defines the log listing interface needed by the dashboard.
type logRepo interface {
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Log, error)
	ListRecentPublic(ctx context.Context, limit int) ([]domain.Log, error)
}

// eventRepo defines the event listing interface needed by the dashboard.
type eventRepo interface {
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
}

// pointRepo defines the ledger total interface needed by the dashboard.
type pointRepo interface {
	TotalByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service assembles dashboards from the other modules' storage.
type Service struct {
	goals  goalRepo
	logs   logRepo
	events eventRepo
	points pointRepo
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new dashboard service.
func NewService(logger *slog.Logger, goals goalRepo, logs logRepo, events eventRepo, points pointRepo) *Service {
	return &Service{
		goals:  goals,
		logs:   logs,
		events: events,
		points: points,
		log:    logger.With("service", "dashboard"),
		now:    time.Now,
	}
}
