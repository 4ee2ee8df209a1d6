package dashboard

import (
	"context"
	"fmt"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// Personal is the viewer's own slice of the dashboard.
type Personal struct {
	ActiveGoals []domain.Goal
	RecentLogs  []domain.Log
	TotalPoints int
}

// Community is the shared slice of the dashboard, identical for every
// viewer at a given moment.
type Community struct {
	UpcomingEvents   []domain.Event
	RecentPublicLogs []domain.Log
}

// Dashboard is the combined home view.
type Dashboard struct {
	Personal  Personal
	Community Community
}

// GetDashboard assembles the authenticated user's home view. Each
// section is read independently; there is no cross-section snapshot
// guarantee.
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	goals, err := s.goals.ListActiveByUser(ctx, userID, activeGoalsLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetDashboard: active goals: %w", err)
	}

	recentLogs, err := s.logs.ListRecentByUser(ctx, userID, recentLogsLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetDashboard: recent logs: %w", err)
	}

	total, err := s.points.TotalByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetDashboard: point total: %w", err)
	}

	events, err := s.events.ListUpcoming(ctx, s.now(), upcomingEventsLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetDashboard: upcoming events: %w", err)
	}

	publicLogs, err := s.logs.ListRecentPublic(ctx, publicLogsLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetDashboard: public logs: %w", err)
	}

	return &Dashboard{
		Personal: Personal{
			ActiveGoals: goals,
			RecentLogs:  recentLogs,
			TotalPoints: total,
		},
		Community: Community{
			UpcomingEvents:   events,
			RecentPublicLogs: publicLogs,
		},
	}, nil
}
