package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/asotobase/backend/internal/service/dashboard"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	GetDashboard(ctx context.Context) (*dashboard.Dashboard, error)
}

// DashboardHandler serves the combined home view.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type personalResponse struct {
	ActiveGoals []goalResponse `json:"active_goals"`
	RecentLogs  []logResponse  `json:"recent_logs"`
	TotalPoints int            `json:"total_points"`
}

type communityResponse struct {
	UpcomingEvents   []eventResponse `json:"upcoming_events"`
	RecentPublicLogs []logResponse   `json:"recent_public_logs"`
}

type dashboardResponse struct {
	Personal  personalResponse  `json:"personal"`
	Community communityResponse `json:"community"`
}

// Get handles GET /dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := dashboardResponse{
		Personal: personalResponse{
			ActiveGoals: make([]goalResponse, 0, len(d.Personal.ActiveGoals)),
			RecentLogs:  make([]logResponse, 0, len(d.Personal.RecentLogs)),
			TotalPoints: d.Personal.TotalPoints,
		},
		Community: communityResponse{
			UpcomingEvents:   make([]eventResponse, 0, len(d.Community.UpcomingEvents)),
			RecentPublicLogs: make([]logResponse, 0, len(d.Community.RecentPublicLogs)),
		},
	}
	for i := range d.Personal.ActiveGoals {
		resp.Personal.ActiveGoals = append(resp.Personal.ActiveGoals, toGoalResponse(&d.Personal.ActiveGoals[i]))
	}
	for i := range d.Personal.RecentLogs {
		resp.Personal.RecentLogs = append(resp.Personal.RecentLogs, toLogResponse(&d.Personal.RecentLogs[i]))
	}
	for i := range d.Community.UpcomingEvents {
		resp.Community.UpcomingEvents = append(resp.Community.UpcomingEvents, toEventResponse(&d.Community.UpcomingEvents[i]))
	}
	for i := range d.Community.RecentPublicLogs {
		resp.Community.RecentPublicLogs = append(resp.Community.RecentPublicLogs, toLogResponse(&d.Community.RecentPublicLogs[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}
