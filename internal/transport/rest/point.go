package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/asotobase/backend/internal/domain"
)

// pointService defines the minimal interface needed by PointHandler.
type pointService interface {
	GetMySummary(ctx context.Context) (*domain.PointSummary, error)
	GetMyHistory(ctx context.Context) ([]domain.Point, error)
}

// PointHandler serves contribution-point REST endpoints.
type PointHandler struct {
	svc pointService
	log *slog.Logger
}

// NewPointHandler creates a PointHandler.
func NewPointHandler(svc pointService, logger *slog.Logger) *PointHandler {
	return &PointHandler{svc: svc, log: logger.With("handler", "point")}
}

type pointSummaryResponse struct {
	UserID      string `json:"user_id"`
	TotalPoints int    `json:"total_points"`
}

type pointResponse struct {
	ID          string    `json:"id"`
	Amount      int       `json:"amount"`
	ActionType  string    `json:"action_type"`
	ReferenceID *string   `json:"reference_id"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary handles GET /users/me/points.
func (h *PointHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetMySummary(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, pointSummaryResponse{
		UserID:      summary.UserID.String(),
		TotalPoints: summary.TotalPoints,
	})
}

// History handles GET /users/me/points/history.
func (h *PointHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.GetMyHistory(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]pointResponse, 0, len(history))
	for _, p := range history {
		out = append(out, pointResponse{
			ID:          p.ID.String(),
			Amount:      p.Amount,
			ActionType:  p.ActionType,
			ReferenceID: p.ReferenceID,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, out)
}
