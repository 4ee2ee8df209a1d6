package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	logsvc "github.com/asotobase/backend/internal/service/log"
)

// logService defines the minimal interface needed by LogHandler.
type logService interface {
	CreateLog(ctx context.Context, input logsvc.CreateLogInput) (*domain.Log, error)
	ListLogs(ctx context.Context, input logsvc.ListLogsInput) ([]domain.Log, error)
	GetLog(ctx context.Context, logID uuid.UUID) (*domain.Log, error)
	UpdateLog(ctx context.Context, input logsvc.UpdateLogInput) (*domain.Log, error)
	DeleteLog(ctx context.Context, logID uuid.UUID) error
}

// LogHandler serves reflection-log REST endpoints.
type LogHandler struct {
	svc logService
	log *slog.Logger
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(svc logService, logger *slog.Logger) *LogHandler {
	return &LogHandler{svc: svc, log: logger.With("handler", "log")}
}

type createLogRequest struct {
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Tags           []string   `json:"tags"`
	Visibility     string     `json:"visibility"`
	RelatedEventID *uuid.UUID `json:"related_event_id"`
	RelatedGoalID  *uuid.UUID `json:"related_goal_id"`
}

type updateLogRequest struct {
	Title          *string    `json:"title"`
	Content        *string    `json:"content"`
	Tags           *[]string  `json:"tags"`
	Visibility     *string    `json:"visibility"`
	RelatedEventID *uuid.UUID `json:"related_event_id"`
	RelatedGoalID  *uuid.UUID `json:"related_goal_id"`
}

type logResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Tags           []string   `json:"tags"`
	Visibility     string     `json:"visibility"`
	RelatedEventID *uuid.UUID `json:"related_event_id"`
	RelatedGoalID  *uuid.UUID `json:"related_goal_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toLogResponse(l *domain.Log) logResponse {
	return logResponse{
		ID:             l.ID.String(),
		UserID:         l.UserID.String(),
		Title:          l.Title,
		Content:        l.Content,
		Tags:           l.Tags,
		Visibility:     l.Visibility.String(),
		RelatedEventID: l.RelatedEventID,
		RelatedGoalID:  l.RelatedGoalID,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// Create handles POST /logs.
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	l, err := h.svc.CreateLog(r.Context(), logsvc.CreateLogInput{
		Title:          req.Title,
		Content:        req.Content,
		Tags:           req.Tags,
		Visibility:     domain.LogVisibility(req.Visibility),
		RelatedEventID: req.RelatedEventID,
		RelatedGoalID:  req.RelatedGoalID,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLogResponse(l))
}

// List handles GET /logs?visibility=&tag=.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.ListLogs(r.Context(), logsvc.ListLogsInput{
		Visibility: domain.LogVisibility(r.URL.Query().Get("visibility")),
		Tag:        r.URL.Query().Get("tag"),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]logResponse, 0, len(logs))
	for i := range logs {
		out = append(out, toLogResponse(&logs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /logs/{id}.
func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := h.svc.GetLog(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(l))
}

// Update handles PATCH /logs/{id}.
func (h *LogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateLogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := logsvc.UpdateLogInput{
		LogID:          id,
		Title:          req.Title,
		Content:        req.Content,
		Tags:           req.Tags,
		RelatedEventID: req.RelatedEventID,
		RelatedGoalID:  req.RelatedGoalID,
	}
	if req.Visibility != nil {
		v := domain.LogVisibility(*req.Visibility)
		input.Visibility = &v
	}

	l, err := h.svc.UpdateLog(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(l))
}

// Delete handles DELETE /logs/{id}.
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteLog(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
