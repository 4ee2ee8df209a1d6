package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/internal/service/goal"
)

// goalService defines the minimal interface needed by GoalHandler.
type goalService interface {
	CreateGoal(ctx context.Context, input goal.CreateGoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error)
	ListGoals(ctx context.Context, status domain.GoalStatus) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, input goal.UpdateGoalInput) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID uuid.UUID) error
	CreateStep(ctx context.Context, input goal.CreateStepInput) (*domain.Step, error)
	ListSteps(ctx context.Context, goalID uuid.UUID) ([]domain.Step, error)
	UpdateStep(ctx context.Context, input goal.UpdateStepInput) (*domain.Step, error)
	DeleteStep(ctx context.Context, stepID uuid.UUID) error
	CompleteStep(ctx context.Context, stepID uuid.UUID) (*domain.Step, error)
}

// GoalHandler serves goal and step REST endpoints.
type GoalHandler struct {
	svc goalService
	log *slog.Logger
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(svc goalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{svc: svc, log: logger.With("handler", "goal")}
}

type createGoalRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Category    string     `json:"category"`
	DueDate     *time.Time `json:"due_date"`
}

type updateGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Status      *string    `json:"status"`
	Progress    *int       `json:"progress"`
	DueDate     *time.Time `json:"due_date"`
}

type goalResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toGoalResponse(g *domain.Goal) goalResponse {
	return goalResponse{
		ID:          g.ID.String(),
		UserID:      g.UserID.String(),
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category.String(),
		Status:      g.Status.String(),
		Progress:    g.Progress,
		DueDate:     g.DueDate,
		CompletedAt: g.CompletedAt,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

type createStepRequest struct {
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	Order            int        `json:"order"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	DueDate          *time.Time `json:"due_date"`
}

type updateStepRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status"`
	Order            *int       `json:"order"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	Notes            *string    `json:"notes"`
	DueDate          *time.Time `json:"due_date"`
}

type stepResponse struct {
	ID               string     `json:"id"`
	GoalID           string     `json:"goal_id"`
	Order            int        `json:"order"`
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	Status           string     `json:"status"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	Notes            *string    `json:"notes"`
	DueDate          *time.Time `json:"due_date"`
	CompletedAt      *time.Time `json:"completed_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toStepResponse(st *domain.Step) stepResponse {
	return stepResponse{
		ID:               st.ID.String(),
		GoalID:           st.GoalID.String(),
		Order:            st.Order,
		Title:            st.Title,
		Description:      st.Description,
		Status:           st.Status.String(),
		EstimatedMinutes: st.EstimatedMinutes,
		Notes:            st.Notes,
		DueDate:          st.DueDate,
		CompletedAt:      st.CompletedAt,
		CreatedAt:        st.CreatedAt,
		UpdatedAt:        st.UpdatedAt,
	}
}

// Create handles POST /goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	g, err := h.svc.CreateGoal(r.Context(), goal.CreateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.GoalCategory(req.Category),
		DueDate:     req.DueDate,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGoalResponse(g))
}

// List handles GET /goals?status=.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.GoalStatus(r.URL.Query().Get("status"))

	goals, err := h.svc.ListGoals(r.Context(), status)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]goalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, toGoalResponse(&goals[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /goals/{id}.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	g, err := h.svc.GetGoal(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Update handles PATCH /goals/{id}.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateGoalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:      id,
		Title:       req.Title,
		Description: req.Description,
		Progress:    req.Progress,
		DueDate:     req.DueDate,
	}
	if req.Category != nil {
		c := domain.GoalCategory(*req.Category)
		input.Category = &c
	}
	if req.Status != nil {
		s := domain.GoalStatus(*req.Status)
		input.Status = &s
	}

	g, err := h.svc.UpdateGoal(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Delete handles DELETE /goals/{id}.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteGoal(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateStep handles POST /goals/{goal_id}/steps.
func (h *GoalHandler) CreateStep(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathUUID(w, r, "goal_id")
	if !ok {
		return
	}

	var req createStepRequest
	if !decodeBody(w, r, &req) {
		return
	}

	st, err := h.svc.CreateStep(r.Context(), goal.CreateStepInput{
		GoalID:           goalID,
		Title:            req.Title,
		Description:      req.Description,
		Order:            req.Order,
		EstimatedMinutes: req.EstimatedMinutes,
		DueDate:          req.DueDate,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStepResponse(st))
}

// ListSteps handles GET /goals/{goal_id}/steps.
func (h *GoalHandler) ListSteps(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathUUID(w, r, "goal_id")
	if !ok {
		return
	}

	steps, err := h.svc.ListSteps(r.Context(), goalID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]stepResponse, 0, len(steps))
	for i := range steps {
		out = append(out, toStepResponse(&steps[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateStep handles PATCH /steps/{id}.
func (h *GoalHandler) UpdateStep(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateStepRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := goal.UpdateStepInput{
		StepID:           id,
		Title:            req.Title,
		Description:      req.Description,
		Order:            req.Order,
		EstimatedMinutes: req.EstimatedMinutes,
		Notes:            req.Notes,
		DueDate:          req.DueDate,
	}
	if req.Status != nil {
		s := domain.StepStatus(*req.Status)
		input.Status = &s
	}

	st, err := h.svc.UpdateStep(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStepResponse(st))
}

// DeleteStep handles DELETE /steps/{id}.
func (h *GoalHandler) DeleteStep(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteStep(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteStep handles POST /steps/{id}/complete.
func (h *GoalHandler) CompleteStep(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	st, err := h.svc.CompleteStep(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStepResponse(st))
}
