package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	JoinProject(ctx context.Context, projectID uuid.UUID) (*domain.ProjectMember, error)
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMember, error)
	CreateTask(ctx context.Context, input project.CreateTaskInput) (*domain.ProjectTask, error)
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectTask, error)
	UpdateTask(ctx context.Context, input project.UpdateTaskInput) (*domain.ProjectTask, error)
	DeleteTask(ctx context.Context, projectID, taskID uuid.UUID) error
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Category       string     `json:"category"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Frequency      *string    `json:"frequency"`
	LocationType   string     `json:"location_type"`
	LocationDetail *string    `json:"location_detail"`
	IsRecruiting   bool       `json:"is_recruiting"`
	MaxMembers     *int       `json:"max_members"`
	RequiredSkills []string   `json:"required_skills"`
	Tags           []string   `json:"tags"`
	Visibility     string     `json:"visibility"`
}

type updateProjectRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Frequency      *string    `json:"frequency"`
	LocationType   *string    `json:"location_type"`
	LocationDetail *string    `json:"location_detail"`
	IsRecruiting   *bool      `json:"is_recruiting"`
	MaxMembers     *int       `json:"max_members"`
	RequiredSkills *[]string  `json:"required_skills"`
	Tags           *[]string  `json:"tags"`
	Visibility     *string    `json:"visibility"`
}

type projectResponse struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"owner_id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Category       string     `json:"category"`
	Status         string     `json:"status"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Frequency      *string    `json:"frequency"`
	LocationType   string     `json:"location_type"`
	LocationDetail *string    `json:"location_detail"`
	IsRecruiting   bool       `json:"is_recruiting"`
	MaxMembers     *int       `json:"max_members"`
	RequiredSkills []string   `json:"required_skills"`
	Tags           []string   `json:"tags"`
	Visibility     string     `json:"visibility"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:             p.ID.String(),
		OwnerID:        p.OwnerID.String(),
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category.String(),
		Status:         p.Status.String(),
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Frequency:      p.Frequency,
		LocationType:   p.LocationType.String(),
		LocationDetail: p.LocationDetail,
		IsRecruiting:   p.IsRecruiting,
		MaxMembers:     p.MaxMembers,
		RequiredSkills: p.RequiredSkills,
		Tags:           p.Tags,
		Visibility:     p.Visibility.String(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type memberResponse struct {
	ID                 string     `json:"id"`
	ProjectID          string     `json:"project_id"`
	UserID             string     `json:"user_id"`
	Role               string     `json:"role"`
	Status             string     `json:"status"`
	ContributionRole   *string    `json:"contribution_role"`
	ContributionPoints int        `json:"contribution_points"`
	JoinedAt           *time.Time `json:"joined_at"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toMemberResponse(m *domain.ProjectMember) memberResponse {
	return memberResponse{
		ID:                 m.ID.String(),
		ProjectID:          m.ProjectID.String(),
		UserID:             m.UserID.String(),
		Role:               m.Role.String(),
		Status:             m.Status.String(),
		ContributionRole:   m.ContributionRole,
		ContributionPoints: m.ContributionPoints,
		JoinedAt:           m.JoinedAt,
		CreatedAt:          m.CreatedAt,
	}
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	Order       *int       `json:"order"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	Status      *string    `json:"status"`
	Order       *int       `json:"order"`
	DueDate     *time.Time `json:"due_date"`
}

type taskResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Order       *int       `json:"order"`
	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toTaskResponse(t *domain.ProjectTask) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		ProjectID:   t.ProjectID.String(),
		AssigneeID:  t.AssigneeID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		Order:       t.Order,
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.svc.CreateProject(r.Context(), project.CreateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       domain.ProjectCategory(req.Category),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Frequency:      req.Frequency,
		LocationType:   domain.LocationType(req.LocationType),
		LocationDetail: req.LocationDetail,
		IsRecruiting:   req.IsRecruiting,
		MaxMembers:     req.MaxMembers,
		RequiredSkills: req.RequiredSkills,
		Tags:           req.Tags,
		Visibility:     domain.ProjectVisibility(req.Visibility),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Update handles PATCH /projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := project.UpdateProjectInput{
		ProjectID:      id,
		Title:          req.Title,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Frequency:      req.Frequency,
		LocationDetail: req.LocationDetail,
		IsRecruiting:   req.IsRecruiting,
		MaxMembers:     req.MaxMembers,
		RequiredSkills: req.RequiredSkills,
		Tags:           req.Tags,
	}
	if req.Status != nil {
		s := domain.ProjectStatus(*req.Status)
		input.Status = &s
	}
	if req.LocationType != nil {
		lt := domain.LocationType(*req.LocationType)
		input.LocationType = &lt
	}
	if req.Visibility != nil {
		v := domain.ProjectVisibility(*req.Visibility)
		input.Visibility = &v
	}

	p, err := h.svc.UpdateProject(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Join handles POST /projects/{id}/join.
func (h *ProjectHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	m, err := h.svc.JoinProject(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMemberResponse(m))
}

// Members handles GET /projects/{id}/members.
func (h *ProjectHandler) Members(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	members, err := h.svc.ListMembers(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]memberResponse, 0, len(members))
	for i := range members {
		out = append(out, toMemberResponse(&members[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateTask handles POST /projects/{id}/tasks.
func (h *ProjectHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req createTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := h.svc.CreateTask(r.Context(), project.CreateTaskInput{
		ProjectID:   id,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Order:       req.Order,
		DueDate:     req.DueDate,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(t))
}

// ListTasks handles GET /projects/{id}/tasks.
func (h *ProjectHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskResponse(&tasks[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateTask handles PATCH /projects/{id}/tasks/{task_id}.
func (h *ProjectHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	taskID, ok := pathUUID(w, r, "task_id")
	if !ok {
		return
	}

	var req updateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := project.UpdateTaskInput{
		ProjectID:   id,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Order:       req.Order,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		s := domain.TaskStatus(*req.Status)
		input.Status = &s
	}

	t, err := h.svc.UpdateTask(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// DeleteTask handles DELETE /projects/{id}/tasks/{task_id}.
func (h *ProjectHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	taskID, ok := pathUUID(w, r, "task_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id, taskID); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
