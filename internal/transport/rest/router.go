package rest

import "net/http"

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	User      *UserHandler
	Point     *PointHandler
	Goal      *GoalHandler
	Log       *LogHandler
	Event     *EventHandler
	Project   *ProjectHandler
	Dashboard *DashboardHandler
}

// NewRouter mounts all API routes on a ServeMux. Authentication is
// enforced by the services themselves; the mux only dispatches.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/v1/auth/me", h.Auth.Me)

	// "me" is a literal segment, so it wins over {user_id}.
	mux.HandleFunc("GET /api/v1/users/me/profile", h.User.GetMyProfile)
	mux.HandleFunc("PATCH /api/v1/users/me/profile", h.User.UpdateMyProfile)
	mux.HandleFunc("GET /api/v1/users/{user_id}/profile", h.User.GetProfile)

	mux.HandleFunc("GET /api/v1/users/me/points", h.Point.Summary)
	mux.HandleFunc("GET /api/v1/users/me/points/history", h.Point.History)

	mux.HandleFunc("POST /api/v1/goals", h.Goal.Create)
	mux.HandleFunc("GET /api/v1/goals", h.Goal.List)
	mux.HandleFunc("GET /api/v1/goals/{id}", h.Goal.Get)
	mux.HandleFunc("PATCH /api/v1/goals/{id}", h.Goal.Update)
	mux.HandleFunc("DELETE /api/v1/goals/{id}", h.Goal.Delete)
	mux.HandleFunc("POST /api/v1/goals/{goal_id}/steps", h.Goal.CreateStep)
	mux.HandleFunc("GET /api/v1/goals/{goal_id}/steps", h.Goal.ListSteps)
	mux.HandleFunc("PATCH /api/v1/steps/{id}", h.Goal.UpdateStep)
	mux.HandleFunc("DELETE /api/v1/steps/{id}", h.Goal.DeleteStep)
	mux.HandleFunc("POST /api/v1/steps/{id}/complete", h.Goal.CompleteStep)

	mux.HandleFunc("POST /api/v1/logs", h.Log.Create)
	mux.HandleFunc("GET /api/v1/logs", h.Log.List)
	mux.HandleFunc("GET /api/v1/logs/{id}", h.Log.Get)
	mux.HandleFunc("PATCH /api/v1/logs/{id}", h.Log.Update)
	mux.HandleFunc("DELETE /api/v1/logs/{id}", h.Log.Delete)

	mux.HandleFunc("POST /api/v1/events", h.Event.Create)
	mux.HandleFunc("GET /api/v1/events", h.Event.List)
	mux.HandleFunc("GET /api/v1/events/{id}", h.Event.Get)
	mux.HandleFunc("PATCH /api/v1/events/{id}", h.Event.Update)
	mux.HandleFunc("DELETE /api/v1/events/{id}", h.Event.Delete)
	mux.HandleFunc("POST /api/v1/events/{id}/join", h.Event.Join)
	mux.HandleFunc("DELETE /api/v1/events/{id}/leave", h.Event.Leave)
	mux.HandleFunc("GET /api/v1/events/{id}/participants", h.Event.Participants)

	mux.HandleFunc("POST /api/v1/projects", h.Project.Create)
	mux.HandleFunc("GET /api/v1/projects", h.Project.List)
	mux.HandleFunc("GET /api/v1/projects/{id}", h.Project.Get)
	mux.HandleFunc("PATCH /api/v1/projects/{id}", h.Project.Update)
	mux.HandleFunc("DELETE /api/v1/projects/{id}", h.Project.Delete)
	mux.HandleFunc("POST /api/v1/projects/{id}/join", h.Project.Join)
	mux.HandleFunc("GET /api/v1/projects/{id}/members", h.Project.Members)
	mux.HandleFunc("POST /api/v1/projects/{id}/tasks", h.Project.CreateTask)
	mux.HandleFunc("GET /api/v1/projects/{id}/tasks", h.Project.ListTasks)
	mux.HandleFunc("PATCH /api/v1/projects/{id}/tasks/{task_id}", h.Project.UpdateTask)
	mux.HandleFunc("DELETE /api/v1/projects/{id}/tasks/{task_id}", h.Project.DeleteTask)

	mux.HandleFunc("GET /api/v1/dashboard", h.Dashboard.Get)

	return mux
}
