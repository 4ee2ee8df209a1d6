package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/internal/service/event"
)

// eventService defines the minimal interface needed by EventHandler.
type eventService interface {
	CreateEvent(ctx context.Context, input event.CreateEventInput) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	UpdateEvent(ctx context.Context, input event.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
	JoinEvent(ctx context.Context, eventID uuid.UUID) (*domain.EventParticipant, error)
	LeaveEvent(ctx context.Context, eventID uuid.UUID) error
	ListParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.EventParticipant, error)
}

// EventHandler serves community-event REST endpoints.
type EventHandler struct {
	svc eventService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "event")}
}

type createEventRequest struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	LocationType   string     `json:"location_type"`
	LocationDetail *string    `json:"location_detail"`
	MaxAttendees   *int       `json:"max_attendees"`
	Tags           []string   `json:"tags"`
}

type updateEventRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	LocationType   *string    `json:"location_type"`
	LocationDetail *string    `json:"location_detail"`
	MaxAttendees   *int       `json:"max_attendees"`
	Tags           *[]string  `json:"tags"`
	Status         *string    `json:"status"`
}

type eventResponse struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"owner_id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	LocationType   string     `json:"location_type"`
	LocationDetail *string    `json:"location_detail"`
	MaxAttendees   *int       `json:"max_attendees"`
	Tags           []string   `json:"tags"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:             e.ID.String(),
		OwnerID:        e.OwnerID.String(),
		Title:          e.Title,
		Description:    e.Description,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		LocationType:   e.LocationType.String(),
		LocationDetail: e.LocationDetail,
		MaxAttendees:   e.MaxAttendees,
		Tags:           e.Tags,
		Status:         e.Status.String(),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type participantResponse struct {
	ID       string    `json:"id"`
	EventID  string    `json:"event_id"`
	UserID   string    `json:"user_id"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joined_at"`
}

func toParticipantResponse(p *domain.EventParticipant) participantResponse {
	return participantResponse{
		ID:       p.ID.String(),
		EventID:  p.EventID.String(),
		UserID:   p.UserID.String(),
		Status:   p.Status.String(),
		JoinedAt: p.JoinedAt,
	}
}

// Create handles POST /events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	e, err := h.svc.CreateEvent(r.Context(), event.CreateEventInput{
		Title:          req.Title,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		LocationType:   domain.LocationType(req.LocationType),
		LocationDetail: req.LocationDetail,
		MaxAttendees:   req.MaxAttendees,
		Tags:           req.Tags,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(e))
}

// List handles GET /events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListEvents(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	e, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// Update handles PATCH /events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := event.UpdateEventInput{
		EventID:        id,
		Title:          req.Title,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		LocationDetail: req.LocationDetail,
		MaxAttendees:   req.MaxAttendees,
		Tags:           req.Tags,
	}
	if req.LocationType != nil {
		lt := domain.LocationType(*req.LocationType)
		input.LocationType = &lt
	}
	if req.Status != nil {
		s := domain.EventStatus(*req.Status)
		input.Status = &s
	}

	e, err := h.svc.UpdateEvent(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// Delete handles DELETE /events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Join handles POST /events/{id}/join.
func (h *EventHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.JoinEvent(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toParticipantResponse(p))
}

// Leave handles DELETE /events/{id}/leave.
func (h *EventHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.LeaveEvent(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Participants handles GET /events/{id}/participants.
func (h *EventHandler) Participants(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	participants, err := h.svc.ListParticipants(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]participantResponse, 0, len(participants))
	for i := range participants {
		out = append(out, toParticipantResponse(&participants[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
