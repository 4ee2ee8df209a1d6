package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	GetMyProfile(ctx context.Context) (*domain.UserProfile, error)
	UpdateMyProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.UserProfile, error)
}

// UserHandler serves user profile REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Bio           *string   `json:"bio"`
	AvatarURL     *string   `json:"avatar_url"`
	Skills        *[]string `json:"skills"`
	Interests     *[]string `json:"interests"`
	AvailableTime *int      `json:"available_time"`
}

type profileResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Bio           *string   `json:"bio"`
	AvatarURL     *string   `json:"avatar_url"`
	Skills        []string  `json:"skills"`
	Interests     []string  `json:"interests"`
	AvailableTime *int      `json:"available_time"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toProfileResponse(p *domain.UserProfile) profileResponse {
	return profileResponse{
		ID:            p.ID.String(),
		UserID:        p.UserID.String(),
		Bio:           p.Bio,
		AvatarURL:     p.AvatarURL,
		Skills:        p.Skills,
		Interests:     p.Interests,
		AvailableTime: p.AvailableTime,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// GetProfile handles GET /users/{user_id}/profile.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	profile, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// GetMyProfile handles GET /users/me/profile.
func (h *UserHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetMyProfile(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// UpdateMyProfile handles PATCH /users/me/profile.
func (h *UserHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.svc.UpdateMyProfile(r.Context(), user.UpdateProfileInput{
		Bio:           req.Bio,
		AvatarURL:     req.AvatarURL,
		Skills:        req.Skills,
		Interests:     req.Interests,
		AvailableTime: req.AvailableTime,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}
