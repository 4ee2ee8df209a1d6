package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// GetProfile returns the profile of the given user.
// Returns ErrNotFound when no profile row exists yet.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return profile, nil
}

// GetMyProfile returns the authenticated user's own profile.
func (s *Service) GetMyProfile(ctx context.Context) (*domain.UserProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetMyProfile: %w", err)
	}
	return profile, nil
}

// UpdateMyProfile applies a partial update to the authenticated user's
// profile, creating the row on the first update. Only fields present in
// the input are touched.
func (s *Service) UpdateMyProfile(ctx context.Context, input UpdateProfileInput) (*domain.UserProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user.UpdateMyProfile get: %w", err)
		}
		// First update creates the row.
		profile = &domain.UserProfile{
			ID:        uuid.New(),
			UserID:    userID,
			Skills:    []string{},
			Interests: []string{},
			CreatedAt: time.Now(),
		}
	}

	if input.Bio != nil {
		profile.Bio = emptyToNil(input.Bio)
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = emptyToNil(input.AvatarURL)
	}
	if input.Skills != nil {
		profile.Skills = *input.Skills
	}
	if input.Interests != nil {
		profile.Interests = *input.Interests
	}
	if input.AvailableTime != nil {
		profile.AvailableTime = input.AvailableTime
	}

	updated, err := s.users.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateMyProfile upsert: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}

// emptyToNil maps a pointer to an empty string to nil, clearing the column.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
