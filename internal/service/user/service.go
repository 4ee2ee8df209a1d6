// Package user implements profile operations.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

// userRepo defines the repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)
}

// Service provides profile operations.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new user service.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   logger.With("service", "user"),
	}
}
