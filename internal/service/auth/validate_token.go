package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

// ValidateToken validates an access token and confirms that the user
// behind it still exists and is active. Used by the auth middleware.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return uuid.Nil, domain.ErrUnauthorized
	}

	return user.ID, nil
}
