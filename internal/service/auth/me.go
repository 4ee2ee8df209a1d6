package auth

import (
	"context"
	"fmt"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// Me returns the currently authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
