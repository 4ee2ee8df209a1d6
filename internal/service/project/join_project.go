package project

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

// JoinProject files a membership request for the authenticated user.
// The membership starts pending and grants no points; an owner has to
// activate it out of band. Any existing membership row, whatever its
// status, makes a second request a conflict.
func (s *Service) JoinProject(ctx context.Context, projectID uuid.UUID) (*domain.ProjectMember, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	existing, err := s.projects.GetMember(ctx, projectID, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("project.JoinProject: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("already a member of project %s: %w", projectID, domain.ErrConflict)
	}

	now := time.Now()
	member, err := s.projects.CreateMember(ctx, &domain.ProjectMember{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      domain.MemberRoleMember,
		Status:    domain.MemberStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("project.JoinProject: %w", err)
	}

	s.log.InfoContext(ctx, "project join requested",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
	)

	return member, nil
}
