package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// ListProjects returns all projects newest-first. Every authenticated
// user sees the full catalogue.
func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("project.ListProjects: %w", err)
	}
	return projects, nil
}

// GetProject returns a single project. Projects are visible to every
// authenticated user regardless of ownership.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.projects.GetByID(ctx, projectID)
}

// UpdateProject applies a partial update to one of the authenticated
// user's projects. Foreign projects are reported as not found.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.getOwnedProject(ctx, userID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		p.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.StartDate != nil {
		p.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		p.EndDate = input.EndDate
	}
	if input.Frequency != nil {
		p.Frequency = input.Frequency
	}
	if input.LocationType != nil {
		p.LocationType = *input.LocationType
	}
	if input.LocationDetail != nil {
		p.LocationDetail = input.LocationDetail
	}
	if input.IsRecruiting != nil {
		p.IsRecruiting = *input.IsRecruiting
	}
	if input.MaxMembers != nil {
		p.MaxMembers = input.MaxMembers
	}
	if input.RequiredSkills != nil {
		p.RequiredSkills = *input.RequiredSkills
	}
	if input.Tags != nil {
		p.Tags = *input.Tags
	}
	if input.Visibility != nil {
		p.Visibility = *input.Visibility
	}

	updated, err := s.projects.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("project.UpdateProject: %w", err)
	}
	return updated, nil
}

// DeleteProject removes one of the authenticated user's projects.
// Members and tasks cascade at the storage layer; earned ledger rows
// are kept.
func (s *Service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.getOwnedProject(ctx, userID, projectID); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("project.DeleteProject: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
	)

	return nil
}

// ListMembers returns a project's members, every status included.
func (s *Service) ListMembers(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMember, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	members, err := s.projects.ListMembers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.ListMembers: %w", err)
	}
	return members, nil
}
