// Package project implements collaborative-project management, including
// membership and tasks.
package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

// projectRepo defines the project repository interface needed by the
// project service.
type projectRepo interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateMember(ctx context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error)
	GetMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMember, error)
	CreateTask(ctx context.Context, t *domain.ProjectTask) (*domain.ProjectTask, error)
	GetTask(ctx context.Context, id uuid.UUID) (*domain.ProjectTask, error)
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectTask, error)
	UpdateTask(ctx context.Context, t *domain.ProjectTask) (*domain.ProjectTask, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// pointRepo defines the ledger append interface needed by the project service.
type pointRepo interface {
	Create(ctx context.Context, point *domain.Point) (*domain.Point, error)
}

// txManager defines the transaction manager interface needed by the project service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides collaborative-project operations.
type Service struct {
	projects projectRepo
	points   pointRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new project service.
func NewService(logger *slog.Logger, projects projectRepo, points pointRepo, tx txManager) *Service {
	return &Service{
		projects: projects,
		points:   points,
		tx:       tx,
		log:      logger.With("service", "project"),
	}
}

// getOwnedProject loads a project and verifies ownership. A project
// owned by another user is reported as not found.
func (s *Service) getOwnedProject(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != userID {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return p, nil
}

// requireActiveMember verifies that the user is an active member of the
// project. Pending and left members are rejected.
func (s *Service) requireActiveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	m, err := s.projects.GetMember(ctx, projectID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("not an active member of project %s: %w", projectID, domain.ErrForbidden)
	}
	if err != nil {
		return err
	}
	if m.Status != domain.MemberStatusActive {
		return fmt.Errorf("not an active member of project %s: %w", projectID, domain.ErrForbidden)
	}
	return nil
}

// getProjectTask loads a task and verifies it belongs to the project.
// A task from a different project is reported as not found.
func (s *Service) getProjectTask(ctx context.Context, projectID, taskID uuid.UUID) (*domain.ProjectTask, error) {
	t, err := s.projects.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.ProjectID != projectID {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return t, nil
}
