package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// CreateTask creates a task within a project. Only active members may
// manage tasks.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.ProjectTask, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	if err := s.requireActiveMember(ctx, input.ProjectID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	t, err := s.projects.CreateTask(ctx, &domain.ProjectTask{
		ID:          uuid.New(),
		ProjectID:   input.ProjectID,
		AssigneeID:  input.AssigneeID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      domain.TaskStatusTodo,
		Order:       input.Order,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("project.CreateTask: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("task_id", t.ID.String()),
	)

	return t, nil
}

// ListTasks returns a project's tasks. Only active members may see them.
func (s *Service) ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectTask, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	if err := s.requireActiveMember(ctx, projectID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.projects.ListTasks(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.ListTasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update to a task. Only active members
// may manage tasks; setting status to done stamps completed_at once.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.ProjectTask, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	if err := s.requireActiveMember(ctx, input.ProjectID, userID); err != nil {
		return nil, err
	}

	t, err := s.getProjectTask(ctx, input.ProjectID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = input.Description
	}
	if input.AssigneeID != nil {
		t.AssigneeID = input.AssigneeID
	}
	if input.Status != nil {
		t.Status = *input.Status
		if t.Status == domain.TaskStatusDone && t.CompletedAt == nil {
			now := time.Now()
			t.CompletedAt = &now
		}
	}
	if input.Order != nil {
		t.Order = input.Order
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}

	updated, err := s.projects.UpdateTask(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("project.UpdateTask: %w", err)
	}
	return updated, nil
}

// DeleteTask removes a task. Only active members may manage tasks.
func (s *Service) DeleteTask(ctx context.Context, projectID, taskID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	if err := s.requireActiveMember(ctx, projectID, userID); err != nil {
		return err
	}
	if _, err := s.getProjectTask(ctx, projectID, taskID); err != nil {
		return err
	}

	if err := s.projects.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("project.DeleteTask: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
		slog.String("task_id", taskID.String()),
	)

	return nil
}
