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

// CreateProject creates a project, auto-enrolls the owner as an active
// member and grants the category-dependent creation reward. All three
// writes share one transaction.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	skills := input.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	status := domain.ProjectStatusActive
	if input.IsRecruiting {
		status = domain.ProjectStatusRecruiting
	}

	now := time.Now()
	p := &domain.Project{
		ID:             uuid.New(),
		OwnerID:        userID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Category:       input.Category,
		Status:         status,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Frequency:      input.Frequency,
		LocationType:   input.LocationType,
		LocationDetail: input.LocationDetail,
		IsRecruiting:   input.IsRecruiting,
		MaxMembers:     input.MaxMembers,
		RequiredSkills: skills,
		Tags:           tags,
		Visibility:     input.Visibility,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	reward := domain.ProjectCreateReward(input.Category)

	var created *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.projects.Create(txCtx, p)
		if createErr != nil {
			return fmt.Errorf("create project: %w", createErr)
		}

		if _, memberErr := s.projects.CreateMember(txCtx, &domain.ProjectMember{
			ID:        uuid.New(),
			ProjectID: created.ID,
			UserID:    userID,
			Role:      domain.MemberRoleOwner,
			Status:    domain.MemberStatusActive,
			JoinedAt:  &now,
			CreatedAt: now,
			UpdatedAt: now,
		}); memberErr != nil {
			return fmt.Errorf("enroll owner: %w", memberErr)
		}

		ref := created.ID.String()
		desc := fmt.Sprintf("Created project: %s", created.Title)
		if _, pointErr := s.points.Create(txCtx, &domain.Point{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      reward,
			ActionType:  domain.ActionProjectCreate,
			ReferenceID: &ref,
			Description: &desc,
			CreatedAt:   now,
		}); pointErr != nil {
			return fmt.Errorf("grant points: %w", pointErr)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("project.CreateProject: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", created.ID.String()),
		slog.String("category", created.Category.String()),
		slog.Int("points", reward),
	)

	return created, nil
}
