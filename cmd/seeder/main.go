// Command seeder populates a development database with demo accounts,
// goals, logs, events, and projects. It is intended for local
// environments, not production.
//
// Flags:
//
//	--password  plaintext password assigned to every demo account
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/asotobase/backend/internal/adapter/postgres"
	eventrepo "github.com/asotobase/backend/internal/adapter/postgres/event"
	goalrepo "github.com/asotobase/backend/internal/adapter/postgres/goal"
	logrepo "github.com/asotobase/backend/internal/adapter/postgres/log"
	pointrepo "github.com/asotobase/backend/internal/adapter/postgres/point"
	projectrepo "github.com/asotobase/backend/internal/adapter/postgres/project"
	steprepo "github.com/asotobase/backend/internal/adapter/postgres/step"
	userrepo "github.com/asotobase/backend/internal/adapter/postgres/user"
	"github.com/asotobase/backend/internal/app"
	"github.com/asotobase/backend/internal/config"
	"github.com/asotobase/backend/internal/domain"
)

func main() {
	passwordFlag := flag.String("password", "password123", "plaintext password for demo accounts")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder{
		users:    userrepo.New(pool),
		goals:    goalrepo.New(pool),
		steps:    steprepo.New(pool),
		logs:     logrepo.New(pool),
		events:   eventrepo.New(pool),
		projects: projectrepo.New(pool),
		points:   pointrepo.New(pool),
		log:      logger,
	}

	if err := s.run(ctx, *passwordFlag, cfg.Auth.PasswordHashCost); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed")
}

type seeder struct {
	users    *userrepo.Repo
	goals    *goalrepo.Repo
	steps    *steprepo.Repo
	logs     *logrepo.Repo
	events   *eventrepo.Repo
	projects *projectrepo.Repo
	points   *pointrepo.Repo
	log      *slog.Logger
}

func (s *seeder) run(ctx context.Context, password string, hashCost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return err
	}

	alice, err := s.createUser(ctx, "alice@example.com", "Alice Tanaka", string(hash))
	if err != nil {
		return err
	}
	bob, err := s.createUser(ctx, "bob@example.com", "Bob Suzuki", string(hash))
	if err != nil {
		return err
	}

	goal, err := s.goals.Create(ctx, &domain.Goal{
		UserID:      alice.ID,
		Title:       "Host a neighborhood game night",
		Description: strPtr("Bring the block together over board games once a month."),
		Category:    domain.GoalCategoryActivity,
		Status:      domain.GoalStatusActive,
	})
	if err != nil {
		return err
	}
	s.log.Info("seeded goal", slog.String("id", goal.ID.String()))

	stepTitles := []string{"Pick a venue", "Make an invite list", "Buy snacks"}
	for i, title := range stepTitles {
		if _, err := s.steps.Create(ctx, &domain.Step{
			GoalID: goal.ID,
			Order:  i + 1,
			Title:  title,
			Status: domain.StepStatusPending,
		}); err != nil {
			return err
		}
	}

	entry, err := s.logs.Create(ctx, &domain.Log{
		UserID:        alice.ID,
		Title:         "First planning session",
		Content:       "Sketched out the game night format. Leaning toward cooperative games.",
		Tags:          []string{"planning", "games"},
		Visibility:    domain.LogVisibilityPublic,
		RelatedGoalID: &goal.ID,
	})
	if err != nil {
		return err
	}
	if err := s.grant(ctx, alice.ID, domain.RewardLogCreate, domain.ActionLogCreate, entry.ID); err != nil {
		return err
	}

	event, err := s.events.Create(ctx, &domain.Event{
		OwnerID:      bob.ID,
		Title:        "Weekend park cleanup",
		Description:  strPtr("Gloves and bags provided. Meet at the east gate."),
		StartDate:    time.Now().AddDate(0, 0, 7),
		LocationType: domain.LocationTypeOffline,
		MaxAttendees: intPtr(30),
		Tags:         []string{"outdoors", "volunteering"},
		Status:       domain.EventStatusUpcoming,
	})
	if err != nil {
		return err
	}
	if err := s.grant(ctx, bob.ID, domain.RewardEventCreate, domain.ActionEventCreate, event.ID); err != nil {
		return err
	}

	now := time.Now()
	if _, err := s.events.CreateParticipant(ctx, &domain.EventParticipant{
		EventID:  event.ID,
		UserID:   alice.ID,
		Status:   domain.ParticipantStatusJoined,
		JoinedAt: now,
	}); err != nil {
		return err
	}
	if err := s.grant(ctx, alice.ID, domain.RewardEventJoin, domain.ActionEventJoin, event.ID); err != nil {
		return err
	}

	project, err := s.projects.Create(ctx, &domain.Project{
		OwnerID:      bob.ID,
		Title:        "Community tool library",
		Description:  strPtr("A shared shelf of tools anyone in the neighborhood can borrow."),
		Category:     domain.ProjectCategoryAsoto,
		Status:       domain.ProjectStatusRecruiting,
		StartDate:    now,
		LocationType: domain.LocationTypeHybrid,
		IsRecruiting: true,
		MaxMembers:   intPtr(10),
		Tags:         []string{"sharing", "diy"},
		Visibility:   domain.ProjectVisibilityPublic,
	})
	if err != nil {
		return err
	}
	if _, err := s.projects.CreateMember(ctx, &domain.ProjectMember{
		ProjectID: project.ID,
		UserID:    bob.ID,
		Role:      domain.MemberRoleOwner,
		Status:    domain.MemberStatusActive,
		JoinedAt:  &now,
	}); err != nil {
		return err
	}
	if err := s.grant(ctx, bob.ID, domain.ProjectCreateReward(project.Category), domain.ActionProjectCreate, project.ID); err != nil {
		return err
	}

	if _, err := s.projects.CreateTask(ctx, &domain.ProjectTask{
		ProjectID: project.ID,
		Title:     "Inventory donated tools",
		Status:    domain.TaskStatusTodo,
		Order:     intPtr(1),
	}); err != nil {
		return err
	}

	return nil
}

func (s *seeder) createUser(ctx context.Context, email, name, hash string) (*domain.User, error) {
	u, err := s.users.Create(ctx, &domain.User{
		Email:          email,
		HashedPassword: hash,
		FullName:       &name,
		IsActive:       true,
		Role:           domain.UserRoleUser,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("seeded user", slog.String("email", email), slog.String("id", u.ID.String()))
	return u, nil
}

func (s *seeder) grant(ctx context.Context, userID uuid.UUID, amount int, action string, ref uuid.UUID) error {
	refStr := ref.String()
	_, err := s.points.Create(ctx, &domain.Point{
		UserID:      userID,
		Amount:      amount,
		ActionType:  action,
		ReferenceID: &refStr,
	})
	return err
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
