// Package app wires configuration, storage, services, and transport
// together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/asotobase/backend/internal/adapter/postgres"
	eventrepo "github.com/asotobase/backend/internal/adapter/postgres/event"
	goalrepo "github.com/asotobase/backend/internal/adapter/postgres/goal"
	logrepo "github.com/asotobase/backend/internal/adapter/postgres/log"
	pointrepo "github.com/asotobase/backend/internal/adapter/postgres/point"
	projectrepo "github.com/asotobase/backend/internal/adapter/postgres/project"
	steprepo "github.com/asotobase/backend/internal/adapter/postgres/step"
	userrepo "github.com/asotobase/backend/internal/adapter/postgres/user"
	"github.com/asotobase/backend/internal/auth"
	"github.com/asotobase/backend/internal/config"
	authsvc "github.com/asotobase/backend/internal/service/auth"
	"github.com/asotobase/backend/internal/service/dashboard"
	"github.com/asotobase/backend/internal/service/event"
	"github.com/asotobase/backend/internal/service/goal"
	logsvc "github.com/asotobase/backend/internal/service/log"
	"github.com/asotobase/backend/internal/service/point"
	"github.com/asotobase/backend/internal/service/project"
	"github.com/asotobase/backend/internal/service/user"
	"github.com/asotobase/backend/internal/transport/middleware"
	"github.com/asotobase/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires services and handlers, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	goals := goalrepo.New(pool)
	steps := steprepo.New(pool)
	logs := logrepo.New(pool)
	events := eventrepo.New(pool)
	projects := projectrepo.New(pool)
	points := pointrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := user.NewService(logger, users)
	goalService := goal.NewService(logger, goals, steps, points, txManager)
	logService := logsvc.NewService(logger, logs, points, txManager)
	eventService := event.NewService(logger, events, points, txManager)
	projectService := project.NewService(logger, projects, points, txManager)
	pointService := point.NewService(logger, points)
	dashboardService := dashboard.NewService(logger, goals, logs, events, points)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(authService, logger),
		User:      rest.NewUserHandler(userService, logger),
		Point:     rest.NewPointHandler(pointService, logger),
		Goal:      rest.NewGoalHandler(goalService, logger),
		Log:       rest.NewLogHandler(logService, logger),
		Event:     rest.NewEventHandler(eventService, logger),
		Project:   rest.NewProjectHandler(projectService, logger),
		Dashboard: rest.NewDashboardHandler(dashboardService, logger),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app.Run: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Run: shutdown: %w", err)
	}

	return nil
}
