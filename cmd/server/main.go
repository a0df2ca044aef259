// Package main is the entry point for the Student Activity Hub API server.
//
// The architecture follows Clean Architecture and DDD:
// - Domain: entities and invariants without external dependencies
// - Application: use case orchestration (Commands/Queries)
// - Infrastructure: PostgreSQL and Redis implementations
// - Interface: HTTP handlers and middleware
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/config"
	"github.com/activity-hub/student-activity-hub/internal/application/command"
	"github.com/activity-hub/student-activity-hub/internal/application/query"
	"github.com/activity-hub/student-activity-hub/internal/infrastructure/persistence/memory"
	"github.com/activity-hub/student-activity-hub/internal/infrastructure/persistence/postgres"
	redisstore "github.com/activity-hub/student-activity-hub/internal/infrastructure/persistence/redis"
	httpserver "github.com/activity-hub/student-activity-hub/internal/interface/http"
	"github.com/activity-hub/student-activity-hub/internal/interface/http/handlers"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. Configuration
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. Logging
	// ─────────────────────────────────────────────────────────────────────────
	logger, err := setupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting student activity hub",
		zap.String("env", string(cfg.App.Environment)),
		zap.Bool("debug", cfg.App.Debug),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. PostgreSQL
	// ─────────────────────────────────────────────────────────────────────────
	logger.Info("connecting to database")
	dbConn, err := postgres.NewConnectionFromURL(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		logger.Info("closing database connection")
		dbConn.Close()
	}()

	if err := dbConn.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if cfg.Database.RunMigrations {
		logger.Info("running database migrations")
		if err := postgres.NewMigrator(dbConn).Up(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. Redis (optional): sessions and the points summary cache
	// ─────────────────────────────────────────────────────────────────────────
	var (
		sessionStore handlers.SessionStore
		summaryCache *redisstore.SummaryCache
	)
	if cfg.Redis.Enabled {
		logger.Info("connecting to redis")
		redisClient, err := redisstore.NewClient(ctx, redisstore.Config{URL: cfg.Redis.URL})
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		sessionStore = redisstore.NewSessionStore(redisClient, cfg.Session.TTL)
		summaryCache = redisstore.NewSummaryCache(redisClient, cfg.Redis.SummaryTTL)
	} else {
		logger.Info("redis disabled, using in-memory sessions")
		sessionStore = memory.NewSessionStore(cfg.Session.TTL)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. Repositories
	// ─────────────────────────────────────────────────────────────────────────
	userRepo := postgres.NewUserRepository(dbConn)
	activityRepo := postgres.NewActivityRepository(dbConn)
	registrationRepo := postgres.NewRegistrationRepository(dbConn)
	complaintRepo := postgres.NewComplaintRepository(dbConn)
	notificationRepo := postgres.NewNotificationRepository(dbConn)

	// ─────────────────────────────────────────────────────────────────────────
	// 6. Application layer
	// The nil-able cache dependencies stay nil when Redis is disabled; the
	// handlers treat that as caching off.
	// ─────────────────────────────────────────────────────────────────────────
	var invalidator command.SummaryInvalidator
	var queryCache query.SummaryCache
	if summaryCache != nil {
		invalidator = summaryCache
		queryCache = summaryCache
	}

	createActivity := command.NewCreateActivityHandler(activityRepo)
	updateActivity := command.NewUpdateActivityHandler(activityRepo)
	deleteActivity := command.NewDeleteActivityHandler(activityRepo)
	createRegistration := command.NewCreateRegistrationHandler(activityRepo, registrationRepo, notificationRepo)
	reviewRegistration := command.NewReviewRegistrationHandler(activityRepo, registrationRepo, notificationRepo, invalidator)
	createComplaint := command.NewCreateComplaintHandler(activityRepo, complaintRepo, notificationRepo)
	respondComplaint := command.NewRespondComplaintHandler(activityRepo, complaintRepo, notificationRepo)
	registerAccount := command.NewRegisterAccountHandler(userRepo)
	authenticate := command.NewAuthenticateHandler(userRepo)
	updateProfile := command.NewUpdateProfileHandler(userRepo)
	changePassword := command.NewChangePasswordHandler(userRepo)
	markNotificationRead := command.NewMarkNotificationReadHandler(notificationRepo)

	listActivities := query.NewListActivitiesHandler(activityRepo)
	getActivity := query.NewGetActivityHandler(activityRepo)
	listRegistrations := query.NewListRegistrationsHandler(activityRepo, registrationRepo)
	listComplaints := query.NewListComplaintsHandler(activityRepo, complaintRepo)
	listNotifications := query.NewListNotificationsHandler(notificationRepo)
	getPointsSummary := query.NewGetPointsSummaryHandler(registrationRepo, queryCache)
	getUser := query.NewGetUserHandler(userRepo)

	// ─────────────────────────────────────────────────────────────────────────
	// 7. HTTP interface
	// ─────────────────────────────────────────────────────────────────────────
	sessionAuth := handlers.NewSessionAuth(sessionStore, cfg.Session.CookieName, cfg.Session.SecureCookies)

	healthHandler := handlers.NewHealthHandler()
	healthHandler.AddCheck("postgres", dbConn.Ping)

	server := httpserver.NewServer(cfg.HTTP, httpserver.Dependencies{
		Auth: handlers.NewAuthHandler(
			registerAccount, authenticate, updateProfile, changePassword, getUser,
			sessionAuth, cfg.Session.TTL, logger,
		),
		Activities: handlers.NewActivityHandler(
			createActivity, updateActivity, deleteActivity, listActivities, getActivity, logger,
		),
		Registrations: handlers.NewRegistrationHandler(
			createRegistration, reviewRegistration, listRegistrations, logger,
		),
		Complaints: handlers.NewComplaintHandler(
			createComplaint, respondComplaint, listComplaints, logger,
		),
		Notifications: handlers.NewNotificationHandler(markNotificationRead, listNotifications, logger),
		Points:        handlers.NewPointsHandler(getPointsSummary, logger),
		Health:        healthHandler,
		SessionAuth:   sessionAuth,
		Logger:        logger,
	})

	// ─────────────────────────────────────────────────────────────────────────
	// 8. Run until signalled, then drain
	// ─────────────────────────────────────────────────────────────────────────
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// setupLogger builds the process logger for the configured environment.
func setupLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.IsProduction() && !cfg.App.Debug {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
