// Package http implements the REST API for Student Activity Hub: routing,
// session middleware, and graceful lifecycle for the underlying server.
package http

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/config"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
	"github.com/activity-hub/student-activity-hub/internal/interface/http/handlers"
)

// ══════════════════════════════════════════════════════════════════════════════
// DEPENDENCIES
// ══════════════════════════════════════════════════════════════════════════════

// Dependencies contains everything the HTTP server routes to.
type Dependencies struct {
	Auth          *handlers.AuthHandler
	Activities    *handlers.ActivityHandler
	Registrations *handlers.RegistrationHandler
	Complaints    *handlers.ComplaintHandler
	Notifications *handlers.NotificationHandler
	Points        *handlers.PointsHandler
	Health        *handlers.HealthHandler

	SessionAuth *handlers.SessionAuth
	Logger      *zap.Logger
}

// ══════════════════════════════════════════════════════════════════════════════
// SERVER
// ══════════════════════════════════════════════════════════════════════════════

// Server wraps the HTTP listener and its router.
type Server struct {
	config     config.HTTPConfig
	deps       Dependencies
	httpServer *http.Server
	logger     *zap.Logger

	mu      sync.Mutex
	running bool
}

// NewServer creates a new HTTP server with the given configuration and
// dependencies.
func NewServer(cfg config.HTTPConfig, deps Dependencies) *Server {
	s := &Server{
		config: cfg,
		deps:   deps,
		logger: deps.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Address(),
		Handler:      s.buildRouter(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// buildRouter wires all routes. Activity listing and detail are public;
// everything else under /api requires a session, with role checks matching
// the operation contracts.
func (s *Server) buildRouter() http.Handler {
	auth := s.deps.SessionAuth

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(handlers.RequestLogger(s.logger))

	r.Get("/health", s.deps.Health.Health)

	r.Route("/api", func(r chi.Router) {
		// Auth
		r.Post("/auth/register", s.deps.Auth.Register)
		r.Post("/auth/login", s.deps.Auth.Login)
		r.Post("/auth/logout", s.deps.Auth.Logout)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Get("/auth/user", s.deps.Auth.CurrentUser)
			r.Put("/user", s.deps.Auth.UpdateProfile)
			r.Put("/user/password", s.deps.Auth.ChangePassword)
		})

		// Activities
		r.Get("/activities", s.deps.Activities.List)
		r.Get("/activities/{id}", s.deps.Activities.Get)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Use(auth.RequireRole(user.RoleOrganization))
			r.Post("/activities", s.deps.Activities.Create)
			r.Put("/activities/{id}", s.deps.Activities.Update)
			r.Delete("/activities/{id}", s.deps.Activities.Delete)
		})

		// Registrations
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Get("/registrations", s.deps.Registrations.List)
			r.With(auth.RequireRole(user.RoleStudent)).
				Post("/registrations", s.deps.Registrations.Create)
			r.With(auth.RequireRole(user.RoleOrganization)).
				Put("/registrations/{id}", s.deps.Registrations.Review)
		})

		// Complaints
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Get("/complaints", s.deps.Complaints.List)
			r.With(auth.RequireRole(user.RoleStudent)).
				Post("/complaints", s.deps.Complaints.Create)
			r.With(auth.RequireRole(user.RoleOrganization)).
				Put("/complaints/{id}", s.deps.Complaints.Respond)
		})

		// Notifications
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Get("/notifications", s.deps.Notifications.List)
			r.Put("/notifications/{id}/read", s.deps.Notifications.MarkRead)
		})

		// Points
		r.With(auth.RequireAuth, auth.RequireRole(user.RoleStudent)).
			Get("/points/summary", s.deps.Points.Summary)
	})

	return r
}

// Start begins listening. It blocks until the server stops.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("http: server already running")
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info("http server listening", zap.String("addr", s.config.Address()))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false

	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}
