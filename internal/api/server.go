// Copyright (c) 2026 ERP Cell. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/erpcell/erpcell/internal/platform/config"
	"github.com/erpcell/erpcell/internal/platform/constants"
	"github.com/erpcell/erpcell/internal/platform/middleware"
	"github.com/erpcell/erpcell/internal/records/attendance"
	"github.com/erpcell/erpcell/internal/records/department"
	"github.com/erpcell/erpcell/internal/records/faculty"
	"github.com/erpcell/erpcell/internal/records/fee"
	"github.com/erpcell/erpcell/internal/records/library"
	"github.com/erpcell/erpcell/internal/records/result"
	"github.com/erpcell/erpcell/internal/records/student"
	"github.com/erpcell/erpcell/internal/records/subject"
	"github.com/erpcell/erpcell/internal/records/timetable"
	"github.com/erpcell/erpcell/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles session lifecycle routes (login, logout, password change).
	Auth *auth.Handler

	// Record modules.
	Department *department.Handler
	Student    *student.Handler
	Faculty    *faculty.Handler
	Subject    *subject.Handler
	Attendance *attendance.Handler
	Fee        *fee.Handler
	Result     *result.Handler
	Library    *library.Handler
	Timetable  *timetable.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, resolver middleware.IdentityResolver, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(resolver))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix. Everything
	// except /auth/login requires an authenticated session.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth)

			protected.Route("/departments", h.Department.RegisterRoutes)
			protected.Route("/students", h.Student.RegisterRoutes)
			protected.Route("/faculty", h.Faculty.RegisterRoutes)
			protected.Route("/subjects", h.Subject.RegisterRoutes)
			protected.Route("/attendance", h.Attendance.RegisterRoutes)
			protected.Route("/fees", h.Fee.RegisterRoutes)
			protected.Route("/results", h.Result.RegisterRoutes)
			protected.Route("/library", h.Library.RegisterRoutes)
			protected.Route("/timetable", h.Timetable.RegisterRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
