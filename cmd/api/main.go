// Copyright (c) 2026 ERP Cell. All rights reserved.

// Command api is the entry point for the ERP Cell HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Resolve seeded placeholder passwords (before serving any traffic).
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erpcell/erpcell/internal/api"
	"github.com/erpcell/erpcell/internal/platform/config"
	"github.com/erpcell/erpcell/internal/platform/constants"
	"github.com/erpcell/erpcell/internal/platform/migration"
	pgstore "github.com/erpcell/erpcell/internal/platform/postgres"
	redisstore "github.com/erpcell/erpcell/internal/platform/redis"
	"github.com/erpcell/erpcell/internal/platform/sec"
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

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth Core ──────────────────────────────────────────────────────
	credentialRepository := auth.NewCredentialRepository(pool)
	sessionRepository := auth.NewSessionRepository(rdb)
	authService := auth.NewService(credentialRepository, sessionRepository, cfg.SessionTTL)

	defaultPasswords := map[sec.Role]string{
		sec.RoleStudent: cfg.DefaultStudentPassword,
		sec.RoleFaculty: cfg.DefaultFacultyPassword,
	}

	// Seeded accounts carry sentinel hashes until this runs. It must finish
	// before the server listens, or those accounts cannot log in.
	_, err = authService.ResolvePlaceholders(startupCtx, defaultPasswords)
	must(log, err, "resolve placeholder passwords")

	provisioner := auth.NewProvisioner(credentialRepository, defaultPasswords)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckSessions: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authHandler := auth.NewHandler(authService, cfg.IsProduction())

	departmentService := department.NewService(department.NewPostgresRepository(pool), log)
	studentService := student.NewService(student.NewPostgresRepository(pool), provisioner, log)
	facultyService := faculty.NewService(faculty.NewPostgresRepository(pool), provisioner, log)
	subjectService := subject.NewService(subject.NewPostgresRepository(pool), log)
	attendanceService := attendance.NewService(attendance.NewPostgresRepository(pool), log)
	feeService := fee.NewService(fee.NewPostgresRepository(pool), log)
	resultService := result.NewService(result.NewPostgresRepository(pool), log)
	libraryService := library.NewService(library.NewPostgresRepository(pool), log)
	timetableService := timetable.NewService(timetable.NewPostgresRepository(pool), log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Department: department.NewHandler(departmentService),
		Student:    student.NewHandler(studentService),
		Faculty:    faculty.NewHandler(facultyService),
		Subject:    subject.NewHandler(subjectService),
		Attendance: attendance.NewHandler(attendanceService),
		Fee:        fee.NewHandler(feeService),
		Result:     result.NewHandler(resultService),
		Library:    library.NewHandler(libraryService),
		Timetable:  timetable.NewHandler(timetableService),
	}

	server := api.NewServer(startupCtx, cfg, log, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
