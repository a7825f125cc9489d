// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/antechsolutions/website/internal/config"
	"github.com/antechsolutions/website/internal/handler"
	"github.com/antechsolutions/website/internal/logging"
	"github.com/antechsolutions/website/internal/middleware"
	"github.com/antechsolutions/website/internal/model"
	"github.com/antechsolutions/website/internal/render"
	"github.com/antechsolutions/website/internal/service"
	"github.com/antechsolutions/website/internal/session"
	"github.com/antechsolutions/website/internal/store"
	"github.com/antechsolutions/website/internal/version"
	"github.com/antechsolutions/website/web"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "AN Tech Solutions company website\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ANTECH_SESSION_SECRET  Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ANTECH_DB_PATH         SQLite database path (default: ./data/website.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ANTECH_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ANTECH_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ANTECH_LOG_LEVEL       Log level: debug|info|warn|error (default: info)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("website %s\n", version.Get())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present (development).
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists.
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// Upgrade logger to also mirror WARN and ERROR records into the events
	// table.
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	queries := store.New(db)

	if err := queries.SeedProjects(context.Background()); err != nil {
		return fmt.Errorf("seeding projects: %w", err)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("locating templates: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		CompanyName:    cfg.CompanyName,
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	identity := service.NewIdentity(queries, sessionManager, logger)
	directory := service.NewDirectory(queries, logger)

	frontend := handler.NewFrontend(queries, renderer, logger)
	userAuth := handler.NewUserAuth(identity, renderer, logger)
	adminAuth := handler.NewAdminAuth(identity, renderer, logger)
	dashboard := handler.NewDashboard(queries, renderer, logger)
	customers := handler.NewCustomers(directory, renderer, logger)
	inquiries := handler.NewInquiries(queries, renderer, logger)
	events := handler.NewEvents(queries, renderer, logger)
	health := handler.NewHealth(db)

	loginLimiter := middleware.NewLoginRateLimiter(1, 5)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())))

	r.Get("/", frontend.Home)
	r.Get("/about", frontend.About)
	r.Get("/services", frontend.Services)
	r.Get("/contact", frontend.ContactForm)
	r.Post("/contact", frontend.ContactSubmit)
	r.Get("/health", health.Check)

	r.Get("/register", userAuth.RegisterForm)
	r.With(loginLimiter.Middleware()).Post("/register", userAuth.Register)
	r.Get("/login", userAuth.LoginForm)
	r.With(loginLimiter.Middleware()).Post("/login", userAuth.Login)
	r.Get("/logout", userAuth.Logout)
	r.Post("/logout", userAuth.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAccount(sessionManager, model.KindUser))
		r.Use(middleware.LoadAccount(sessionManager, db, model.KindUser))
		r.Get("/dashboard", dashboard.Show)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", dashboard.AdminLanding)
		r.Get("/register", adminAuth.RegisterForm)
		r.With(loginLimiter.Middleware()).Post("/register", adminAuth.Register)
		r.Get("/login", adminAuth.LoginForm)
		r.With(loginLimiter.Middleware()).Post("/login", adminAuth.Login)
		r.Get("/logout", adminAuth.Logout)
		r.Post("/logout", adminAuth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAccount(sessionManager, model.KindAdmin))
			r.Use(middleware.LoadAccount(sessionManager, db, model.KindAdmin))
			r.Get("/dashboard", customers.List)
			r.Get("/customers/new", customers.NewForm)
			r.Post("/customers", customers.Create)
			r.Get("/customers/{id}", customers.EditForm)
			r.Put("/customers/{id}", customers.Update)
			r.Post("/customers/{id}", customers.Update) // HTML forms can't send PUT
			r.Post("/customers/{id}/delete", customers.Delete)
			r.Delete("/customers/{id}", customers.Delete)
			r.Get("/inquiries", inquiries.List)
			r.Get("/events", events.List)
		})
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
