// Package main is the entrypoint for the adboard API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/adboard/adboard/internal/config"
	"github.com/adboard/adboard/internal/handler"
	"github.com/adboard/adboard/internal/middleware"
	"github.com/adboard/adboard/internal/repository"
	"github.com/adboard/adboard/internal/server"
	"github.com/adboard/adboard/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Create tables on first start
	if err := repo.InitSchema(ctx); err != nil {
		logger.Error("failed to initialize schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("schema ready")

	// Initialize services
	adService := service.NewAdService(repo)
	authService := service.NewAuthService(repo)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo)
	adHandler := handler.NewAdHandler(adService, logger)
	loginHandler := handler.NewLoginHandler(authService, logger)

	// Setup router
	r := setupRouter(h, healthHandler, adHandler, loginHandler, repo, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	srv.OnShutdown("database pool", func(ctx context.Context) error {
		repo.Close()
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"token_ttl", cfg.TokenTTL().String(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	adHandler *handler.AdHandler,
	loginHandler *handler.LoginHandler,
	repo *repository.Repository,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      cfg.IsDevelopment(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}))

	// Health endpoints (no storage scope required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Every remaining route runs inside a request-scoped transaction
	r.Group(func(r chi.Router) {
		r.Use(middleware.TxScope(middleware.TxScopeConfig{
			Logger: logger,
			DB:     repo,
		}))

		// Public routes
		r.Post("/login", loginHandler.Login)

		publicAds := func(r chi.Router) {
			r.Post("/", adHandler.Create)
			r.Get("/{ads_id:[0-9]+}", adHandler.Get)
		}
		r.Route("/ads", publicAds)
		r.Route("/advertisements", publicAds)

		// Owner-scoped mutations (require a valid token and ownership)
		authCfg := middleware.AuthConfig{
			Logger: logger,
			Tokens: repo,
			TTL:    cfg.TokenTTL(),
		}

		r.Route("/users/{user_id:[0-9]+}/ads", func(r chi.Router) {
			r.Use(middleware.Auth(authCfg))
			r.Use(middleware.RequireOwner())
			r.Patch("/{ads_id:[0-9]+}", adHandler.Update)
			r.Delete("/{ads_id:[0-9]+}", adHandler.Delete)
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
