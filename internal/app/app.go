package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres"
	editrepo "github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres/edit"
	"github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres/entity"
	userrepo "github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/ballotwiki-backend/internal/adapter/ratelimit"
	"github.com/heartmarshall/ballotwiki-backend/internal/auth"
	"github.com/heartmarshall/ballotwiki-backend/internal/config"
	"github.com/heartmarshall/ballotwiki-backend/internal/fieldstore"
	"github.com/heartmarshall/ballotwiki-backend/internal/metrics"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/edit"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/history"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/moderation"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/user"
	"github.com/heartmarshall/ballotwiki-backend/internal/transport/middleware"
	"github.com/heartmarshall/ballotwiki-backend/internal/transport/rest"
	"github.com/heartmarshall/ballotwiki-backend/internal/trust"
)

const limiterCleanupInterval = 5 * time.Minute

type submissionLimiter interface {
	Allow(ctx context.Context, userID uuid.UUID) (bool, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the long-lived resources the HTTP handler is built on.
type Deps struct {
	Pool *pgxpool.Pool
	// Limiter throttles edit submissions per user.
	Limiter submissionLimiter
	// Cache is pinged by the health check when the limiter is remote. May be nil.
	Cache pinger
	// IPLimiter throttles all requests per client IP.
	IPLimiter *ratelimit.MemoryLimiter
	// Metrics may be nil when exposition is disabled.
	Metrics *metrics.Metrics
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// the server down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	deps := Deps{Pool: pool}

	if cfg.RateLimit.RedisURL != "" {
		rl, err := ratelimit.NewRedisLimiter(ctx, cfg.RateLimit.RedisURL, cfg.RateLimit.SubmissionsPerMinute)
		if err != nil {
			return err
		}
		defer rl.Close()
		deps.Limiter, deps.Cache = rl, rl
		logger.Info("submission limiter: redis")
	} else {
		ml := ratelimit.NewMemoryLimiter(cfg.RateLimit.SubmissionsPerMinute, limiterCleanupInterval)
		defer ml.Stop()
		deps.Limiter = ml
		logger.Info("submission limiter: in-memory")
	}

	deps.IPLimiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.RequestsPerMinute, limiterCleanupInterval)
	defer deps.IPLimiter.Stop()

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
	}

	handler, err := NewHandler(cfg, logger, deps)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
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
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// NewHandler wires repositories, services and transport into the root
// http.Handler.
func NewHandler(cfg *config.Config, logger *slog.Logger, deps Deps) (http.Handler, error) {
	tokens := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTLeeway)
	csrf, err := auth.NewCSRFVerifier(cfg.Auth.CSRFSecret)
	if err != nil {
		return nil, fmt.Errorf("csrf verifier: %w", err)
	}

	registry := fieldstore.NewRegistry()
	entity.Register(registry, deps.Pool)

	tx := postgres.NewTxManager(deps.Pool)
	edits := editrepo.New(deps.Pool)
	users := userrepo.New(deps.Pool)
	classifier := trust.NewClassifier(cfg.Trust.Thresholds())

	editService := edit.NewService(logger, edits, users, registry, tx, deps.Limiter, deps.Metrics, cfg.Moderation)
	moderationService := moderation.NewService(logger, edits, users, registry, tx, deps.Metrics, cfg.Moderation)
	historyService := history.NewService(logger, edits, users, registry, classifier)
	userService := user.NewService(logger, users, classifier)

	checks := []rest.HealthCheck{{Name: "database", Pinger: deps.Pool, Critical: true}}
	if deps.Cache != nil {
		checks = append(checks, rest.HealthCheck{Name: "rate_limiter", Pinger: deps.Cache})
	}

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), checks...),
		Edits:      rest.NewEditHandler(editService, historyService, registry, logger),
		Moderation: rest.NewModerationHandler(moderationService, historyService, logger),
		Users:      rest.NewUserHandler(userService, logger),
	}
	if deps.Metrics != nil {
		handlers.Metrics = deps.Metrics.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}

	mux := rest.NewRouter(handlers)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(cfg.CORS),
	}
	if deps.IPLimiter != nil {
		mws = append(mws, middleware.RateLimit(deps.IPLimiter))
	}
	mws = append(mws,
		middleware.Auth(tokens),
		middleware.CSRF(csrf),
	)

	return middleware.Chain(mws...)(mux), nil
}
