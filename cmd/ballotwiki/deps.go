package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	userrepo "github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/user"
	"github.com/heartmarshall/ballotwiki-backend/internal/trust"
)

const maintenanceTimeout = 2 * time.Minute

// resolveDSN returns the --dsn flag, falling back to DATABASE_DSN.
func resolveDSN() (string, error) {
	if dsn != "" {
		return dsn, nil
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		return v, nil
	}
	return "", errors.New("database DSN is required (use --dsn or DATABASE_DSN)")
}

// withPool opens a short-lived pool for maintenance commands and closes it
// when fn returns.
func withPool(ctx context.Context, fn func(ctx context.Context, pool *pgxpool.Pool) error) error {
	d, err := resolveDSN()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, d)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return fn(ctx, pool)
}

// withUserService builds the account service over a maintenance pool.
func withUserService(ctx context.Context, fn func(ctx context.Context, svc *user.Service) error) error {
	return withPool(ctx, func(ctx context.Context, pool *pgxpool.Pool) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		svc := user.NewService(logger, userrepo.New(pool), trust.NewClassifier(trust.DefaultThresholds()))
		return fn(ctx, svc)
	})
}
