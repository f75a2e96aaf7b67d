// Package user administers contributor accounts: creation, role changes,
// public profiles and counter reconciliation. Identity itself is issued
// elsewhere; these operations back the CLI and the public profile view.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

type userRepo interface {
	GetByPublicID(ctx context.Context, publicID string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, publicID string, role domain.UserRole) (*domain.User, error)
	ReconcileCounters(ctx context.Context) (int64, error)
}

type summarizer interface {
	Summarize(u domain.User) domain.UserSummary
}

// Service implements account administration.
type Service struct {
	log   *slog.Logger
	users userRepo
	trust summarizer
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, trust summarizer) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		trust: trust,
	}
}
