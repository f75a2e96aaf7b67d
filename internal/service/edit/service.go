// Package edit accepts proposed changes to tracked entity fields and puts
// them in the moderation queue.
package edit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/config"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/fieldstore"
)

type editRepo interface {
	LockTuple(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, field string) error
	FindPending(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, field string) (*domain.Edit, error)
	Supersede(ctx context.Context, id uuid.UUID) (*domain.Edit, error)
	Create(ctx context.Context, e *domain.Edit) (*domain.Edit, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AdjustCounters(ctx context.Context, id uuid.UUID, delta domain.CounterDelta) error
}

type fieldRegistry interface {
	Lookup(entityType domain.EntityType, name string) (fieldstore.Field, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type submissionLimiter interface {
	Allow(ctx context.Context, userID uuid.UUID) (bool, error)
}

type metricsRecorder interface {
	EditSubmitted(entityType domain.EntityType)
	EditSuperseded()
	SubmissionRateLimited()
}

// Service handles edit submission.
type Service struct {
	edits   editRepo
	users   userRepo
	fields  fieldRegistry
	tx      txManager
	limiter submissionLimiter
	metrics metricsRecorder
	cfg     config.ModerationConfig
	log     *slog.Logger
}

// NewService creates a new edit Service. limiter may be nil to disable
// per-user rate limiting.
func NewService(
	log *slog.Logger,
	edits editRepo,
	users userRepo,
	fields fieldRegistry,
	tx txManager,
	limiter submissionLimiter,
	metrics metricsRecorder,
	cfg config.ModerationConfig,
) *Service {
	return &Service{
		edits:   edits,
		users:   users,
		fields:  fields,
		tx:      tx,
		limiter: limiter,
		metrics: metrics,
		cfg:     cfg,
		log:     log.With("service", "edit"),
	}
}
