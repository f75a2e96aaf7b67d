// Package moderation implements the review side of the edit lifecycle: the
// pending queue and moderator decisions.
package moderation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/config"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/fieldstore"
)

type editRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Edit, error)
	List(ctx context.Context, filter domain.EditFilter) ([]domain.Edit, error)
	Count(ctx context.Context, filter domain.EditFilter) (int, error)
	Resolve(ctx context.Context, id uuid.UUID, res domain.Resolution) (*domain.Edit, error)
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

type metricsRecorder interface {
	EditDecided(decision domain.Decision)
	EditConflict(reason string)
}

// Service implements the moderation queue.
type Service struct {
	edits   editRepo
	users   userRepo
	fields  fieldRegistry
	tx      txManager
	metrics metricsRecorder
	cfg     config.ModerationConfig
	log     *slog.Logger
}

// NewService creates a new moderation Service.
func NewService(
	log *slog.Logger,
	edits editRepo,
	users userRepo,
	fields fieldRegistry,
	tx txManager,
	metrics metricsRecorder,
	cfg config.ModerationConfig,
) *Service {
	return &Service{
		edits:   edits,
		users:   users,
		fields:  fields,
		tx:      tx,
		metrics: metrics,
		cfg:     cfg,
		log:     log.With("service", "moderation"),
	}
}
