// Package history is the read side of the edit lifecycle: per-entity and
// per-user audit trails, status listings and single-edit detail with a
// line diff of the proposed change.
package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/fieldstore"
	"github.com/heartmarshall/ballotwiki-backend/internal/linediff"
)

type editRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Edit, error)
	List(ctx context.Context, filter domain.EditFilter) ([]domain.Edit, error)
	Count(ctx context.Context, filter domain.EditFilter) (int, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.User, error)
}

type fieldRegistry interface {
	Lookup(entityType domain.EntityType, name string) (fieldstore.Field, error)
}

type summarizer interface {
	Summarize(u domain.User) domain.UserSummary
}

// EditView is an edit with its submitter and moderator attached.
type EditView struct {
	Edit      domain.Edit
	Submitter domain.UserSummary
	Moderator *domain.UserSummary
}

// EditDetail is an EditView with the line diff of old against new value.
type EditDetail struct {
	EditView
	Diff linediff.Diff
}

// Page is one page of an edit listing.
type Page struct {
	Items []EditView
	Total int
}

// Service implements audit trail queries.
type Service struct {
	edits  editRepo
	users  userRepo
	fields fieldRegistry
	trust  summarizer
	log    *slog.Logger
}

// NewService creates a new history Service.
func NewService(
	log *slog.Logger,
	edits editRepo,
	users userRepo,
	fields fieldRegistry,
	trust summarizer,
) *Service {
	return &Service{
		edits:  edits,
		users:  users,
		fields: fields,
		trust:  trust,
		log:    log.With("service", "history"),
	}
}
