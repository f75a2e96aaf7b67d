package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/metrics"
	"github.com/heartmarshall/ballotwiki-backend/pkg/ctxutil"
)

// Decide approves or rejects a PENDING edit.
//
// Approval applies the edit's new value only while the entity still holds
// the value the edit was diffed against; otherwise domain.ErrStaleEdit is
// returned and the edit stays PENDING. Deciding an edit that is no longer
// PENDING returns domain.ErrEditResolved.
func (s *Service) Decide(ctx context.Context, input DecideInput) (*domain.Edit, error) {
	moderatorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxNoteLength); err != nil {
		return nil, err
	}

	moderator, err := s.users.GetByID(ctx, moderatorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get moderator: %w", err)
	}
	if !moderator.Role.CanModerate() {
		return nil, domain.ErrForbidden
	}

	var resolved *domain.Edit
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		e, err := s.edits.GetByIDForUpdate(txCtx, input.EditID)
		if err != nil {
			return err
		}
		if !e.IsPending() {
			return domain.ErrEditResolved
		}

		switch input.Decision {
		case domain.DecisionRejected:
			resolved, err = s.reject(txCtx, e, moderatorID, input.Note)
		case domain.DecisionApproved:
			resolved, err = s.approve(txCtx, e, moderatorID, input.Note)
		}
		return err
	})
	if err != nil {
		s.recordConflict(ctx, input, moderatorID, err)
		return nil, err
	}

	s.metrics.EditDecided(input.Decision)
	s.log.InfoContext(ctx, "edit decided",
		slog.String("edit_id", resolved.ID.String()),
		slog.String("moderator_id", moderatorID.String()),
		slog.String("decision", string(input.Decision)),
		slog.String("status", string(resolved.Status)),
	)

	return resolved, nil
}

func (s *Service) reject(ctx context.Context, e *domain.Edit, moderatorID uuid.UUID, note *string) (*domain.Edit, error) {
	resolved, err := s.edits.Resolve(ctx, e.ID, domain.Resolution{
		Status:      domain.EditStatusRejected,
		ModeratedBy: moderatorID,
		Note:        note,
		ReviewedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.users.AdjustCounters(ctx, e.SubmittedBy, domain.CounterDelta{Pending: -1, Rejected: 1}); err != nil {
		return nil, fmt.Errorf("adjust counters of %s: %w", e.SubmittedBy, err)
	}
	return resolved, nil
}

func (s *Service) approve(ctx context.Context, e *domain.Edit, moderatorID uuid.UUID, note *string) (*domain.Edit, error) {
	field, err := s.fields.Lookup(e.EntityType, e.Field)
	if err != nil {
		return nil, fmt.Errorf("edit %s targets %s.%s: %w", e.ID, e.EntityType, e.Field, err)
	}

	live, err := field.Current(ctx, e.EntityID)
	if err != nil {
		return nil, fmt.Errorf("read %s.%s: %w", e.EntityType, e.Field, err)
	}
	if !field.Codec.Equal(e.OldValue, live) {
		return nil, domain.ErrStaleEdit
	}

	if err := field.Apply(ctx, e.EntityID, e.NewValue); err != nil {
		return nil, err
	}

	resolved, err := s.edits.Resolve(ctx, e.ID, domain.Resolution{
		Status:      domain.EditStatusApplied,
		ModeratedBy: moderatorID,
		Note:        note,
		ReviewedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.users.AdjustCounters(ctx, e.SubmittedBy, domain.CounterDelta{Pending: -1, Accepted: 1}); err != nil {
		return nil, fmt.Errorf("adjust counters of %s: %w", e.SubmittedBy, err)
	}
	return resolved, nil
}

func (s *Service) recordConflict(ctx context.Context, input DecideInput, moderatorID uuid.UUID, err error) {
	var reason string
	switch {
	case errors.Is(err, domain.ErrStaleEdit):
		reason = metrics.ConflictStale
	case errors.Is(err, domain.ErrEditResolved):
		reason = metrics.ConflictResolved
	default:
		return
	}

	s.metrics.EditConflict(reason)
	s.log.WarnContext(ctx, "edit decision conflict",
		slog.String("edit_id", input.EditID.String()),
		slog.String("moderator_id", moderatorID.String()),
		slog.String("decision", string(input.Decision)),
		slog.String("reason", reason),
	)
}
