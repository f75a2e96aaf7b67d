package edit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/pkg/ctxutil"
)

// SubmitResult is the outcome of a submission.
type SubmitResult struct {
	Edit *domain.Edit
	// Superseded is the previously pending edit on the same field, if any.
	Superseded *domain.Edit
}

// Submit records a PENDING edit proposing input.NewValue for one field.
//
// The live value is read server-side and stored as the edit's old value.
// An existing PENDING edit on the same field is superseded in the same
// transaction, so at most one proposal per field is ever pending.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	fieldName := strings.TrimSpace(input.Field)
	field, err := s.fields.Lookup(input.EntityType, fieldName)
	if err != nil {
		return nil, err
	}

	newValue, err := field.Codec.Canonical(input.NewValue)
	if err != nil {
		return nil, domain.NewValidationError("new_value", err.Error())
	}

	if err := s.checkRate(ctx, userID); err != nil {
		return nil, err
	}

	var result *SubmitResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The callback may run again after a deadlock, so it builds the
		// result from scratch on every attempt.
		result = nil

		submitter, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("get submitter: %w", err)
		}

		if err := s.edits.LockTuple(txCtx, input.EntityType, input.EntityID, fieldName); err != nil {
			return err
		}

		// FindPending waits on the row lock of a pending edit that a
		// moderator may be applying right now. The live value must be read
		// after that wait, or it can predate the approved change.
		prior, err := s.edits.FindPending(txCtx, input.EntityType, input.EntityID, fieldName)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find pending edit: %w", err)
		}

		oldValue, err := field.Current(txCtx, input.EntityID)
		if err != nil {
			return fmt.Errorf("read %s.%s: %w", input.EntityType, fieldName, err)
		}

		if field.Codec.Equal(oldValue, newValue) {
			return domain.NewValidationError("new_value", "no changes")
		}

		var superseded *domain.Edit
		if prior != nil {
			superseded, err = s.edits.Supersede(txCtx, prior.ID)
			if err != nil {
				return fmt.Errorf("supersede edit %s: %w", prior.ID, err)
			}
			if err := s.users.AdjustCounters(txCtx, superseded.SubmittedBy, domain.CounterDelta{Pending: -1}); err != nil {
				return fmt.Errorf("adjust counters of %s: %w", superseded.SubmittedBy, err)
			}
		}

		created, err := s.edits.Create(txCtx, &domain.Edit{
			EntityType:  input.EntityType,
			EntityID:    input.EntityID,
			Field:       fieldName,
			OldValue:    oldValue,
			NewValue:    newValue,
			Rationale:   strings.TrimSpace(input.Rationale),
			Status:      domain.EditStatusPending,
			Pinned:      submitter.Role == domain.UserRoleCandidate,
			SubmittedBy: userID,
		})
		if err != nil {
			return fmt.Errorf("create edit: %w", err)
		}

		if err := s.users.AdjustCounters(txCtx, userID, domain.CounterDelta{Pending: 1}); err != nil {
			return fmt.Errorf("adjust counters of %s: %w", userID, err)
		}

		result = &SubmitResult{Edit: created, Superseded: superseded}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EditSubmitted(input.EntityType)
	attrs := []any{
		slog.String("edit_id", result.Edit.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("entity_type", string(input.EntityType)),
		slog.String("entity_id", input.EntityID.String()),
		slog.String("field", fieldName),
		slog.Bool("pinned", result.Edit.Pinned),
	}
	if result.Superseded != nil {
		s.metrics.EditSuperseded()
		attrs = append(attrs, slog.String("superseded_id", result.Superseded.ID.String()))
	}
	s.log.InfoContext(ctx, "edit submitted", attrs...)

	return result, nil
}

// checkRate applies the per-user submission limit. Limiter failures are
// logged and the submission proceeds.
func (s *Service) checkRate(ctx context.Context, userID uuid.UUID) error {
	if s.limiter == nil {
		return nil
	}

	allowed, err := s.limiter.Allow(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "submission limiter unavailable",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if !allowed {
		s.metrics.SubmissionRateLimited()
		return domain.ErrRateLimited
	}
	return nil
}
