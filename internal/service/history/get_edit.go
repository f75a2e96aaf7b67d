package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/linediff"
)

// GetEdit returns one edit with its line diff. Values are rendered through
// the field codec first, so structured payloads diff line by line.
func (s *Service) GetEdit(ctx context.Context, id uuid.UUID) (*EditDetail, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	e, err := s.edits.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.Describe(ctx, []domain.Edit{*e})
	if err != nil {
		return nil, err
	}

	oldText, newText := e.OldValue, e.NewValue
	if field, err := s.fields.Lookup(e.EntityType, e.Field); err == nil {
		oldText = field.Codec.Display(oldText)
		newText = field.Codec.Display(newText)
	} else {
		// A field removed from the registry still has its history.
		s.log.WarnContext(ctx, "edit targets unregistered field",
			slog.String("edit_id", e.ID.String()),
			slog.String("entity_type", string(e.EntityType)),
			slog.String("field", e.Field),
		)
	}

	return &EditDetail{
		EditView: views[0],
		Diff:     linediff.Lines(oldText, newText),
	}, nil
}
