package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// EntityHistory returns the edits of one entity, newest first.
func (s *Service) EntityHistory(ctx context.Context, input EntityHistoryInput) (*Page, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.EditFilter{
		EntityType: &input.EntityType,
		EntityID:   &input.EntityID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}
	if input.Field != nil {
		field := strings.TrimSpace(*input.Field)
		if _, err := s.fields.Lookup(input.EntityType, field); err != nil {
			return nil, err
		}
		filter.Field = &field
	}

	return s.page(ctx, filter)
}

// UserHistory returns the edits submitted by the user with the given
// public id, newest first.
func (s *Service) UserHistory(ctx context.Context, input UserHistoryInput) (*Page, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByPublicID(ctx, input.PublicID)
	if err != nil {
		return nil, err
	}

	return s.page(ctx, domain.EditFilter{
		SubmittedBy: &user.ID,
		Status:      input.Status,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
}

// ListEdits returns edits across all entities, newest first.
func (s *Service) ListEdits(ctx context.Context, input ListInput) (*Page, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.page(ctx, domain.EditFilter{
		Status:     input.Status,
		EntityType: input.EntityType,
		Pinned:     input.Pinned,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
}

func (s *Service) page(ctx context.Context, filter domain.EditFilter) (*Page, error) {
	edits, err := s.edits.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list edits: %w", err)
	}

	total, err := s.edits.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count edits: %w", err)
	}

	views, err := s.Describe(ctx, edits)
	if err != nil {
		return nil, err
	}

	return &Page{Items: views, Total: total}, nil
}
