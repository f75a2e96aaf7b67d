package moderation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// QueuePage is one page of the pending queue.
type QueuePage struct {
	Items []domain.Edit
	Total int
}

// ListPending returns PENDING edits, oldest first.
func (s *Service) ListPending(ctx context.Context, input QueueInput) (*QueuePage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.EditStatusPending
	filter := domain.EditFilter{
		EntityType:  input.EntityType,
		Pinned:      input.Pinned,
		Status:      &status,
		OldestFirst: true,
		Limit:       input.Limit,
		Offset:      input.Offset,
	}

	items, err := s.edits.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pending edits: %w", err)
	}

	total, err := s.edits.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count pending edits: %w", err)
	}

	return &QueuePage{Items: items, Total: total}, nil
}
