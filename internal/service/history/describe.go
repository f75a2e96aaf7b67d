package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// Describe attaches submitter and moderator summaries to edits, preserving
// order. All user lookups for the call are batched.
func (s *Service) Describe(ctx context.Context, edits []domain.Edit) ([]EditView, error) {
	views := make([]EditView, len(edits))
	if len(edits) == 0 {
		return views, nil
	}

	loader := newUserLoader(s.users)

	submitters := make([]dataloader.Thunk[domain.User], len(edits))
	moderators := make([]dataloader.Thunk[domain.User], len(edits))
	for i, e := range edits {
		submitters[i] = loader.Load(ctx, e.SubmittedBy)
		if e.ModeratedBy != nil {
			moderators[i] = loader.Load(ctx, *e.ModeratedBy)
		}
	}

	for i, e := range edits {
		submitter, err := resolveUser(submitters[i], e.SubmittedBy)
		if err != nil {
			return nil, err
		}
		views[i] = EditView{Edit: e, Submitter: s.trust.Summarize(submitter)}

		if moderators[i] != nil {
			moderator, err := resolveUser(moderators[i], *e.ModeratedBy)
			if err != nil {
				return nil, err
			}
			summary := s.trust.Summarize(moderator)
			views[i].Moderator = &summary
		}
	}

	return views, nil
}

func resolveUser(thunk dataloader.Thunk[domain.User], id uuid.UUID) (domain.User, error) {
	u, err := thunk()
	if err != nil {
		return domain.User{}, fmt.Errorf("load user %s: %w", id, err)
	}
	return u, nil
}
