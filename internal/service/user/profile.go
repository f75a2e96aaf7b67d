package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// Profile returns the public summary of a contributor.
func (s *Service) Profile(ctx context.Context, publicID string) (*domain.UserSummary, error) {
	if !domain.IsPublicID(publicID) {
		return nil, domain.ErrNotFound
	}

	u, err := s.users.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, fmt.Errorf("user.Profile: %w", err)
	}

	summary := s.trust.Summarize(*u)
	return &summary, nil
}
