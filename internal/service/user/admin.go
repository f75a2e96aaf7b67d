package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// Create registers a new account and returns it with its public id.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, &domain.User{Name: input.Name, Role: input.Role})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("public_id", u.PublicID),
		slog.String("role", u.Role.String()),
	)

	return u, nil
}

// SetRole changes the role of the account identified by its public id.
// Setting the role it already has is a no-op that still returns the user.
func (s *Service) SetRole(ctx context.Context, input SetRoleInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.users.GetByPublicID(ctx, input.PublicID)
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}
	if current.Role == input.Role {
		return current, nil
	}

	u, err := s.users.UpdateRole(ctx, input.PublicID, input.Role)
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("public_id", u.PublicID),
		slog.String("old_role", current.Role.String()),
		slog.String("new_role", u.Role.String()),
	)

	return u, nil
}

// ReconcileCounters recomputes every user's edit counters from the edits
// table and returns how many users had drifted.
func (s *Service) ReconcileCounters(ctx context.Context) (int64, error) {
	n, err := s.users.ReconcileCounters(ctx)
	if err != nil {
		return 0, fmt.Errorf("user.ReconcileCounters: %w", err)
	}

	if n > 0 {
		s.log.WarnContext(ctx, "user counters drifted", slog.Int64("users", n))
	} else {
		s.log.InfoContext(ctx, "user counters consistent")
	}

	return n, nil
}
