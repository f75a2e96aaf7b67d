package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a COMMUNITY user with zero counters.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleCommunity)
}

// SeedUserWithRole creates a user with the given role and zero counters.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		PublicID:  domain.NewPublicID(),
		Name:      "Test User " + uniqueSuffix(),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, public_id, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.PublicID, user.Name, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCandidate creates a candidate with the given statement and returns its ID.
func SeedCandidate(t *testing.T, pool *pgxpool.Pool, statement string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO candidates (id, name, party, statement) VALUES ($1, $2, $3, $4)`,
		id, "Candidate "+uniqueSuffix(), "Independent", statement,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCandidate: %v", err)
	}
	return id
}

// SeedRace creates a race without an election date and returns its ID.
func SeedRace(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO races (id, title, district) VALUES ($1, $2, $3)`,
		id, "Race "+uniqueSuffix(), "District 1",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRace: %v", err)
	}
	return id
}

// SeedEvent creates an event and returns its ID.
func SeedEvent(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO events (id, title, location) VALUES ($1, $2, $3)`,
		id, "Forum "+uniqueSuffix(), "Town Hall",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent: %v", err)
	}
	return id
}

// SeedGuide creates a guide with the given recommendations JSON (may be
// empty for NULL) and returns its ID.
func SeedGuide(t *testing.T, pool *pgxpool.Pool, recommendations string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO guides (id, title, recommendations) VALUES ($1, $2, NULLIF($3::text, '')::jsonb)`,
		id, "Guide "+uniqueSuffix(), recommendations,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGuide: %v", err)
	}
	return id
}

// SeedEdit inserts an edit row directly, bypassing the submission flow.
// Counters are NOT adjusted.
func SeedEdit(t *testing.T, pool *pgxpool.Pool, e domain.Edit) domain.Edit {
	t.Helper()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = domain.EditStatusPending
	}
	if e.Rationale == "" {
		e.Rationale = "seeded"
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO edits (id, entity_type, entity_id, field, old_value, new_value, rationale,
		                    status, pinned, submitted_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, string(e.EntityType), e.EntityID, e.Field, e.OldValue, e.NewValue, e.Rationale,
		string(e.Status), e.Pinned, e.SubmittedBy, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEdit: %v", err)
	}
	return e
}
