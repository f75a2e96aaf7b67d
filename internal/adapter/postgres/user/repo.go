// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const userColumns = `id, public_id, name, role, edits_accepted, edits_rejected, edits_pending, created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByIDsSQL = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1::uuid[])`

const getByPublicIDSQL = `SELECT ` + userColumns + ` FROM users WHERE public_id = $1`

const createSQL = `
INSERT INTO users (id, public_id, name, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + userColumns

const adjustCountersSQL = `
UPDATE users
SET edits_pending  = edits_pending  + $2,
    edits_accepted = edits_accepted + $3,
    edits_rejected = edits_rejected + $4,
    updated_at     = now()
WHERE id = $1`

const updateRoleSQL = `
UPDATE users SET role = $2, updated_at = now()
WHERE public_id = $1
RETURNING ` + userColumns

// reconcileCountersSQL recomputes the counters from the edits table and
// rewrites only rows that drifted.
const reconcileCountersSQL = `
WITH actual AS (
    SELECT u.id,
           count(e.id) FILTER (WHERE e.status = 'PENDING')  AS pending,
           count(e.id) FILTER (WHERE e.status = 'APPLIED')  AS accepted,
           count(e.id) FILTER (WHERE e.status = 'REJECTED') AS rejected
    FROM users u
    LEFT JOIN edits e ON e.submitted_by = u.id
    GROUP BY u.id
)
UPDATE users u
SET edits_pending  = a.pending,
    edits_accepted = a.accepted,
    edits_rejected = a.rejected,
    updated_at     = now()
FROM actual a
WHERE u.id = a.id
  AND (u.edits_pending, u.edits_accepted, u.edits_rejected)
      IS DISTINCT FROM (a.pending, a.accepted, a.rejected)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByIDs returns the users with the given IDs in no particular order.
// Missing IDs are silently skipped (batch for DataLoader).
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}

	return users, nil
}

// GetByPublicID returns a user by its external identifier.
func (r *Repo) GetByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByPublicIDSQL, publicID)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user "+publicID, uuid.Nil)
	}
	return &u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a user with zero counters. Empty ID, PublicID, Role and
// CreatedAt are filled with defaults.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	publicID := u.PublicID
	if publicID == "" {
		publicID = domain.NewPublicID()
	}
	role := u.Role
	if role == "" {
		role = domain.UserRoleCommunity
	}
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL, id, publicID, u.Name, string(role), createdAt)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &created, nil
}

// AdjustCounters atomically adds delta to the user's edit counters.
// A delta that would drive a counter negative fails the
// users_counters_nonneg check and returns domain.ErrValidation.
func (r *Repo) AdjustCounters(ctx context.Context, id uuid.UUID, delta domain.CounterDelta) error {
	if delta.IsZero() {
		return nil
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, adjustCountersSQL,
		id, delta.Pending, delta.Accepted, delta.Rejected,
	)
	if err != nil {
		return postgres.MapError(err, "user counters", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateRole sets the role of the user identified by publicID.
func (r *Repo) UpdateRole(ctx context.Context, publicID string, role domain.UserRole) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateRoleSQL, publicID, string(role))

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user "+publicID, uuid.Nil)
	}
	return &u, nil
}

// ReconcileCounters recomputes every user's counters from the edits table
// and returns the number of users whose stored counters had drifted.
func (r *Repo) ReconcileCounters(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, reconcileCountersSQL)
	if err != nil {
		return 0, fmt.Errorf("reconcile user counters: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u    domain.User
		role string
	)

	err := row.Scan(&u.ID, &u.PublicID, &u.Name, &role,
		&u.EditsAccepted, &u.EditsRejected, &u.EditsPending, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}

	u.Role = domain.UserRole(role)
	return u, nil
}
