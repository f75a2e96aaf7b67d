// Package edit implements the Edit repository using PostgreSQL.
// Edits are append-only: the only UPDATEs are the guarded status
// transitions Supersede and Resolve, both conditioned on status = 'PENDING'.
package edit

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// pendingIndex is the partial unique index allowing one PENDING edit per
// (entity_type, entity_id, field).
const pendingIndex = "edits_one_pending_per_field"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides edit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new edit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const editColumns = `id, entity_type, entity_id, field, old_value, new_value, rationale,
    status, pinned, submitted_by, moderated_by, moderator_note, created_at, reviewed_at`

var editColumnList = []string{
	"id", "entity_type", "entity_id", "field", "old_value", "new_value", "rationale",
	"status", "pinned", "submitted_by", "moderated_by", "moderator_note", "created_at", "reviewed_at",
}

const lockTupleSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

const getByIDSQL = `SELECT ` + editColumns + ` FROM edits WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + ` FOR UPDATE`

const findPendingSQL = `
SELECT ` + editColumns + `
FROM edits
WHERE entity_type = $1 AND entity_id = $2 AND field = $3 AND status = 'PENDING'
FOR UPDATE`

const insertSQL = `
INSERT INTO edits (id, entity_type, entity_id, field, old_value, new_value, rationale,
                   status, pinned, submitted_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'PENDING', $8, $9, $10)
RETURNING ` + editColumns

const supersedeSQL = `
UPDATE edits SET status = 'SUPERSEDED'
WHERE id = $1 AND status = 'PENDING'
RETURNING ` + editColumns

const resolveSQL = `
UPDATE edits
SET status = $2, moderated_by = $3, moderator_note = $4, reviewed_at = $5
WHERE id = $1 AND status = 'PENDING'
RETURNING ` + editColumns

// ---------------------------------------------------------------------------
// Locking
// ---------------------------------------------------------------------------

// LockTuple takes a transaction-scoped advisory lock on the
// (entityType, entityID, field) tuple. Concurrent submissions for the same
// field serialise here until the holder commits or rolls back.
// Must be called inside TxManager.RunInTx.
func (r *Repo) LockTuple(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, field string) error {
	if !postgres.InTx(ctx) {
		return errors.New("lock edit tuple: no transaction in context")
	}

	key := string(entityType) + "/" + entityID.String() + "/" + field
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, lockTupleSQL, key); err != nil {
		return fmt.Errorf("lock edit tuple: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an edit by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Edit, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)

	e, err := scanEdit(row)
	if err != nil {
		return nil, postgres.MapError(err, "edit", id)
	}
	return &e, nil
}

// GetByIDForUpdate returns an edit and row-locks it until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Edit, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDForUpdateSQL, id)

	e, err := scanEdit(row)
	if err != nil {
		return nil, postgres.MapError(err, "edit", id)
	}
	return &e, nil
}

// FindPending returns the PENDING edit for the tuple, row-locked.
// Returns domain.ErrNotFound when the field has no live proposal.
func (r *Repo) FindPending(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, field string) (*domain.Edit, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, findPendingSQL, string(entityType), entityID, field)

	e, err := scanEdit(row)
	if err != nil {
		return nil, postgres.MapError(err, "pending edit on "+string(entityType)+"."+field, entityID)
	}
	return &e, nil
}

// List returns edits matching the filter. Newest first unless
// filter.OldestFirst is set. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.EditFilter) ([]domain.Edit, error) {
	order := "created_at DESC, id DESC"
	if filter.OldestFirst {
		order = "created_at ASC, id ASC"
	}

	query := applyFilter(psql.Select(editColumnList...).From("edits"), filter).OrderBy(order)
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list edits query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list edits: %w", err)
	}
	defer rows.Close()

	edits := []domain.Edit{}
	for rows.Next() {
		e, err := scanEdit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan edit: %w", err)
		}
		edits = append(edits, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list edits: %w", err)
	}

	return edits, nil
}

// Count returns the number of edits matching the filter, ignoring
// Limit and Offset.
func (r *Repo) Count(ctx context.Context, filter domain.EditFilter) (int, error) {
	sql, args, err := applyFilter(psql.Select("count(*)").From("edits"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count edits query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count edits: %w", err)
	}
	return n, nil
}

func applyFilter(q sq.SelectBuilder, f domain.EditFilter) sq.SelectBuilder {
	if f.EntityType != nil {
		q = q.Where(sq.Eq{"entity_type": string(*f.EntityType)})
	}
	if f.EntityID != nil {
		q = q.Where(sq.Eq{"entity_id": *f.EntityID})
	}
	if f.Field != nil {
		q = q.Where(sq.Eq{"field": *f.Field})
	}
	if f.SubmittedBy != nil {
		q = q.Where(sq.Eq{"submitted_by": *f.SubmittedBy})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.Pinned != nil {
		q = q.Where(sq.Eq{"pinned": *f.Pinned})
	}
	return q
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new PENDING edit. A nil ID is replaced with a fresh one
// and a zero CreatedAt with the current time.
// Returns domain.ErrConflict if the tuple already has a PENDING edit.
func (r *Repo) Create(ctx context.Context, e *domain.Edit) (*domain.Edit, error) {
	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertSQL,
		id, string(e.EntityType), e.EntityID, e.Field, e.OldValue, e.NewValue, e.Rationale,
		e.Pinned, e.SubmittedBy, createdAt,
	)

	created, err := scanEdit(row)
	if err != nil {
		if postgres.IsUniqueViolation(err, pendingIndex) {
			return nil, fmt.Errorf("edit on %s %s.%s: pending edit exists: %w", e.EntityType, e.EntityID, e.Field, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "edit", id)
	}
	return &created, nil
}

// Supersede moves a PENDING edit to SUPERSEDED and returns it.
// Returns domain.ErrEditResolved if the edit is no longer PENDING.
func (r *Repo) Supersede(ctx context.Context, id uuid.UUID) (*domain.Edit, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, supersedeSQL, id)

	e, err := scanEdit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("supersede edit %s: %w", id, domain.ErrEditResolved)
		}
		return nil, postgres.MapError(err, "edit", id)
	}
	return &e, nil
}

// Resolve writes a moderator's terminal outcome on a PENDING edit.
// Returns domain.ErrEditResolved if the edit is missing or no longer PENDING.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, res domain.Resolution) (*domain.Edit, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, resolveSQL,
		id, string(res.Status), res.ModeratedBy, res.Note, res.ReviewedAt,
	)

	e, err := scanEdit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("resolve edit %s: %w", id, domain.ErrEditResolved)
		}
		return nil, postgres.MapError(err, "edit", id)
	}
	return &e, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEdit(row rowScanner) (domain.Edit, error) {
	var (
		e          domain.Edit
		entityType string
		status     string
	)

	err := row.Scan(
		&e.ID, &entityType, &e.EntityID, &e.Field, &e.OldValue, &e.NewValue, &e.Rationale,
		&status, &e.Pinned, &e.SubmittedBy, &e.ModeratedBy, &e.ModeratorNote, &e.CreatedAt, &e.ReviewedAt,
	)
	if err != nil {
		return domain.Edit{}, err
	}

	e.EntityType = domain.EntityType(entityType)
	e.Status = domain.EditStatus(status)
	return e, nil
}
