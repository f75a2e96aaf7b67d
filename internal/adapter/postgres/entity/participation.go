package entity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ballotwiki-backend/internal/fieldstore"
)

const (
	lockCandidateSQL = `SELECT id FROM candidates WHERE id = $1 FOR UPDATE`

	candidateExistsSQL = `SELECT id FROM candidates WHERE id = $1`

	listParticipationSQL = `
SELECT event_id, status
FROM candidate_events
WHERE candidate_id = $1
ORDER BY event_id`

	deleteAbsentSQL = `
DELETE FROM candidate_events
WHERE candidate_id = $1 AND NOT (event_id = ANY($2::uuid[]))`

	upsertParticipationSQL = `
INSERT INTO candidate_events (candidate_id, event_id, status)
VALUES ($1, $2, $3)
ON CONFLICT (candidate_id, event_id) DO UPDATE SET status = EXCLUDED.status`
)

// ParticipationSet is the accessor behind a candidate's events field. The
// payload is the whole set; Set replaces it, deleting members absent from
// the new value and upserting the rest.
type ParticipationSet struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// NewParticipationSet creates the candidate_events accessor.
func NewParticipationSet(pool *pgxpool.Pool) *ParticipationSet {
	return &ParticipationSet{pool: pool, tx: postgres.NewTxManager(pool)}
}

// Get returns the candidate's participation set in canonical form.
func (p *ParticipationSet) Get(ctx context.Context, candidateID uuid.UUID) (string, error) {
	q := postgres.QuerierFromCtx(ctx, p.pool)

	var id uuid.UUID
	if err := q.QueryRow(ctx, candidateExistsSQL, candidateID).Scan(&id); err != nil {
		return "", postgres.MapError(err, "candidate", candidateID)
	}

	rows, err := q.Query(ctx, listParticipationSQL, candidateID)
	if err != nil {
		return "", fmt.Errorf("list candidate events: %w", err)
	}
	defer rows.Close()

	members := []fieldstore.Participation{}
	for rows.Next() {
		var m fieldstore.Participation
		if err := rows.Scan(&m.EventID, &m.Status); err != nil {
			return "", fmt.Errorf("scan candidate event: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("list candidate events: %w", err)
	}

	return fieldstore.EncodeParticipation(members), nil
}

// Set replaces the candidate's participation set with value. It joins the
// caller's transaction, or opens one when called outside a transaction.
// An unknown event id returns domain.ErrNotFound.
func (p *ParticipationSet) Set(ctx context.Context, candidateID uuid.UUID, value string) error {
	members, err := fieldstore.ParseParticipation(value)
	if err != nil {
		return fmt.Errorf("participation set: %w", err)
	}

	return p.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, p.pool)

		var id uuid.UUID
		if err := q.QueryRow(ctx, lockCandidateSQL, candidateID).Scan(&id); err != nil {
			return postgres.MapError(err, "candidate", candidateID)
		}

		keep := make([]uuid.UUID, len(members))
		for i, m := range members {
			keep[i] = m.EventID
		}
		if _, err := q.Exec(ctx, deleteAbsentSQL, candidateID, keep); err != nil {
			return fmt.Errorf("delete candidate events: %w", err)
		}

		if len(members) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, m := range members {
			batch.Queue(upsertParticipationSQL, candidateID, m.EventID, m.Status)
		}

		br := q.SendBatch(ctx, batch)
		defer br.Close()

		for _, m := range members {
			if _, err := br.Exec(); err != nil {
				return postgres.MapError(err, "event", m.EventID)
			}
		}
		return nil
	})
}
