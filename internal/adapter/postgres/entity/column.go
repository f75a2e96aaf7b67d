// Package entity implements fieldstore accessors over the tracked entity
// tables (candidates, races, offices, guides, endorsements, events).
package entity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// columnKind selects how a column's value is rendered to and parsed from
// the edit payload.
type columnKind int

const (
	kindText columnKind = iota
	kindJSON
	kindDate
	kindTimestamp
)

// Column reads and writes a single scalar column of an entity table.
// NULL reads back as the empty string, and writing the empty string to a
// nullable (json/date/timestamp) column stores NULL.
type Column struct {
	pool   *pgxpool.Pool
	table  string
	column string
	getSQL string
	setSQL string
}

// TextColumn is an accessor over a NOT NULL text column.
func TextColumn(pool *pgxpool.Pool, table, column string) *Column {
	return newColumn(pool, table, column, kindText)
}

// JSONColumn is an accessor over a nullable jsonb column.
func JSONColumn(pool *pgxpool.Pool, table, column string) *Column {
	return newColumn(pool, table, column, kindJSON)
}

// DateColumn is an accessor over a nullable date column (YYYY-MM-DD).
func DateColumn(pool *pgxpool.Pool, table, column string) *Column {
	return newColumn(pool, table, column, kindDate)
}

// TimestampColumn is an accessor over a nullable timestamptz column,
// rendered as RFC 3339 in UTC.
func TimestampColumn(pool *pgxpool.Pool, table, column string) *Column {
	return newColumn(pool, table, column, kindTimestamp)
}

func newColumn(pool *pgxpool.Pool, table, column string, kind columnKind) *Column {
	t := pgx.Identifier{table}.Sanitize()
	c := pgx.Identifier{column}.Sanitize()

	var read, write string
	switch kind {
	case kindJSON:
		read = fmt.Sprintf("coalesce(%s::text, '')", c)
		write = "NULLIF($2::text, '')::jsonb"
	case kindDate:
		read = fmt.Sprintf("coalesce(to_char(%s, 'YYYY-MM-DD'), '')", c)
		write = "NULLIF($2::text, '')::date"
	case kindTimestamp:
		read = fmt.Sprintf(`coalesce(to_char(%s AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"'), '')`, c)
		write = "NULLIF($2::text, '')::timestamptz"
	default:
		read = c
		write = "$2"
	}

	return &Column{
		pool:   pool,
		table:  table,
		column: column,
		getSQL: fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", read, t),
		setSQL: fmt.Sprintf("UPDATE %s SET %s = %s, updated_at = now() WHERE id = $1", t, c, write),
	}
}

// Get returns the column value for entityID.
func (c *Column) Get(ctx context.Context, entityID uuid.UUID) (string, error) {
	var v string
	if err := postgres.QuerierFromCtx(ctx, c.pool).QueryRow(ctx, c.getSQL, entityID).Scan(&v); err != nil {
		return "", postgres.MapError(err, c.table, entityID)
	}
	return v, nil
}

// Set overwrites the column value for entityID.
func (c *Column) Set(ctx context.Context, entityID uuid.UUID, value string) error {
	tag, err := postgres.QuerierFromCtx(ctx, c.pool).Exec(ctx, c.setSQL, entityID, value)
	if err != nil {
		return postgres.MapError(err, c.table+"."+c.column, entityID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", c.table, entityID, domain.ErrNotFound)
	}
	return nil
}
