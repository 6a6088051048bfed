package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// nextCounterSQL creates the counter on first use and increments it
// otherwise. The upsert holds the row lock for the whole statement, so two
// callers never observe the same value.
const nextCounterSQL = `
INSERT INTO counters (name, value) VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET value = counters.value + 1, updated_at = now()
RETURNING value`

const CreateCountersSQL = `
CREATE TABLE IF NOT EXISTS counters (
	name       text PRIMARY KEY,
	value      bigint NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CounterStore struct {
	q rowQuerier
}

func NewCounterStore(db *DB) *CounterStore {
	return &CounterStore{q: db.Pool}
}

func (s *CounterStore) NextValue(ctx context.Context, name string) (int64, error) {
	var v int64
	if err := s.q.QueryRow(ctx, nextCounterSQL, name).Scan(&v); err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", name, err)
	}
	return v, nil
}

// EnsureSchema creates the counters table when it is missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, CreateCountersSQL); err != nil {
		return fmt.Errorf("create counters table: %w", err)
	}
	return nil
}
