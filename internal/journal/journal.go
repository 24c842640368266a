// Package journal persists hunt events (kills, loot) to PostgreSQL.
// Entirely optional: a nil *Journal is valid and every method no-ops, so
// the controller host works without a database.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Journal wraps a pgx connection pool for hunt-event writes.
type Journal struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a Journal handle.
func New(ctx context.Context, dsn string) (*Journal, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to journal database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging journal database: %w", err)
	}
	return &Journal{pool: pool}, nil
}

// Close closes the connection pool.
func (j *Journal) Close() {
	if j == nil {
		return
	}
	j.pool.Close()
}

// RecordKill stores a kill event.
func (j *Journal) RecordKill(ctx context.Context, targetName string, targetID uint16, conLevel uint32, faction uint32) error {
	if j == nil {
		return nil
	}
	_, err := j.pool.Exec(ctx,
		`INSERT INTO hunt_kills (target_name, target_id, con_level, faction, killed_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		targetName, int32(targetID), int32(conLevel), int32(faction), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("recording kill of %q: %w", targetName, err)
	}
	return nil
}

// RecordLoot stores a looted-slot event.
func (j *Journal) RecordLoot(ctx context.Context, corpseID uint16, slot uint32) error {
	if j == nil {
		return nil
	}
	_, err := j.pool.Exec(ctx,
		`INSERT INTO hunt_loot (corpse_id, slot, looted_at)
		 VALUES ($1, $2, $3)`,
		int32(corpseID), int32(slot), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("recording loot from corpse %d: %w", corpseID, err)
	}
	return nil
}

// KillCount returns the number of recorded kills.
func (j *Journal) KillCount(ctx context.Context) (int64, error) {
	if j == nil {
		return 0, nil
	}
	var count int64
	if err := j.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hunt_kills`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting kills: %w", err)
	}
	return count, nil
}
