package database

import (
	"context"
	"fmt"

	"coinflip/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pendingWagersSchema = `
CREATE TABLE IF NOT EXISTS pending_wagers (
    request_id TEXT PRIMARY KEY,
    player     TEXT        NOT NULL,
    choice     SMALLINT    NOT NULL CHECK (choice IN (0, 1)),
    deposit    NUMERIC(40) NOT NULL CHECK (deposit >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS pending_wagers_created_at_idx ON pending_wagers (created_at);`

// NewPool opens the pool used by the postgres pending-wager store.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnIdleTime = cfg.ConnMaxIdleTime
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the pending_wagers table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, pendingWagersSchema); err != nil {
		return fmt.Errorf("failed to create pending_wagers schema: %w", err)
	}
	return nil
}
