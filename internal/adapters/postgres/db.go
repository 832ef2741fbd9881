package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the injectable store handle. It is constructed once in main and
// passed into the services that need it; there is no package-level pool.
type DB struct {
	Pool *pgxpool.Pool

	// opTimeout bounds every store call so a dead backend surfaces as
	// ErrStoreUnavailable instead of hanging the caller.
	opTimeout time.Duration
}

func Connect(ctx context.Context, url string, opTimeout time.Duration) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	return &DB{Pool: pool, opTimeout: opTimeout}, nil
}

func (db *DB) Close() { db.Pool.Close() }

func (db *DB) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.opTimeout)
}
