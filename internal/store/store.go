// Package store persists produced blockfaces and zones to PostGIS so later
// runs and downstream jobs can query them spatially.
package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/twpayne/go-geos"
	pgxgeos "github.com/twpayne/pgx-geos"
)

const queryTimeout = 5 * time.Second

// NewPool connects to the database and registers the GEOS codec so geometry
// columns scan straight into *geos.Geom.
func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		if err := pgxgeos.Register(ctx, conn, geos.NewContext()); err != nil {
			return err
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return pool, nil
}

// EnsureSchema creates the curbmap tables when they do not exist yet.
func EnsureSchema(db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := db.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS curbmap_blockfaces (
		id text PRIMARY KEY,
		street text NOT NULL,
		from_street text NOT NULL,
		to_street text NOT NULL,
		side text NOT NULL,
		geom geometry(LineString, 4326) NOT NULL,
		regulations jsonb NOT NULL DEFAULT '[]',
		updated_at timestamptz NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS curbmap_zones (
		code text PRIMARY KEY,
		name text NOT NULL,
		geom geometry(MultiPolygon, 4326) NOT NULL,
		multi_permit jsonb NOT NULL DEFAULT '{}',
		block_count int NOT NULL DEFAULT 0,
		meter_count int NOT NULL DEFAULT 0,
		updated_at timestamptz NOT NULL DEFAULT now()
	);
	`)
	return err
}
