package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vokabular/internal/app/server/config"
	"vokabular/internal/infrastructure/migration"
)

// Storage owns the pgx connection pool shared by all repositories.
type Storage struct {
	pool *pgxpool.Pool
}

// New connects to Postgres and brings the schema up to date before
// handing out the pool.
func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	mg := migration.New(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
