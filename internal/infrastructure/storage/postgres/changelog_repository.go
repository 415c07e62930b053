package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"vokabular/internal/domain/changelog"
)

// ChangelogRepository reads the trigger-maintained audit log. It never
// writes: change_records rows appear as side effects of mutations on
// the tracked tables.
type ChangelogRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewChangelogRepository(pool *pgxpool.Pool, log *slog.Logger) *ChangelogRepository {
	return &ChangelogRepository{
		pool: pool,
		log:  log.With("component", "changelog_repository"),
	}
}

func (r *ChangelogRepository) ListRecent(ctx context.Context, limit int) ([]changelog.ChangeRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, item_type, item_id, event, COALESCE(actor, ''), diff, created_at
		 FROM change_records
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`, limit)
	if err != nil {
		r.log.Error("failed to list change records", "error", err)
		return nil, fmt.Errorf("list change records: %w", err)
	}
	defer rows.Close()

	var records []changelog.ChangeRecord
	for rows.Next() {
		var rec changelog.ChangeRecord
		var diff []byte
		if err := rows.Scan(&rec.ID, &rec.ItemType, &rec.ItemID, &rec.Event,
			&rec.Actor, &diff, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan change record: %w", err)
		}
		rec.Diff = diff
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate change records: %w", err)
	}
	return records, nil
}
