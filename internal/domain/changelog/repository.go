package changelog

import "context"

type Repository interface {
	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]ChangeRecord, error)
}
