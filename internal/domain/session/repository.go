package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error
	// Validate resolves a token hash to the owning user's id, or
	// ErrInvalidSession when no live session matches.
	Validate(ctx context.Context, tokenHash string) (int, error)
	DeleteExpired(ctx context.Context) error
}
