package vocabulary

import "context"

// Repository is the persistence contract for flashcards. Every lookup
// and mutation is scoped by the owning user's id; there is no way to
// address a card by id alone.
type Repository interface {
	// Create inserts a new card and returns its id. A card with the
	// same (user, source text, source language) already present yields
	// ErrDuplicate.
	Create(ctx context.Context, v *Vocabulary) (int, error)
	// Get returns the card with the given id owned by userID, or
	// ErrNotFound.
	Get(ctx context.Context, userID, id int) (*Vocabulary, error)
	// ListByUser returns all cards of userID whose source language is
	// in languages (all languages when empty).
	ListByUser(ctx context.Context, userID int, languages []string) ([]Vocabulary, error)
	// ListDue returns all open and learning cards of userID for one
	// source language.
	ListDue(ctx context.Context, userID int, language string) ([]Vocabulary, error)
	// CountByStatus returns the per-status counts of userID's cards in
	// one source language.
	CountByStatus(ctx context.Context, userID int, language string) (StatusCounts, error)
	// Update rewrites source text, target text and status of the card.
	Update(ctx context.Context, v *Vocabulary) error
	// Delete removes the card, or returns ErrNotFound.
	Delete(ctx context.Context, userID, id int) error
	// SetStatusIf atomically moves the card's status from "from" to
	// "to". It reports false without error when the card's status no
	// longer equals "from" (a concurrent advance won).
	SetStatusIf(ctx context.Context, userID, id int, from, to Status) (bool, error)
}
