package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"vokabular/internal/domain/vocabulary"
)

// Cache is the local flashcard copy used for offline practice. It is
// replaced wholesale on every successful fetch from the server, so its
// contents are at most one sync old.
type Cache struct {
	db *sql.DB
}

func NewCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	cache := &Cache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init cache tables: %w", err)
	}
	return cache, nil
}

// NewCacheWithDB wraps an existing handle. Tables must already exist.
func NewCacheWithDB(db *sql.DB) *Cache {
	return &Cache{db: db}
}

func (c *Cache) initTables() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS vocabularies (
			id INTEGER PRIMARY KEY,
			source_text TEXT NOT NULL,
			target_text TEXT NOT NULL,
			source_language TEXT NOT NULL,
			status TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_vocabularies_language ON vocabularies(source_language);
	`)
	return err
}

// ReplaceLanguage swaps the cached cards of one language for the given
// set inside a single transaction.
func (c *Cache) ReplaceLanguage(language string, cards []vocabulary.Vocabulary) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM vocabularies WHERE source_language = ?", language); err != nil {
		return fmt.Errorf("failed to clear cached language: %w", err)
	}

	for _, card := range cards {
		_, err := tx.Exec(`
			INSERT INTO vocabularies (id, source_text, target_text, source_language, status, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, card.ID, card.SourceText, card.TargetText, card.SourceLanguage, string(card.Status), card.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to cache card %d: %w", card.ID, err)
		}
	}

	return tx.Commit()
}

// Due returns up to limit cached cards of the language that are still
// open or learning, in random order.
func (c *Cache) Due(language string, limit int) ([]vocabulary.Vocabulary, error) {
	rows, err := c.db.Query(`
		SELECT id, source_text, target_text, source_language, status, updated_at
		FROM vocabularies
		WHERE source_language = ? AND status IN (?, ?)
		ORDER BY RANDOM()
		LIMIT ?
	`, language, string(vocabulary.StatusOpen), string(vocabulary.StatusLearning), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached cards: %w", err)
	}
	defer rows.Close()

	var cards []vocabulary.Vocabulary
	for rows.Next() {
		var card vocabulary.Vocabulary
		var status string
		var updatedAt time.Time
		if err := rows.Scan(&card.ID, &card.SourceText, &card.TargetText,
			&card.SourceLanguage, &status, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cached card: %w", err)
		}
		card.Status = vocabulary.Status(status)
		card.UpdatedAt = updatedAt
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// SetStatus records a practice result locally so repeated offline runs
// do not keep serving learned cards.
func (c *Cache) SetStatus(id int, status vocabulary.Status) error {
	_, err := c.db.Exec("UPDATE vocabularies SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update cached status: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
