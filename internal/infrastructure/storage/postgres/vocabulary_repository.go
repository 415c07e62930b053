package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"vokabular/internal/domain/vocabulary"
)

type VocabularyRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewVocabularyRepository(pool *pgxpool.Pool, log *slog.Logger) *VocabularyRepository {
	return &VocabularyRepository{
		pool: pool,
		log:  log.With("component", "vocabulary_repository"),
	}
}

const vocabularyColumns = `id, user_id, source_text, target_text, source_language, status, created_at, updated_at`

func (r *VocabularyRepository) Create(ctx context.Context, v *vocabulary.Vocabulary) (int, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO vocabularies (user_id, source_text, target_text, source_language, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		v.UserID, v.SourceText, v.TargetText, v.SourceLanguage, v.Status).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, vocabulary.ErrDuplicate
		}
		r.log.Error("failed to create vocabulary", "user_id", v.UserID, "error", err)
		return 0, fmt.Errorf("create vocabulary: %w", err)
	}
	return v.ID, nil
}

func (r *VocabularyRepository) Get(ctx context.Context, userID, id int) (*vocabulary.Vocabulary, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+vocabularyColumns+` FROM vocabularies WHERE id = $1 AND user_id = $2`,
		id, userID)

	v, err := scanVocabulary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vocabulary.ErrNotFound
		}
		r.log.Error("failed to get vocabulary", "vocabulary_id", id, "user_id", userID, "error", err)
		return nil, fmt.Errorf("get vocabulary: %w", err)
	}
	return v, nil
}

func (r *VocabularyRepository) ListByUser(ctx context.Context, userID int, languages []string) ([]vocabulary.Vocabulary, error) {
	query := `SELECT ` + vocabularyColumns + ` FROM vocabularies WHERE user_id = $1`
	args := []any{userID}
	if len(languages) > 0 {
		query += ` AND source_language = ANY($2)`
		args = append(args, languages)
	}
	query += ` ORDER BY source_language, updated_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list vocabularies", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list vocabularies: %w", err)
	}
	defer rows.Close()

	return scanVocabularies(rows)
}

func (r *VocabularyRepository) ListDue(ctx context.Context, userID int, language string) ([]vocabulary.Vocabulary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+vocabularyColumns+` FROM vocabularies
		 WHERE user_id = $1 AND source_language = $2 AND status IN ($3, $4)`,
		userID, language, vocabulary.StatusOpen, vocabulary.StatusLearning)
	if err != nil {
		r.log.Error("failed to list due vocabularies", "user_id", userID, "language", language, "error", err)
		return nil, fmt.Errorf("list due vocabularies: %w", err)
	}
	defer rows.Close()

	return scanVocabularies(rows)
}

func (r *VocabularyRepository) CountByStatus(ctx context.Context, userID int, language string) (vocabulary.StatusCounts, error) {
	var c vocabulary.StatusCounts
	err := r.pool.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE status = $3),
		        count(*) FILTER (WHERE status = $4),
		        count(*) FILTER (WHERE status = $5)
		 FROM vocabularies
		 WHERE user_id = $1 AND source_language = $2`,
		userID, language,
		vocabulary.StatusOpen, vocabulary.StatusLearning, vocabulary.StatusLearned).
		Scan(&c.Total, &c.Open, &c.Learning, &c.Learned)
	if err != nil {
		r.log.Error("failed to count vocabularies", "user_id", userID, "language", language, "error", err)
		return vocabulary.StatusCounts{}, fmt.Errorf("count vocabularies: %w", err)
	}
	c.ToLearn = c.Open + c.Learning
	return c, nil
}

func (r *VocabularyRepository) Update(ctx context.Context, v *vocabulary.Vocabulary) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE vocabularies
		 SET source_text = $1, target_text = $2, status = $3, updated_at = NOW()
		 WHERE id = $4 AND user_id = $5`,
		v.SourceText, v.TargetText, v.Status, v.ID, v.UserID)
	if err != nil {
		r.log.Error("failed to update vocabulary", "vocabulary_id", v.ID, "user_id", v.UserID, "error", err)
		return fmt.Errorf("update vocabulary: %w", err)
	}
	if result.RowsAffected() == 0 {
		return vocabulary.ErrNotFound
	}
	return nil
}

func (r *VocabularyRepository) Delete(ctx context.Context, userID, id int) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM vocabularies WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.log.Error("failed to delete vocabulary", "vocabulary_id", id, "user_id", userID, "error", err)
		return fmt.Errorf("delete vocabulary: %w", err)
	}
	if result.RowsAffected() == 0 {
		return vocabulary.ErrNotFound
	}
	return nil
}

// SetStatusIf is the compare-and-set behind status advancement: the
// update only lands when the stored status still equals "from".
func (r *VocabularyRepository) SetStatusIf(ctx context.Context, userID, id int, from, to vocabulary.Status) (bool, error) {
	result, err := r.pool.Exec(ctx,
		`UPDATE vocabularies
		 SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3 AND status = $4`,
		to, id, userID, from)
	if err != nil {
		r.log.Error("failed to set vocabulary status", "vocabulary_id", id, "user_id", userID, "error", err)
		return false, fmt.Errorf("set vocabulary status: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func scanVocabulary(row pgx.Row) (*vocabulary.Vocabulary, error) {
	var v vocabulary.Vocabulary
	err := row.Scan(&v.ID, &v.UserID, &v.SourceText, &v.TargetText,
		&v.SourceLanguage, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanVocabularies(rows pgx.Rows) ([]vocabulary.Vocabulary, error) {
	var list []vocabulary.Vocabulary
	for rows.Next() {
		v, err := scanVocabulary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vocabulary: %w", err)
		}
		list = append(list, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vocabularies: %w", err)
	}
	return list, nil
}
