package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slog"
)

const (
	// SessionLimit caps one practice session.
	SessionLimit = 20

	maxTextLen     = 1000
	advanceRetries = 3
)

type Servicer interface {
	Create(ctx context.Context, userID int, sourceText, targetText, sourceLanguage string) (int, error)
	List(ctx context.Context, userID int) (ListResponse, error)
	Update(ctx context.Context, userID, id int, sourceText, targetText string, status Status) error
	Delete(ctx context.Context, userID, id int) error
	Overview(ctx context.Context, userID int) (OverviewResponse, error)
	StartSession(ctx context.Context, userID int, language string) ([]Vocabulary, error)
	AdvanceCard(ctx context.Context, userID, id int, correct bool) (Status, error)
}

// Service implements the flashcard business logic on top of a
// Repository.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "vocabulary_service"),
	}
}

// Create saves a new flashcard. Texts are trimmed, the language code is
// lower-cased. Saving the same (source text, source language) pair
// twice for one user returns ErrDuplicate and leaves the store
// unchanged.
func (s *Service) Create(ctx context.Context, userID int, sourceText, targetText, sourceLanguage string) (int, error) {
	v := &Vocabulary{
		UserID:         userID,
		SourceText:     strings.TrimSpace(sourceText),
		TargetText:     strings.TrimSpace(targetText),
		SourceLanguage: strings.ToLower(strings.TrimSpace(sourceLanguage)),
		Status:         StatusOpen,
	}

	if err := validateCard(v.SourceText, v.TargetText, v.SourceLanguage); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, v)
	if err != nil {
		if !errors.Is(err, ErrDuplicate) {
			s.log.Error("failed to create vocabulary", "user_id", userID, "error", err)
		}
		return 0, err
	}
	return id, nil
}

// List returns the user's cards in supported languages, grouped by
// language. Within a group open cards come first, then learning, then
// learned; ties are broken by most recent update.
func (s *Service) List(ctx context.Context, userID int) (ListResponse, error) {
	cards, err := s.repo.ListByUser(ctx, userID, SupportedLanguages)
	if err != nil {
		s.log.Error("failed to list vocabularies", "user_id", userID, "error", err)
		return ListResponse{}, fmt.Errorf("list vocabularies: %w", err)
	}

	byLang := make(map[string][]Vocabulary)
	for _, c := range cards {
		byLang[c.SourceLanguage] = append(byLang[c.SourceLanguage], c)
	}

	resp := ListResponse{Languages: []LanguageGroup{}}
	for _, lang := range SupportedLanguages {
		group, ok := byLang[lang]
		if !ok {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			pi, pj := group[i].Status.Priority(), group[j].Status.Priority()
			if pi != pj {
				return pi < pj
			}
			return group[i].UpdatedAt.After(group[j].UpdatedAt)
		})
		resp.Languages = append(resp.Languages, LanguageGroup{
			Language:     lang,
			LanguageName: LanguageNames[lang],
			Vocabularies: group,
		})
	}
	return resp, nil
}

// Update rewrites the card's texts and status. The card must belong to
// the user.
func (s *Service) Update(ctx context.Context, userID, id int, sourceText, targetText string, status Status) error {
	sourceText = strings.TrimSpace(sourceText)
	targetText = strings.TrimSpace(targetText)

	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	current, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := validateCard(sourceText, targetText, current.SourceLanguage); err != nil {
		return err
	}

	current.SourceText = sourceText
	current.TargetText = targetText
	current.Status = status

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update vocabulary", "vocabulary_id", id, "user_id", userID, "error", err)
		return fmt.Errorf("update vocabulary: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id int) error {
	return s.repo.Delete(ctx, userID, id)
}

// Overview reports per-language learning progress, skipping languages
// without any cards.
func (s *Service) Overview(ctx context.Context, userID int) (OverviewResponse, error) {
	resp := OverviewResponse{Languages: []OverviewEntry{}}
	for _, lang := range SupportedLanguages {
		counts, err := s.repo.CountByStatus(ctx, userID, lang)
		if err != nil {
			s.log.Error("failed to count vocabularies", "user_id", userID, "language", lang, "error", err)
			return OverviewResponse{}, fmt.Errorf("learn overview: %w", err)
		}
		if counts.Total == 0 {
			continue
		}
		resp.Languages = append(resp.Languages, OverviewEntry{
			Language:     lang,
			LanguageName: LanguageNames[lang],
			Counts:       counts,
		})
	}
	return resp, nil
}

// StartSession picks up to SessionLimit due cards (open or learning) of
// one language in random order. The shuffle happens here rather than in
// SQL so selection stays portable and testable. An empty queue is
// ErrNothingToLearn, not an error condition.
func (s *Service) StartSession(ctx context.Context, userID int, language string) ([]Vocabulary, error) {
	if !LanguageSupported(language) {
		return nil, ErrUnsupportedLanguage
	}

	cards, err := s.repo.ListDue(ctx, userID, language)
	if err != nil {
		s.log.Error("failed to load due vocabularies", "user_id", userID, "language", language, "error", err)
		return nil, fmt.Errorf("start session: %w", err)
	}
	if len(cards) == 0 {
		return nil, ErrNothingToLearn
	}

	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	if len(cards) > SessionLimit {
		cards = cards[:SessionLimit]
	}
	return cards, nil
}

// AdvanceCard applies one practice answer to the card and returns the
// new status. The transition is a compare-and-set on the stored status,
// so overlapping answers for the same card cannot produce a lost
// update; on contention the card is re-read and the transition
// recomputed.
func (s *Service) AdvanceCard(ctx context.Context, userID, id int, correct bool) (Status, error) {
	for attempt := 0; attempt < advanceRetries; attempt++ {
		card, err := s.repo.Get(ctx, userID, id)
		if err != nil {
			return "", err
		}

		next := Advance(card.Status, correct)
		if next == card.Status {
			return next, nil
		}

		ok, err := s.repo.SetStatusIf(ctx, userID, id, card.Status, next)
		if err != nil {
			s.log.Error("failed to advance vocabulary", "vocabulary_id", id, "user_id", userID, "error", err)
			return "", fmt.Errorf("advance vocabulary: %w", err)
		}
		if ok {
			return next, nil
		}
		s.log.Debug("status advance lost the race, retrying", "vocabulary_id", id, "attempt", attempt+1)
	}
	return "", fmt.Errorf("advance vocabulary %d: status kept changing concurrently", id)
}

func validateCard(sourceText, targetText, sourceLanguage string) error {
	if sourceText == "" {
		return fmt.Errorf("%w: source text is required", ErrInvalidInput)
	}
	if targetText == "" {
		return fmt.Errorf("%w: target text is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(sourceText) > maxTextLen {
		return fmt.Errorf("%w: source text exceeds %d characters", ErrInvalidInput, maxTextLen)
	}
	if utf8.RuneCountInString(targetText) > maxTextLen {
		return fmt.Errorf("%w: target text exceeds %d characters", ErrInvalidInput, maxTextLen)
	}
	if !validLanguageCode(sourceLanguage) {
		return fmt.Errorf("%w: source language must be a 2-letter code", ErrInvalidInput)
	}
	return nil
}

func validLanguageCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLower(r) || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
