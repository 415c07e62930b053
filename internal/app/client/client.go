package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"vokabular/internal/app/client/config"
	vocabularyAPI "vokabular/internal/app/server/api/http/vocabulary"
	"vokabular/internal/domain/translation"
	"vokabular/internal/domain/vocabulary"
)

// App is the command-line client. Practice sessions prefer the server
// and fall back to the local cache when it is unreachable.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	cache      *Cache
	token      string
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init http client: %w", err)
	}

	cache, err := NewCache(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init local cache: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		cache:      cache,
	}

	if token, err := os.ReadFile(cfg.TokenPath); err == nil {
		app.token = strings.TrimSpace(string(token))
		app.httpClient.SetToken(app.token)
	}

	return app, nil
}

func (a *App) Close() error {
	return a.cache.Close()
}

// IsAuthenticated reports whether a saved token is loaded. It does not
// check the token against the server.
func (a *App) IsAuthenticated() bool {
	return a.token != ""
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) Register(ctx context.Context, email, password string) error {
	return a.httpClient.Register(ctx, email, password)
}

func (a *App) Login(ctx context.Context, email, password string) error {
	token, err := a.httpClient.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.token = token
	a.httpClient.SetToken(token)

	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (a *App) Logout() error {
	a.token = ""
	a.httpClient.SetToken("")
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

func (a *App) Translate(ctx context.Context, text, sourceLang string) (*translation.Result, error) {
	return a.httpClient.Translate(ctx, text, sourceLang)
}

func (a *App) AddCard(ctx context.Context, sourceText, targetText, sourceLanguage string) (*vocabularyAPI.CreateResponse, error) {
	return a.httpClient.CreateVocabulary(ctx, vocabularyAPI.CreateRequest{
		SourceText:     sourceText,
		TargetText:     targetText,
		SourceLanguage: sourceLanguage,
	})
}

func (a *App) ListCards(ctx context.Context) (*vocabulary.ListResponse, error) {
	return a.httpClient.ListVocabularies(ctx)
}

func (a *App) Overview(ctx context.Context) (*vocabulary.OverviewResponse, error) {
	return a.httpClient.Overview(ctx)
}

// StartSession fetches a practice session. On success the cards are
// cached for offline use; when the server is unreachable the cached
// cards of the language are served instead.
func (a *App) StartSession(ctx context.Context, language string) ([]vocabulary.Vocabulary, bool, error) {
	session, err := a.httpClient.StartSession(ctx, language)
	if err != nil {
		a.log.Warn("server unreachable, falling back to cache", "error", err)
		cards, cacheErr := a.cache.Due(language, vocabulary.SessionLimit)
		if cacheErr != nil {
			return nil, false, fmt.Errorf("session unavailable: %w", err)
		}
		return cards, true, nil
	}

	if !session.Empty {
		if err := a.cache.ReplaceLanguage(language, session.Vocabularies); err != nil {
			a.log.Warn("failed to refresh local cache", "error", err)
		}
	}
	return session.Vocabularies, false, nil
}

// Advance reports a practice answer. Offline answers apply the same
// status transition locally so the cache keeps making progress.
func (a *App) Advance(ctx context.Context, card vocabulary.Vocabulary, correct bool, offline bool) (vocabulary.Status, error) {
	if offline {
		next := vocabulary.Advance(card.Status, correct)
		if err := a.cache.SetStatus(card.ID, next); err != nil {
			return "", err
		}
		return next, nil
	}

	resp, err := a.httpClient.Advance(ctx, card.ID, correct)
	if err != nil {
		return "", err
	}

	next := vocabulary.Status(resp.Status)
	if err := a.cache.SetStatus(card.ID, next); err != nil {
		a.log.Warn("failed to update cached status", "error", err)
	}
	return next, nil
}
