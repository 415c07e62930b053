package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/exp/slog"
)

const (
	// DefaultAPIURL is the DeepL free-tier translate endpoint.
	DefaultAPIURL = "https://api-free.deepl.com/v2/translate"
	// DefaultTargetLanguage is German; the trainer translates into the
	// user's native language.
	DefaultTargetLanguage = "de"
)

// Result is the normalized outcome of one translation call.
type Result struct {
	TranslatedText   string `json:"translated_text"`
	DetectedLanguage string `json:"detected_language"`
	SourceLanguage   string `json:"source_language"`
}

type Servicer interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (Result, error)
}

// Service is a thin gateway to the DeepL API: one best-effort call per
// invocation, no retries, no caching. Cancellation comes from ctx.
type Service struct {
	apiKey string
	apiURL string
	client *http.Client
	log    *slog.Logger
}

func NewService(apiKey, apiURL string, log *slog.Logger) *Service {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Service{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{},
		log:    log.With("component", "translation_service"),
	}
}

type deeplResponse struct {
	Translations []struct {
		Text                   string `json:"text"`
		DetectedSourceLanguage string `json:"detected_source_language"`
	} `json:"translations"`
}

// Translate sends text to the provider. sourceLang may be empty for
// automatic detection; the returned SourceLanguage is the caller's
// language when given, otherwise the provider's detection, lower-cased.
func (s *Service) Translate(ctx context.Context, text, sourceLang, targetLang string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyText
	}
	if s.apiKey == "" {
		s.log.Error("translation requested but no API key is configured")
		return Result{}, ErrNotConfigured
	}
	if targetLang == "" {
		targetLang = DefaultTargetLanguage
	}

	form := url.Values{}
	form.Set("auth_key", s.apiKey)
	form.Set("text", text)
	form.Set("target_lang", strings.ToUpper(targetLang))
	if sourceLang != "" {
		form.Set("source_lang", strings.ToUpper(sourceLang))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("translation request failed", "error", err)
		return Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.log.Error("failed to read translation response", "error", err)
		return Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Raw status and body stay in the log only.
		s.log.Error("translation provider returned non-success status",
			"status", resp.StatusCode, "body", string(body))
		return Result{}, ErrUpstream
	}

	var parsed deeplResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Translations) == 0 {
		s.log.Error("unexpected translation response shape", "error", err, "body", string(body))
		return Result{}, ErrUpstream
	}

	tr := parsed.Translations[0]
	sourceLanguage := strings.ToLower(sourceLang)
	if sourceLanguage == "" {
		sourceLanguage = strings.ToLower(tr.DetectedSourceLanguage)
	}

	return Result{
		TranslatedText:   tr.Text,
		DetectedLanguage: tr.DetectedSourceLanguage,
		SourceLanguage:   sourceLanguage,
	}, nil
}
