package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"vokabular/internal/app/client/config"
	translateAPI "vokabular/internal/app/server/api/http/translate"
	userAPI "vokabular/internal/app/server/api/http/user"
	vocabularyAPI "vokabular/internal/app/server/api/http/vocabulary"
	"vokabular/internal/domain/translation"
	"vokabular/internal/domain/vocabulary"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Vokabular-Client/1.0",
	}, nil
}

// SetToken sets the bearer token used on authenticated requests.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck probes server availability.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}

func (h *httpClient) Register(ctx context.Context, email, password string) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/register", userAPI.CredentialsRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/login", userAPI.CredentialsRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var loginResp userAPI.LoginResponse
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}
	return loginResp.Token, nil
}

func (h *httpClient) Translate(ctx context.Context, text, sourceLang string) (*translation.Result, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/translate", translateAPI.TranslateRequest{
		Text:       text,
		SourceLang: sourceLang,
	})
	if err != nil {
		return nil, err
	}

	var result translation.Result
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (h *httpClient) CreateVocabulary(ctx context.Context, req vocabularyAPI.CreateRequest) (*vocabularyAPI.CreateResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/vocabularies", req)
	if err != nil {
		return nil, err
	}

	var createResp vocabularyAPI.CreateResponse
	if err := h.parseResponse(resp, &createResp); err != nil {
		return nil, err
	}
	return &createResp, nil
}

func (h *httpClient) ListVocabularies(ctx context.Context) (*vocabulary.ListResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/vocabularies", nil)
	if err != nil {
		return nil, err
	}

	var list vocabulary.ListResponse
	if err := h.parseResponse(resp, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (h *httpClient) Overview(ctx context.Context) (*vocabulary.OverviewResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/vocabularies/learn", nil)
	if err != nil {
		return nil, err
	}

	var overview vocabulary.OverviewResponse
	if err := h.parseResponse(resp, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (h *httpClient) StartSession(ctx context.Context, language string) (*vocabularyAPI.SessionResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/vocabularies/learn/"+language, nil)
	if err != nil {
		return nil, err
	}

	var session vocabularyAPI.SessionResponse
	if err := h.parseResponse(resp, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (h *httpClient) Advance(ctx context.Context, id int, correct bool) (*vocabularyAPI.AdvanceResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodPatch, "/vocabularies/update_learning_status", vocabularyAPI.AdvanceRequest{
		ID:      id,
		Correct: correct,
	})
	if err != nil {
		return nil, err
	}

	var advanceResp vocabularyAPI.AdvanceResponse
	if err := h.parseResponse(resp, &advanceResp); err != nil {
		return nil, err
	}
	return &advanceResp, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	h.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		// huma error bodies carry the message in "detail".
		var errResp struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Detail != "" {
				return fmt.Errorf("server error: %s", errResp.Detail)
			}
			if errResp.Error != "" {
				return fmt.Errorf("server error: %s", errResp.Error)
			}
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}
