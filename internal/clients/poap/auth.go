package poap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"poap-drops/internal/config"
	"poap-drops/internal/observability"
)

// tokenExpiryMargin refreshes tokens slightly before the issuer expires them
const tokenExpiryMargin = time.Minute

var ErrTokenRequestFailed = errors.New("poap token request failed")

// Token is a POAP API bearer token
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Valid reports whether the token can still be used at now
func (t Token) Valid(now time.Time) bool {
	return t.AccessToken != "" && now.Add(tokenExpiryMargin).Before(t.ExpiresAt)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// AuthManager owns the shared POAP API token and signs outgoing requests
type AuthManager struct {
	apiKey       string
	authURL      string
	clientID     string
	clientSecret string
	audience     string
	cache        TokenCache
	httpClient   *http.Client
	logger       *observability.Logger
	now          func() time.Time

	mu sync.Mutex
}

// NewAuthManager creates an auth manager. A nil cache keeps the token in process memory.
func NewAuthManager(cfg config.POAPConfig, cache TokenCache, logger *observability.Logger) *AuthManager {
	if cache == nil {
		cache = NewMemoryTokenCache()
	}
	return &AuthManager{
		apiKey:       cfg.APIKey,
		authURL:      strings.TrimRight(cfg.AuthURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		audience:     cfg.Audience,
		cache:        cache,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// GetValidToken returns a cached token or fetches a new one. forceRefresh skips the cache.
func (a *AuthManager) GetValidToken(ctx context.Context, forceRefresh bool) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !forceRefresh {
		token, ok, err := a.cache.Get(ctx)
		if err != nil {
			a.logger.WarnWithError(ctx, "failed to read cached poap token", err)
		}
		if ok && token.Valid(a.now()) {
			return token.AccessToken, nil
		}
	}

	token, err := a.requestToken(ctx)
	if err != nil {
		return "", err
	}

	if err := a.cache.Set(ctx, token); err != nil {
		a.logger.WarnWithError(ctx, "failed to cache poap token", err)
	}
	return token.AccessToken, nil
}

func (a *AuthManager) requestToken(ctx context.Context) (Token, error) {
	payload, err := json.Marshal(map[string]string{
		"audience":      a.audience,
		"grant_type":    "client_credentials",
		"client_id":     a.clientID,
		"client_secret": a.clientSecret,
	})
	if err != nil {
		return Token{}, fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.authURL+"/oauth/token", bytes.NewReader(payload))
	if err != nil {
		return Token{}, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Error(ctx, "failed to call poap auth", err)
		return Token{}, fmt.Errorf("failed to call poap auth: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Token{}, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: status %d: %s", ErrTokenRequestFailed, resp.StatusCode, string(body))
		a.logger.Error(ctx, "poap auth rejected token request", err)
		return Token{}, err
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return Token{}, fmt.Errorf("failed to parse token response: %w", err)
	}
	if tr.AccessToken == "" {
		return Token{}, fmt.Errorf("%w: empty access token", ErrTokenRequestFailed)
	}

	a.logger.Info(ctx, "refreshed poap access token")
	return Token{
		AccessToken: tr.AccessToken,
		ExpiresAt:   a.now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}

// Do sends an authenticated request to the POAP API. A 401 or 403 response
// forces a token refresh and the request is retried exactly once.
func (a *AuthManager) Do(ctx context.Context, method, url string, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	resp, err := a.send(ctx, method, url, payload, false)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		a.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "status_code", Value: resp.StatusCode},
		), "poap api rejected token, retrying with a fresh one")
		return a.send(ctx, method, url, payload, true)
	}

	return resp, nil
}

func (a *AuthManager) send(ctx context.Context, method, url string, payload []byte, forceRefresh bool) (*http.Response, error) {
	token, err := a.GetValidToken(ctx, forceRefresh)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", a.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Error(ctx, "failed to call poap api", err)
		return nil, fmt.Errorf("failed to call poap api: %w", err)
	}
	return resp, nil
}
