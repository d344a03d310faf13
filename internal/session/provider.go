package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ProviderConfig for the identity provider client.
type ProviderConfig struct {
	BaseURL string // e.g. https://xyz.supabase.co
	APIKey  string
	Timeout time.Duration
}

// ProviderClient implements Checker against the identity provider's user-info
// endpoint.
type ProviderClient struct {
	cfg    ProviderConfig
	http   *http.Client
	logger *slog.Logger
}

func NewProviderClient(cfg ProviderConfig, logger *slog.Logger) *ProviderClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProviderClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Check asks the provider who the token belongs to. A 401/403 means no valid
// session; any other non-2xx is a transport-level failure.
func (c *ProviderClient) Check(ctx context.Context, token string) (*Session, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/auth/v1/user"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, nil
	case resp.StatusCode/100 != 2:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("identity provider status %d: %s", resp.StatusCode, raw)
	}

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &Session{UserID: user.ID, Email: user.Email}, nil
}
