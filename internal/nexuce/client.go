// Package nexuce talks to the Roamability "Nexuce" portal API, the upstream
// eSIM management provider behind every dashboard route.
package nexuce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/MoniqueRon/esim-dashboard/internal/config"
)

// Client issues authenticated calls against the provider portal.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a provider client from config.
func NewClient(cfg config.NexuceConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
			// Don't follow redirects, hand them back as failures.
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}
}

type authRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type authResponse struct {
	JWT string `json:"jwt"`
}

// Authenticate exchanges provider credentials for a bearer token via
// POST /auth. Any non-200 status is an authentication failure.
func (c *Client) Authenticate(ctx context.Context, userName, password string) (string, error) {
	payload, err := json.Marshal(authRequest{UserName: userName, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider auth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("provider auth rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", fmt.Errorf("provider auth returned status %d", resp.StatusCode)
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", fmt.Errorf("decode provider auth response: %w", err)
	}
	return auth.JWT, nil
}

// Do issues one bearer-authenticated call and returns the raw JSON body when
// the status is in okStatuses. Every other outcome, transport fault included,
// comes back as an error; the caller decides what to substitute. No retries.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, token string, okStatuses ...int) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("provider call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if !statusAccepted(resp.StatusCode, okStatuses) {
		return nil, fmt.Errorf("provider returned status %d for %s %s", resp.StatusCode, method, path)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}
	return json.RawMessage(data), nil
}

func statusAccepted(status int, okStatuses []int) bool {
	for _, ok := range okStatuses {
		if status == ok {
			return true
		}
	}
	return false
}
