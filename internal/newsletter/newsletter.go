// Package newsletter is a thin client for the newsletter provider's
// subscribe endpoint.
package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"
)

// ErrInvalidEmail marks a syntactically invalid subscriber address. Surfaced
// to callers as a 400.
var ErrInvalidEmail = errors.New("invalid email address")

// ErrNotConfigured is returned when no provider endpoint is configured.
var ErrNotConfigured = errors.New("newsletter provider not configured")

// Client talks to the newsletter provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a provider client. baseURL may be empty, in which case
// every Subscribe fails with ErrNotConfigured.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// ValidEmail reports whether addr is a plausible single email address.
func ValidEmail(addr string) bool {
	if addr == "" || strings.ContainsAny(addr, " \t\n") {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

// Subscribe registers an email address with the provider.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/subscribers", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build subscribe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("newsletter provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("newsletter provider returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
