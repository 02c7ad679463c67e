// Package newsletter is a minimal client for the agency's
// email-marketing provider (Mailchimp-compatible marketing API v3).
// It covers the one operation the site needs: adding a subscriber to
// the configured audience.
package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrMissingAPIKey indicates the provider API key was not configured
	ErrMissingAPIKey = errors.New("newsletter api key is required")

	// ErrMissingAudienceID indicates the audience (list) id was not configured
	ErrMissingAudienceID = errors.New("newsletter audience id is required")

	// ErrInvalidAPIKey indicates a key without a datacenter suffix
	ErrInvalidAPIKey = errors.New("newsletter api key has no datacenter suffix")
)

// APIError is a non-2xx response from the provider
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("newsletter provider returned %d: %s: %s", e.StatusCode, e.Title, e.Detail)
}

// Client talks to the email-marketing provider's REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	audienceID string
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the provider base URL. Used by tests to point
// at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// New creates a provider client. The datacenter is taken from the API
// key suffix (e.g. "xxxx-us21" talks to us21.api.mailchimp.com).
// Missing credentials are a construction error so the integration
// fails at startup rather than per request.
func New(apiKey, audienceID string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if audienceID == "" {
		return nil, ErrMissingAudienceID
	}

	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		audienceID: audienceID,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		idx := strings.LastIndex(apiKey, "-")
		if idx < 0 || idx == len(apiKey)-1 {
			return nil, ErrInvalidAPIKey
		}
		c.baseURL = fmt.Sprintf("https://%s.api.mailchimp.com/3.0", apiKey[idx+1:])
	}

	return c, nil
}

type memberRequest struct {
	EmailAddress string `json:"email_address"`
	Status       string `json:"status"`
}

type errorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// Subscribe adds email to the configured audience with status
// "subscribed". An address already on the list is reported by the
// provider as "Member Exists" and treated as success.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	payload, err := json.Marshal(memberRequest{
		EmailAddress: email,
		Status:       "subscribed",
	})
	if err != nil {
		return fmt.Errorf("failed to encode member request: %w", err)
	}

	url := fmt.Sprintf("%s/lists/%s/members", c.baseURL, c.audienceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build member request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("anystring", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("newsletter provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Title: "unknown", Detail: "unparseable provider error"}
	}

	if apiErr.Title == "Member Exists" {
		return nil
	}

	return &APIError{StatusCode: resp.StatusCode, Title: apiErr.Title, Detail: apiErr.Detail}
}
