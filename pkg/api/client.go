// Package api implements the client for the mon-voyage-pas-cher travel
// geography API.
//
// Every endpoint is a read-only HTTP GET against a fixed base host,
// authenticated with an x-api-key header and parameterized through the
// query string. Responses share a uniform envelope (status, message,
// count, data); a remote-reported error surfaces as *APIError, a
// transport failure as *RequestError, and a missing key as
// ErrAuthenticationRequired before any request is sent.
//
// The client holds no mutable state beyond its construction-time options
// and performs no retries, caching or pagination: one call, one GET.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the fixed production host.
const DefaultBaseURL = "https://api.mon-voyage-pas-cher.com"

const apiKeyHeader = "x-api-key"

// Client issues authenticated requests to the travel geography API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	key        string
	language   Language
}

// ClientConfig configures the client. Key is the only field without a
// usable zero value: requests fail with ErrAuthenticationRequired when
// it is empty.
type ClientConfig struct {
	// BaseURL overrides the production host, mainly for tests.
	BaseURL string
	// HTTPClient overrides the default 30s-timeout client.
	HTTPClient *http.Client
	// Key is the API key sent in the x-api-key header.
	Key string
	// Language is the stored default language, applied when a call does
	// not carry its own.
	Language Language
}

// NewClient creates a new API client.
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("client config is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		key:        config.Key,
		language:   config.Language,
	}, nil
}

// IsConfigured reports whether the client has an API key.
func (c *Client) IsConfigured() bool {
	return c.key != ""
}

// effectiveLanguage resolves the language precedence:
// explicit per-call value, then the stored default, then "en".
func (c *Client) effectiveLanguage(override Language) Language {
	if override != "" {
		return override
	}
	if c.language != "" {
		return c.language
	}
	return LanguageEN
}

// get performs the shared request routine: auth check, GET, envelope
// normalization.
func (c *Client) get(ctx context.Context, path string, p *params) (*Envelope, error) {
	if c.key == "" {
		return nil, ErrAuthenticationRequired
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.key)
	if p != nil {
		req.URL.RawQuery = p.encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode >= 400 {
			// Non-JSON error body: no remote message to pass through.
			return nil, &APIError{StatusCode: resp.StatusCode, Message: "API error"}
		}
		return nil, &RequestError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	env.Raw = body

	// A status:"error" body is authoritative regardless of HTTP status.
	if env.Status == StatusError || resp.StatusCode >= 400 {
		message := env.Message
		if message == "" {
			message = "API error"
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return &env, nil
}
