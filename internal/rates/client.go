// Package rates fetches currency exchange rates and converts amounts.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://open.er-api.com/v6/latest"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrRateLimited indicates the rate API throttled the request.
var ErrRateLimited = errors.New("rates: rate limited")

// Client fetches exchange rates from the public rate API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a rate client. An empty baseURL uses the default API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Fetch returns conversion factors from the base currency to every
// currency the API knows. On failure the caller keeps its prior table.
func (c *Client) Fetch(ctx context.Context, base string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+base, nil)
	if err != nil {
		return nil, fmt.Errorf("rates: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "github.com/theirongolddev/subtrack/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rates: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("rates: reading response: %w", err)
	}

	var parsed ratesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("rates: parsing response: %w", err)
	}
	if len(parsed.Rates) == 0 {
		return nil, errors.New("rates: response contained no rates")
	}
	return parsed.Rates, nil
}
