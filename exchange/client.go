// Package exchange looks up currency conversion rates from a
// frankfurter-style rates API.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jonzarecki/fast-flights-mcp/log"
)

// Client fetches exchange rates. It satisfies flights.RateSource.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	CacheTTL   time.Duration

	cache *rateCache
}

// NewClient creates a new exchange-rate client
func NewClient(baseURL string, timeout, cacheTTL time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		CacheTTL:   cacheTTL,
		cache:      newRateCache(),
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Rate returns the conversion rate from one currency code to another.
// Identical codes yield 1 without a network call. Rates are cached for
// CacheTTL per (from, to) pair.
func (c *Client) Rate(ctx context.Context, from, to string) (float64, error) {
	if from == to {
		return 1, nil
	}

	key := from + ":" + to
	if rate, ok := c.cache.get(key); ok {
		return rate, nil
	}

	endpoint := fmt.Sprintf("%s/latest?from=%s&to=%s", c.BaseURL, url.QueryEscape(from), url.QueryEscape(to))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate lookup failed: %s", resp.Status)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode exchange rate response: %w", err)
	}

	rate, ok := body.Rates[to]
	if !ok {
		return 0, fmt.Errorf("no rate for %s in response", to)
	}

	log.Debugf(ctx, "Fetched exchange rate %s->%s: %f", from, to, rate)
	c.cache.set(key, rate, c.CacheTTL)
	return rate, nil
}
