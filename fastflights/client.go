// Package fastflights is a client for the flight scrape endpoint. It
// submits segment queries and returns raw, untyped flight records; all
// parsing of the scraped text happens in the flights package.
package fastflights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonzarecki/fast-flights-mcp/log"
)

// TransientError marks a fetch failure that is worth retrying
// (network errors, timeouts, throttling, upstream 5xx).
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient fetch failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Client talks to the scrape endpoint
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

// NewClient creates a new scrape endpoint client
func NewClient(baseURL string, timeout time.Duration, rps float64, burst int) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch submits a search query and returns the raw result batch.
// Retryable conditions (network failures, 429, 5xx) come back as
// *TransientError; any other non-200 response is permanent.
func (c *Client) Fetch(ctx context.Context, req *FetchRequest) (*Result, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fetch request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Debugf(ctx, "Fetching flights: %d segment(s), trip=%s", len(req.FlightData), req.Trip)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &TransientError{Err: fmt.Errorf("scrape endpoint returned %s", resp.Status)}
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("scrape endpoint returned %s: %s", resp.Status, msg)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &TransientError{Err: fmt.Errorf("failed to decode scrape response: %w", err)}
	}

	return &result, nil
}
