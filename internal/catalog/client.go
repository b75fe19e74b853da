// Package catalog fetches and parses course data from the university
// catalog website.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"courseaudit/internal/config"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Client fetches catalog pages with config-driven retry logic.
type Client struct {
	client *http.Client
	retry  *config.RetryPolicy
}

// NewClient creates a catalog client with the given retry policy.
func NewClient(retry *config.RetryPolicy) *Client {
	return &Client{
		client: &http.Client{
			Timeout: retry.GetTimeout(),
		},
		retry: retry,
	}
}

// Fetch returns the body of the given URL, retrying transient failures with
// exponential backoff.
func (c *Client) Fetch(url string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if delay := c.retry.GetRetryDelay(attempt); delay > 0 {
			time.Sleep(delay)
		}

		req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}

		// Set user agent to avoid being blocked
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, c.retry.MaxAttempts, err)

			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)

			if !isRetryableStatus(resp.StatusCode) {
				return "", lastErr
			}

			continue
		}

		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", readErr)

			continue
		}

		return string(body), nil
	}

	return "", lastErr
}

// isRetryableStatus determines if we should retry based on HTTP status code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable: // 503
		return true
	case http.StatusGatewayTimeout: // 504
		return true
	case http.StatusTooManyRequests: // 429
		return true
	case http.StatusRequestTimeout: // 408
		return true
	}

	return false
}
