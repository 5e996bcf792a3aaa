package initializr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultURL is the public Spring Initializr metadata service.
	DefaultURL = "https://start.spring.io"

	// acceptHeader selects the v2.2 metadata representation.
	acceptHeader = "application/vnd.initializr.v2.2+json"

	// DefaultTimeout bounds a single metadata fetch. Overridable
	// through configuration.
	DefaultTimeout = 30 * time.Second
)

// FetchError reports a failed network fetch, carrying the destination URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch metadata from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid metadata.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode metadata response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client fetches generator metadata over HTTP.
//
// Parameters:
//   - url: Metadata service base URL
//   - httpClient: Underlying HTTP client with timeout
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - One GET per fetch, body decoded in a single pass
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a metadata client for the given service URL.
//
// Parameters:
//   - url: Metadata service base URL
//   - timeout: Per-fetch timeout, DefaultTimeout when zero
//
// Returns:
//   - *Client: Metadata client instance
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Minimal initialization overhead
func NewClient(url string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// URL returns the metadata service URL.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs a blocking GET of the metadata document.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - *Metadata: Decoded metadata document
//   - error: *FetchError on network failure, *DecodeError on bad payload
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Single request, streamed decode
func (c *Client) Fetch(ctx context.Context) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)}
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &meta, nil
}
