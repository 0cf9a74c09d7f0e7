// Package transport provides the HTTP client the source packages share:
// JSON GET with context support, a not-found signal for absent documents,
// and typed errors for everything else.
package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/setmap/pkg/constants"
	"github.com/agentstation/setmap/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client performs JSON GET requests against the data hosts.
type Client struct {
	http *http.Client
}

// New creates a transport client with the default timeout.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient creates a transport client around an existing
// http.Client, used by tests and by callers that tune timeouts.
func NewWithHTTPClient(hc *http.Client) *Client {
	if hc == nil {
		return New()
	}
	return &Client{http: hc}
}

// GetJSON fetches url and decodes the response body into target.
// A 404 response maps to errors.ErrNotFound (via FetchError); other
// non-200 statuses and network failures surface as FetchError, and a
// malformed body as ParseError.
func (c *Client) GetJSON(ctx context.Context, source, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WrapResource("create", "request", "GET "+url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &errors.FetchError{
			Source:  source,
			URL:     url,
			Message: err.Error(),
			Err:     err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.NewFetchError(source, url, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", url, err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", url, err)
	}
	return nil
}
