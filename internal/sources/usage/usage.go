// Package usage fetches per-format Showdown usage-statistics pages.
package usage

import (
	"context"
	"fmt"

	"github.com/agentstation/setmap/internal/transport"
	"github.com/agentstation/setmap/pkg/sets"
)

// DefaultBaseURL hosts the aggregated usage statistics, one document per
// format.
const DefaultBaseURL = "https://data.pkmn.cc/stats"

// Client fetches usage-statistics documents.
type Client struct {
	baseURL   string
	transport *transport.Client
}

// New creates a usage-statistics client. An empty baseURL selects the
// default host; a nil transport gets a default client.
func New(baseURL string, tc *transport.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if tc == nil {
		tc = transport.New()
	}
	return &Client{baseURL: baseURL, transport: tc}
}

// Statistics fetches one format's usage page. Statistics are optional
// enrichment: callers treat both errors.ErrNotFound and transport failures
// as "no statistics for this format" and continue.
func (c *Client) Statistics(ctx context.Context, formatID string) (*sets.UsageStatistics, error) {
	url := fmt.Sprintf("%s/%s.json", c.baseURL, formatID)
	var stats sets.UsageStatistics
	if err := c.transport.GetJSON(ctx, "stats", url, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
