// Package smogon fetches the curated per-generation set collections.
package smogon

import (
	"context"
	"fmt"

	"github.com/agentstation/setmap/internal/transport"
	"github.com/agentstation/setmap/pkg/sets"
)

// DefaultBaseURL hosts the curated set collections, one document per
// generation.
const DefaultBaseURL = "https://data.pkmn.cc/sets"

// Client fetches curated set documents.
type Client struct {
	baseURL   string
	transport *transport.Client
}

// New creates a curated-sets client. An empty baseURL selects the default
// host; a nil transport gets a default client.
func New(baseURL string, tc *transport.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if tc == nil {
		tc = transport.New()
	}
	return &Client{baseURL: baseURL, transport: tc}
}

// Sets fetches the curated collection for one generation. An absent
// document surfaces as errors.ErrNotFound; the caller treats that as an
// empty collection. Any other failure is fatal to the generation.
func (c *Client) Sets(ctx context.Context, gen int) (sets.SmogonSets, error) {
	url := fmt.Sprintf("%s/gen%d.json", c.baseURL, gen)
	var collection sets.SmogonSets
	if err := c.transport.GetJSON(ctx, "sets", url, &collection); err != nil {
		return nil, err
	}
	return collection, nil
}
