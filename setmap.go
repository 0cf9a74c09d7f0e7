// Package setmap imports curated Smogon analysis sets and Showdown usage
// statistics into the per-generation SETDEX_* JavaScript data files consumed
// by the damage calculator.
//
// The root package is a thin batch-driver facade over pkg/importer: it wires
// the embedded dex, the source clients, and the legality engine together,
// runs the pipeline for each requested generation, and writes one artifact
// file per generation.
//
// Example usage:
//
//	sm, err := setmap.New(
//	    setmap.WithGenerations(8, 9),
//	    setmap.WithTimeout(2*time.Minute),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := sm.Import(ctx, "./output")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d sets across %d generations in %s\n",
//	    result.Sets(), len(result.Generations), result.Duration())
package setmap

import (
	"net/http"

	embedded "github.com/agentstation/setmap/internal/dex"
	"github.com/agentstation/setmap/internal/legality"
	"github.com/agentstation/setmap/internal/sources/smogon"
	"github.com/agentstation/setmap/internal/sources/usage"
	"github.com/agentstation/setmap/internal/transport"
	dexpkg "github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/errors"
	"github.com/agentstation/setmap/pkg/importer"
)

// Compile-time interface check to ensure proper implementation.
var _ Setmap = (*client)(nil)

// Setmap runs the set import pipeline and writes calculator data files.
type Setmap interface {

	// Importer runs the batch import
	Importer

	// Dex exposes the reference database the pipeline validates against
	Dex
}

// Dex provides access to the reference database backing the pipeline.
type Dex interface {
	Dex() dexpkg.Dex
}

// client is the internal implementation of the Setmap interface.
type client struct {

	// options are the configured options for the client
	options *options

	// dex is the embedded reference database
	dex dexpkg.Dex

	// importer drives the per-generation pipeline
	importer *importer.Importer
}

// New creates a new Setmap instance with the given options.
func New(opts ...Option) (Setmap, error) {
	sm := &client{
		options: defaults().apply(opts...),
	}

	d, err := embedded.New()
	if err != nil {
		return nil, errors.WrapResource("load", "dex", "embedded", err)
	}
	sm.dex = d

	tc := transport.NewWithHTTPClient(&http.Client{Timeout: sm.options.httpTimeout})
	validator := importer.NewValidator(legality.NewFactory(d), sm.options.logger)
	sm.importer = importer.New(
		d,
		smogon.New(sm.options.setsURL, tc),
		usage.New(sm.options.statsURL, tc),
		validator,
	)

	return sm, nil
}

// Dex returns the reference database the pipeline validates against.
func (c *client) Dex() dexpkg.Dex {
	return c.dex
}
