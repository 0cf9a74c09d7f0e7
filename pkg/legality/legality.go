// Package legality defines the boundary to the legality engine. The engine
// is a pure function over a set: it never mutates its input, returning
// instead a possibly corrected copy alongside any rule violations. Identity
// corrections the games themselves perform (forme renames, forced mega
// abilities) surface through the corrected copy; the validator adapter
// decides which of them to keep.
package legality

import (
	"github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/sets"
)

// Engine validates sets against one format's ruleset.
type Engine interface {
	// Validate checks the set. It returns a corrected copy of the set
	// (identical to the input when no correction applies) and the list of
	// human-readable rule violations, empty or nil when the set is legal.
	Validate(set *sets.PokemonSet) (*sets.PokemonSet, []string)
}

// Factory constructs an engine for a format. Construction may be expensive
// (ruleset compilation); callers memoize per format id.
type Factory func(format *dex.Format) (Engine, error)
