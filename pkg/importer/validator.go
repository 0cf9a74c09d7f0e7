package importer

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/legality"
	"github.com/agentstation/setmap/pkg/sets"
)

// crownedMoves maps the crowned formes to their signature moves. The
// teambuilder knows the moves under these names while curated data carries
// the base "Iron Head", so an accepted set gets its slot rewritten.
var crownedMoves = map[string]string{
	"Zacian-Crowned":    "Behemoth Blade",
	"Zamazenta-Crowned": "Behemoth Bash",
}

// crownedPlaceholder is the move the signature moves replace.
const crownedPlaceholder = "Iron Head"

// ubersBanOverride is the one format where an exact "<name> is banned."
// violation is accepted anyway: the gen 4 Ubers analyses predate the ban
// and the entry is kept for its historical value.
const ubersBanOverride = "gen4ubers"

// Validator adapts the legality engine to the pipeline: it memoizes one
// engine per format, keeps the engine's species rename while discarding its
// ability rewrite, and runs a bounded auto-correction loop over the known
// fixable violations.
type Validator struct {
	factory legality.Factory
	engines map[string]legality.Engine
	log     *zerolog.Logger
}

// NewValidator creates a Validator. The engine cache lives as long as the
// Validator; one per batch run.
func NewValidator(factory legality.Factory, log *zerolog.Logger) *Validator {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Validator{
		factory: factory,
		engines: make(map[string]legality.Engine),
		log:     log,
	}
}

// engine returns the memoized engine for a format, constructing it on
// first use.
func (v *Validator) engine(format *dex.Format) (legality.Engine, error) {
	if e, ok := v.engines[format.ID]; ok {
		return e, nil
	}
	e, err := v.factory(format)
	if err != nil {
		return nil, err
	}
	v.engines[format.ID] = e
	return e, nil
}

// Validate checks the set against the format's ruleset, auto-correcting
// the known fixable violations. It mutates the set in place (species
// rename, crowned move rewrite, shiny and HP EV corrections) and reports
// whether the set was accepted. Rejection is a normal pipeline outcome:
// the details are logged here and the caller simply skips the set.
func (v *Validator) Validate(format *dex.Format, set *sets.PokemonSet, source string) bool {
	engine, err := v.engine(format)
	if err != nil {
		v.log.Error().
			Err(err).
			Str("format", format.Name).
			Str("species", set.Species).
			Msg("Failed to construct legality engine")
		return false
	}

	before := set.Species
	corrected, problems := engine.Validate(set)

	// Keep the rename, drop the ability rewrite: mega sets stay indexed
	// under their in-battle forme but keep the ability the source chose.
	set.Species = corrected.Species

	if signature, ok := crownedMoves[before]; ok {
		for i, move := range set.Moves {
			if move == crownedPlaceholder {
				set.Moves[i] = signature
				break
			}
		}
	}

	if len(problems) == 1 {
		switch {
		case strings.Contains(problems[0], "must be shiny"):
			set.Shiny = true
			_, problems = engine.Validate(set)
		case strings.Contains(problems[0], "has exactly 0 EVs"):
			set.EVs[sets.HP] = 1
			_, problems = engine.Validate(set)
		}
	}

	if len(problems) == 0 {
		return true
	}

	if format.ID == ubersBanOverride &&
		len(problems) == 1 && problems[0] == set.Species+" is banned." {
		return true
	}

	v.log.Warn().
		Str("format", format.Name).
		Str("species", set.Species).
		Str("set", set.String()).
		Str("problems", strings.Join(problems, "; ")).
		Str("source", source).
		Msg("Rejected illegal set")
	return false
}
