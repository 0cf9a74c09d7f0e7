// Package legality ships the default legality engine: structural checks
// against the embedded dex plus the identity corrections the games perform
// (mega forme renames with their forced abilities). It is not a full battle
// ruleset; formats the dex does not model bypass it entirely.
package legality

import (
	"fmt"

	dexpkg "github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/errors"
	"github.com/agentstation/setmap/pkg/legality"
	"github.com/agentstation/setmap/pkg/sets"
)

// shinyEventMoves lists beast-trio event moves only distributed on shiny
// event Pokemon in generations 4 and 5.
var shinyEventMoves = map[string][]string{
	"Raikou":  {"Extreme Speed", "Aura Sphere", "Weather Ball"},
	"Entei":   {"Extreme Speed", "Flare Blitz", "Howl"},
	"Suicune": {"Extreme Speed", "Aqua Ring", "Sheer Cold"},
}

// NewFactory returns a legality.Factory that builds one structural engine
// per format from the given dex.
func NewFactory(d dexpkg.Dex) legality.Factory {
	return func(format *dexpkg.Format) (legality.Engine, error) {
		if format == nil {
			return nil, errors.New("legality: nil format")
		}
		return &engine{dex: d, format: format}, nil
	}
}

type engine struct {
	dex    dexpkg.Dex
	format *dexpkg.Format
}

// Validate implements legality.Engine. The returned set is a corrected
// copy; the input is never mutated.
func (e *engine) Validate(set *sets.PokemonSet) (*sets.PokemonSet, []string) {
	corrected := set.Clone()
	var problems []string
	gen := e.format.Generation

	species := e.dex.Species(set.Species)
	if species == nil {
		return corrected, []string{fmt.Sprintf("%s does not exist in generation %d.", set.Species, gen)}
	}

	if e.format.BansEntry(species.Name) {
		problems = append(problems, fmt.Sprintf("%s is banned.", species.Name))
	}

	// Mega evolution: holding the matching stone renames the set to the
	// mega forme and forces its ability. These are the corrections the
	// validator adapter selectively keeps.
	if item := e.dex.Item(set.Item); item.IsMegaStone() && item.MegaEvolves == species.Name {
		if mega := e.dex.Species(item.MegaStone); mega != nil {
			corrected.Species = mega.Name
			corrected.Ability = mega.FirstAbility()
			species = mega
		}
	}

	if set.Level < 1 || set.Level > 100 {
		problems = append(problems, fmt.Sprintf("%s's level %d is not between 1 and 100.", species.Name, set.Level))
	}

	if len(set.Moves) == 0 {
		problems = append(problems, fmt.Sprintf("%s has no moves.", species.Name))
	} else if len(set.Moves) > 4 {
		problems = append(problems, fmt.Sprintf("%s has more than four moves.", species.Name))
	}

	if gen >= 3 {
		if set.Nature != "" && !dexpkg.IsNature(set.Nature) {
			problems = append(problems, fmt.Sprintf("%s's nature %s does not exist.", species.Name, set.Nature))
		}
		if corrected.Ability != "" && !hasAbility(species, corrected.Ability) {
			problems = append(problems, fmt.Sprintf("%s can't have %s.", species.Name, corrected.Ability))
		}

		total := 0
		for _, stat := range sets.StatOrder {
			total += set.EVs[stat]
		}
		if total > 510 {
			problems = append(problems, fmt.Sprintf("%s has more than 510 EVs.", species.Name))
		}
		// The cartridge-era games refuse untrained transfers outright.
		if gen <= 5 && total == 0 {
			problems = append(problems, fmt.Sprintf("%s has exactly 0 EVs.", species.Name))
		}
	}

	if (gen == 4 || gen == 5) && !set.Shiny {
		for _, move := range set.Moves {
			if containsString(shinyEventMoves[species.Name], move) {
				problems = append(problems, fmt.Sprintf("%s must be shiny to have %s.", species.Name, move))
				break
			}
		}
	}

	return corrected, problems
}

func hasAbility(species *dexpkg.Species, ability string) bool {
	id := dexpkg.ToID(ability)
	for _, a := range species.Abilities {
		if dexpkg.ToID(a) == id {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
