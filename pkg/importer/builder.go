package importer

import (
	"strconv"
	"strings"

	"github.com/agentstation/setmap/pkg/constants"
	"github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/sets"
)

// nothing is the literal the usage statistics report for an empty ability
// or item slot.
const nothing = "Nothing"

// Builder normalizes both source shapes into canonical PokemonSets.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// FromSmogon builds a canonical set from a curated analysis set. Every
// scalar-or-list field collapses to its first alternative; the ability
// defaults to the species' first natural ability, the level to 100, and
// both stat axes to the generation defaults.
func (b *Builder) FromSmogon(gen int, species *dex.Species, curated *sets.SmogonSet) *sets.PokemonSet {
	moves := make([]string, 0, len(curated.Moves))
	for _, slot := range curated.Moves {
		if move, ok := slot.First(); ok {
			moves = append(moves, move)
		}
	}

	level := curated.Level
	if level == 0 {
		level = constants.MaxLevel
	}

	set := &sets.PokemonSet{
		Species: species.Name,
		Moves:   moves,
		Item:    curated.Item.FirstOr(""),
		Ability: curated.Ability.FirstOr(species.FirstAbility()),
		Nature:  curated.Nature.FirstOr(""),
		Level:   level,
		EVs:     curated.EVs.FirstOr(sets.StatsTable{}).Clone().Fill(sets.DefaultEV(gen)),
		IVs:     curated.IVs.FirstOr(sets.StatsTable{}).Clone().Fill(sets.DefaultIV(gen)),
	}

	requested := requestedHiddenPower(moves)
	if requested == "" {
		requested = curated.HPType.FirstOr("")
	}
	reconcileHiddenPower(set, requested, gen)

	return set
}

// FromUsage builds a canonical set from one species' usage bucket: the
// top-weighted spread, ability, and item, and the four top-weighted moves.
// "Nothing" entries normalize away; the level derives from the format id.
func (b *Builder) FromUsage(gen int, formatID, speciesName string, bucket *sets.UsageBucket) *sets.PokemonSet {
	nature, evs := topSpread(bucket.Spreads)

	ability, _ := Top(bucket.Abilities)
	if ability == nothing {
		ability = ""
	}
	item, _ := Top(bucket.Items)
	if item == nothing {
		item = ""
	}

	moves := make([]string, 0, constants.MaxMoves)
	for _, move := range TopN(bucket.Moves, constants.MaxMoves) {
		if move != nothing {
			moves = append(moves, move)
		}
	}

	set := &sets.PokemonSet{
		Species: speciesName,
		Moves:   moves,
		Item:    item,
		Ability: ability,
		Nature:  nature,
		Level:   formatLevel(formatID),
		EVs:     evs.Fill(sets.DefaultEV(gen)),
		IVs:     sets.NewStatsTable(sets.DefaultIV(gen)),
	}

	reconcileHiddenPower(set, requestedHiddenPower(moves), gen)

	return set
}

// topSpread picks the top-weighted "Nature:hp/atk/def/spa/spd/spe" spread
// and splits it into a nature and a partial EV table. Zero values are
// omitted, not stored.
func topSpread(spreads map[string]float64) (string, sets.StatsTable) {
	evs := sets.StatsTable{}
	spread, ok := Top(spreads)
	if !ok {
		return "", evs
	}

	nature, values, ok := strings.Cut(spread, ":")
	if !ok {
		return nature, evs
	}
	for i, field := range strings.Split(values, "/") {
		if i >= len(sets.StatOrder) {
			break
		}
		if v, err := strconv.Atoi(field); err == nil && v != 0 {
			evs[sets.StatOrder[i]] = v
		}
	}
	return nature, evs
}

// formatLevel derives the competitive level from the format id.
func formatLevel(formatID string) int {
	switch {
	case strings.Contains(formatID, "lc"):
		return 5
	case strings.Contains(formatID, "vgc"), strings.Contains(formatID, "battlestadium"):
		return 50
	default:
		return constants.MaxLevel
	}
}
