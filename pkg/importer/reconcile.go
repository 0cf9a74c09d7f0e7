package importer

import (
	"strings"

	"github.com/agentstation/setmap/pkg/constants"
	"github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/sets"
)

// hiddenPowerPrefix marks the one move whose type is derived from the IV
// table rather than declared.
const hiddenPowerPrefix = "Hidden Power "

// requestedHiddenPower extracts the Hidden Power type a move list implies.
// A bare "Hidden Power" requests nothing.
func requestedHiddenPower(moves []string) string {
	for _, move := range moves {
		if typ, ok := strings.CutPrefix(move, hiddenPowerPrefix); ok && dex.IsHiddenPowerType(typ) {
			return typ
		}
	}
	return ""
}

// reconcileHiddenPower mutates the set's IV table (or, in later eras, its
// HPType override) so that the table encodes the requested Hidden Power
// type. It owns the table it is handed and is idempotent: once the table
// encodes the request, further calls leave it untouched.
func reconcileHiddenPower(set *sets.PokemonSet, requested string, gen int) {
	if requested == "" {
		return
	}
	if dex.HiddenPower(set.IVs, gen) == requested {
		return
	}

	// From gen 7 the games expose a direct type override at level 100, so
	// the IVs stay free for stats.
	if gen >= 7 && set.Level == constants.MaxLevel {
		set.HPType = requested
		return
	}

	if gen == 2 {
		reconcileDVs(set.IVs, requested)
		return
	}

	// Gens 3-6: overwrite the full table from the per-type template,
	// missing template stats at the 31 ceiling.
	template := dex.HiddenPowerIVs(requested)
	if template == nil {
		return
	}
	for _, stat := range sets.StatOrder {
		if v, ok := template[stat]; ok {
			set.IVs[stat] = v
		} else {
			set.IVs[stat] = constants.MaxIV
		}
	}
}

// reconcileDVs applies the gen 2 scheme: the table stores doubled 0-15 DVs,
// the type is pinned by the atk/def template, Special is one shared DV, and
// the HP DV is derived from the low bit of each of the other four.
// Stats the template does not pin keep their current values.
func reconcileDVs(ivs sets.StatsTable, requested string) {
	template := dex.HiddenPowerDVs(requested)
	if template == nil {
		return
	}
	for stat, v := range template {
		ivs[stat] = v * 2
	}
	if v, ok := ivs[sets.SpA]; ok {
		ivs[sets.SpD] = v
	}

	dv := func(stat sets.StatID) int {
		v, ok := ivs[stat]
		if !ok {
			v = constants.MaxIV
		}
		return v / 2
	}
	ivs[sets.HP] = 2 * (8*(dv(sets.Atk)%2) + 4*(dv(sets.Def)%2) + 2*(dv(sets.Spe)%2) + dv(sets.SpA)%2)
}
