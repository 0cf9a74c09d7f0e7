package dex

import "github.com/agentstation/setmap/pkg/sets"

// hiddenPowerTypes indexes the sixteen Hidden Power types. Generation 3+
// maps floor(sum*15/63) onto it; generation 2 maps 4*(atkDV%4)+(defDV%4).
var hiddenPowerTypes = [16]string{
	"Fighting", "Flying", "Poison", "Ground",
	"Rock", "Bug", "Ghost", "Steel",
	"Fire", "Water", "Grass", "Electric",
	"Psychic", "Ice", "Dragon", "Dark",
}

// hiddenPowerIVs holds the per-type IV pins for generations 3-6. Stats
// absent from a template stay at the 31 ceiling.
var hiddenPowerIVs = map[string]sets.StatsTable{
	"Bug":      {sets.Atk: 30, sets.Def: 30, sets.SpD: 30},
	"Dark":     {},
	"Dragon":   {sets.Atk: 30},
	"Electric": {sets.SpA: 30},
	"Fighting": {sets.Def: 30, sets.SpA: 30, sets.SpD: 30, sets.Spe: 30},
	"Fire":     {sets.Atk: 30, sets.SpA: 30, sets.Spe: 30},
	"Flying":   {sets.HP: 30, sets.Atk: 30, sets.Def: 30, sets.SpA: 30, sets.SpD: 30},
	"Ghost":    {sets.Def: 30, sets.SpD: 30},
	"Grass":    {sets.Atk: 30, sets.SpA: 30},
	"Ground":   {sets.SpA: 30, sets.SpD: 30},
	"Ice":      {sets.Atk: 30, sets.Def: 30},
	"Poison":   {sets.Def: 30, sets.SpA: 30, sets.SpD: 30},
	"Psychic":  {sets.Atk: 30, sets.Spe: 30},
	"Rock":     {sets.Def: 30, sets.SpD: 30, sets.Spe: 30},
	"Steel":    {sets.SpD: 30},
	"Water":    {sets.Atk: 30, sets.Def: 30, sets.SpA: 30},
}

// hiddenPowerDVs holds the per-type DV pins for generation 2, on the 0-15
// range. Stats absent from a template stay at the 15 ceiling.
var hiddenPowerDVs = map[string]sets.StatsTable{
	"Bug":      {sets.Atk: 13, sets.Def: 13},
	"Dark":     {},
	"Dragon":   {sets.Def: 14},
	"Electric": {sets.Atk: 14},
	"Fighting": {sets.Atk: 12, sets.Def: 12},
	"Fire":     {sets.Atk: 14, sets.Def: 12},
	"Flying":   {sets.Atk: 12, sets.Def: 13},
	"Ghost":    {sets.Atk: 13, sets.Def: 14},
	"Grass":    {sets.Atk: 14, sets.Def: 14},
	"Ground":   {sets.Atk: 12},
	"Ice":      {sets.Def: 13},
	"Poison":   {sets.Atk: 12, sets.Def: 14},
	"Psychic":  {sets.Def: 12},
	"Rock":     {sets.Atk: 13, sets.Def: 12},
	"Steel":    {sets.Atk: 13},
	"Water":    {sets.Atk: 14, sets.Def: 13},
}

// HiddenPower computes the Hidden Power type a full IV table implies in the
// given generation. Missing stats are treated as the generation ceiling.
// Generation 2 tables store doubled DVs, so each entry is halved before the
// legacy formula applies.
func HiddenPower(ivs sets.StatsTable, gen int) string {
	get := func(stat sets.StatID) int {
		if v, ok := ivs[stat]; ok {
			return v
		}
		if gen == 2 {
			return 30
		}
		return 31
	}

	if gen == 2 {
		atk := get(sets.Atk) / 2
		def := get(sets.Def) / 2
		return hiddenPowerTypes[4*(atk%4)+def%4]
	}

	// Bit weights follow the in-game stat order hp/atk/def/spe/spa/spd.
	sum := get(sets.HP)&1 |
		(get(sets.Atk)&1)<<1 |
		(get(sets.Def)&1)<<2 |
		(get(sets.Spe)&1)<<3 |
		(get(sets.SpA)&1)<<4 |
		(get(sets.SpD)&1)<<5
	return hiddenPowerTypes[sum*15/63]
}

// HiddenPowerIVs returns the generation 3-6 IV template pinning the given
// type, or nil for an unknown type. The returned table is a copy.
func HiddenPowerIVs(typ string) sets.StatsTable {
	t, ok := hiddenPowerIVs[typ]
	if !ok {
		return nil
	}
	return t.Clone()
}

// HiddenPowerDVs returns the generation 2 DV template (0-15 range) pinning
// the given type, or nil for an unknown type. The returned table is a copy.
func HiddenPowerDVs(typ string) sets.StatsTable {
	t, ok := hiddenPowerDVs[typ]
	if !ok {
		return nil
	}
	return t.Clone()
}

// IsHiddenPowerType reports whether the name is one of the sixteen types
// Hidden Power can take.
func IsHiddenPowerType(typ string) bool {
	_, ok := hiddenPowerIVs[typ]
	return ok
}
