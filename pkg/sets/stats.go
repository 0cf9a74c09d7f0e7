package sets

// StatID identifies one of the six battle stats by its canonical short name,
// matching the keys used by both remote data sources.
type StatID string

// The six canonical stats, in spread order.
const (
	HP  StatID = "hp"
	Atk StatID = "atk"
	Def StatID = "def"
	SpA StatID = "spa"
	SpD StatID = "spd"
	Spe StatID = "spe"
)

// StatOrder is the canonical enumeration order for the six stats. Spread
// strings in usage statistics list their values in exactly this order.
var StatOrder = [6]StatID{HP, Atk, Def, SpA, SpD, Spe}

// shortStat maps canonical stat ids to the calculator's two-letter keys.
var shortStat = map[StatID]string{
	HP:  "hp",
	Atk: "at",
	Def: "df",
	SpA: "sa",
	SpD: "sd",
	Spe: "sp",
}

// longStat is the inverse of shortStat.
var longStat = map[string]StatID{
	"hp": HP,
	"at": Atk,
	"df": Def,
	"sa": SpA,
	"sd": SpD,
	"sp": Spe,
}

// StatsTable is a per-stat value table. A full table carries all six stats;
// curated sources may supply partial tables that are filled with a
// generation default before use.
type StatsTable map[StatID]int

// NewStatsTable returns a full six-stat table with every entry set to fill.
func NewStatsTable(fill int) StatsTable {
	t := make(StatsTable, len(StatOrder))
	for _, stat := range StatOrder {
		t[stat] = fill
	}
	return t
}

// Clone returns an independent copy of the table.
func (t StatsTable) Clone() StatsTable {
	c := make(StatsTable, len(t))
	for stat, v := range t {
		c[stat] = v
	}
	return c
}

// Fill sets every stat missing from the table to the given value and
// returns the table.
func (t StatsTable) Fill(value int) StatsTable {
	for _, stat := range StatOrder {
		if _, ok := t[stat]; !ok {
			t[stat] = value
		}
	}
	return t
}

// CompactStats is the calculator's condensed stat table, keyed by two-letter
// stat abbreviations and carrying only values that differ from the axis
// default.
type CompactStats map[string]int

// Compact condenses a full table to the entries whose value differs from
// ignore. A table entirely at the default condenses to nil, which the set
// serializer elides.
func (t StatsTable) Compact(ignore int) CompactStats {
	var c CompactStats
	for _, stat := range StatOrder {
		if v, ok := t[stat]; ok && v != ignore {
			if c == nil {
				c = make(CompactStats)
			}
			c[shortStat[stat]] = v
		}
	}
	return c
}

// Expand reconstructs a full six-stat table from a compact table, filling
// absent stats with the given value. Expand is the inverse of Compact:
// t.Compact(v).Expand(v) reproduces t for any full table t.
func (c CompactStats) Expand(fill int) StatsTable {
	t := NewStatsTable(fill)
	for short, v := range c {
		if stat, ok := longStat[short]; ok {
			t[stat] = v
		}
	}
	return t
}

// DefaultEV is the effort-value fill for a generation: the pre-EV eras
// (gens 1-2) max every stat, later eras start from zero.
func DefaultEV(gen int) int {
	if gen <= 2 {
		return 252
	}
	return 0
}

// DefaultIV is the individual-value fill for a generation: gen 2 tables are
// stored doubled from 0-15 DVs so their ceiling is 30, later eras use 31.
func DefaultIV(gen int) int {
	if gen == 2 {
		return 30
	}
	return 31
}
