// Package sets defines the data model for the set importer: the loosely
// structured shapes the two remote sources deliver (curated Smogon analysis
// sets and Showdown usage statistics), the canonical record both are
// normalized into, and the condensed calc set the damage calculator consumes.
// All providers normalize into PokemonSet; the pipeline and the output
// serializer never see a source-specific shape.
package sets

import "encoding/json"

// PokemonSet is the canonical record every source normalizes into. One is
// built fresh per (species, label) pair; it is mutated only by the Hidden
// Power reconciler during construction and by the validator adapter during
// auto-correction, and is immutable once stored.
type PokemonSet struct {
	// Species is the full display name, including any forme suffix
	// ("Landorus-Therian", "Zacian-Crowned").
	Species string

	// Moves holds up to four move names. Usage data may yield fewer.
	Moves []string

	// Item is the held item display name, "" meaning none.
	Item string

	// Ability may be "" in generations without abilities.
	Ability string

	// Nature may be "" in generations without natures.
	Nature string

	// Level is the competitive level for the set's format.
	Level int

	// EVs is the full six-stat effort table (fill: DefaultEV).
	EVs StatsTable

	// IVs is the full six-stat individual-value table (fill: DefaultIV).
	IVs StatsTable

	// Shiny is set only by the validator's shiny-required auto-correction.
	Shiny bool

	// HPType overrides the Hidden Power type without pinning IVs. Set only
	// for gen 7+ level-100 sets, where the games expose the override
	// directly.
	HPType string
}

// Clone returns a deep copy, used when propagating a validated set to a
// similar forme.
func (s *PokemonSet) Clone() *PokemonSet {
	c := *s
	c.Moves = append([]string(nil), s.Moves...)
	c.EVs = s.EVs.Clone()
	c.IVs = s.IVs.Clone()
	return &c
}

// String returns the set as compact JSON for diagnostics.
func (s *PokemonSet) String() string {
	b, err := json.Marshal(struct {
		Species string     `json:"species"`
		Level   int        `json:"level"`
		Moves   []string   `json:"moves"`
		Item    string     `json:"item,omitempty"`
		Ability string     `json:"ability,omitempty"`
		Nature  string     `json:"nature,omitempty"`
		EVs     StatsTable `json:"evs"`
		IVs     StatsTable `json:"ivs"`
	}{s.Species, s.Level, s.Moves, s.Item, s.Ability, s.Nature, s.EVs, s.IVs})
	if err != nil {
		return s.Species
	}
	return string(b)
}

// CalcSet is the condensed projection of a PokemonSet written to the
// per-generation calc data files. Stat tables are compacted to the entries
// that deviate from the generation default.
type CalcSet struct {
	Level   int          `json:"level"`
	EVs     CompactStats `json:"evs,omitempty"`
	IVs     CompactStats `json:"ivs,omitempty"`
	Nature  string       `json:"nature,omitempty"`
	Ability string       `json:"ability,omitempty"`
	Item    string       `json:"item,omitempty"`
	HPType  string       `json:"hpType,omitempty"`
	Moves   []string     `json:"moves"`
}

// ToCalcSet condenses the set for a generation, eliding stat entries equal
// to the generation's axis defaults.
func (s *PokemonSet) ToCalcSet(gen int) CalcSet {
	return CalcSet{
		Level:   s.Level,
		EVs:     s.EVs.Compact(DefaultEV(gen)),
		IVs:     s.IVs.Compact(DefaultIV(gen)),
		Nature:  s.Nature,
		Ability: s.Ability,
		Item:    s.Item,
		HPType:  s.HPType,
		Moves:   s.Moves,
	}
}

// SetDex is one generation's output artifact: species name to human-readable
// label to calc set. Assembled fully in memory, written once.
type SetDex map[string]map[string]CalcSet

// Add stores a calc set under (species, label), creating the species bucket
// on first use.
func (d SetDex) Add(species, label string, set CalcSet) {
	bucket, ok := d[species]
	if !ok {
		bucket = make(map[string]CalcSet)
		d[species] = bucket
	}
	bucket[label] = set
}
