package sets

// SmogonSet is one curated analysis set as published in the per-generation
// sets collection. Every field except Moves may be absent; scalar-or-list
// fields normalize to Alt with the first element authoritative.
type SmogonSet struct {
	// Moves is the ordered move slots; each slot is a move name or a list
	// of acceptable alternatives for that slot.
	Moves []Alt[string] `json:"moves"`

	Level   int         `json:"level,omitempty"`
	Ability Alt[string] `json:"ability,omitempty"`
	Item    Alt[string] `json:"item,omitempty"`
	Nature  Alt[string] `json:"nature,omitempty"`

	// IVs and EVs are partial six-stat tables, possibly given as a list of
	// alternative tables.
	IVs Alt[StatsTable] `json:"ivs,omitempty"`
	EVs Alt[StatsTable] `json:"evs,omitempty"`

	// HPType pins the Hidden Power type when no move slot spells it out.
	HPType Alt[string] `json:"hiddenPowerType,omitempty"`
}

// SmogonSets is the curated source document for one generation:
// species name → format suffix ("ou", "ubers") → set label → set.
type SmogonSets map[string]map[string]map[string]SmogonSet
