// Package dex defines the reference-database boundary: lookups for species,
// items, abilities, and formats, plus the fixed game math (Hidden Power
// derivation, natures) that does not vary by data source. The importer
// depends only on the Dex interface; internal/dex provides the embedded
// implementation.
package dex

import "strings"

// Species is one playable species or forme.
type Species struct {
	Name string `json:"name" yaml:"name"`

	// Abilities lists the natural abilities, first slot canonical.
	Abilities []string `json:"abilities" yaml:"abilities"`

	// BaseSpecies is the base forme name, "" when this is the base.
	BaseSpecies string `json:"baseSpecies,omitempty" yaml:"baseSpecies,omitempty"`
}

// FirstAbility returns the canonical (first-slot) ability, or "".
func (s *Species) FirstAbility() string {
	if s == nil || len(s.Abilities) == 0 {
		return ""
	}
	return s.Abilities[0]
}

// Item is one held item.
type Item struct {
	Name string `json:"name" yaml:"name"`

	// MegaStone names the forme this stone mega-evolves into, "" for
	// ordinary items.
	MegaStone string `json:"megaStone,omitempty" yaml:"megaStone,omitempty"`

	// MegaEvolves names the base species the stone applies to.
	MegaEvolves string `json:"megaEvolves,omitempty" yaml:"megaEvolves,omitempty"`
}

// IsMegaStone reports whether the item triggers a mega evolution.
func (i *Item) IsMegaStone() bool {
	return i != nil && i.MegaStone != ""
}

// Ability is one species ability.
type Ability struct {
	Name string `json:"name" yaml:"name"`
}

// Format is one named legality configuration.
type Format struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Generation is the ruleset generation number the format plays under.
	Generation int `json:"generation" yaml:"generation"`

	// Banlist holds banned species, items, and abilities by display name.
	Banlist []string `json:"banlist,omitempty" yaml:"banlist,omitempty"`

	// Ruleset holds rule clauses; "+Name" clauses explicitly permit
	// something a parent ruleset bans.
	Ruleset []string `json:"ruleset,omitempty" yaml:"ruleset,omitempty"`
}

// HasRule reports whether the format's ruleset carries the exact clause.
func (f *Format) HasRule(clause string) bool {
	if f == nil {
		return false
	}
	for _, r := range f.Ruleset {
		if r == clause {
			return true
		}
	}
	return false
}

// BansEntry reports whether name appears on the format's banlist.
func (f *Format) BansEntry(name string) bool {
	if f == nil {
		return false
	}
	for _, b := range f.Banlist {
		if b == name {
			return true
		}
	}
	return false
}

// Dex is the reference database the pipeline consults. Lookups are keyed by
// display name or id; implementations normalize with ToID. A nil result
// means the entry does not exist in this dex.
type Dex interface {
	Species(name string) *Species
	Item(name string) *Item
	Ability(name string) *Ability
	Format(id string) *Format
}

// ToID normalizes a display name to its id form: lowercase alphanumerics
// only. "Choice Scarf" and "choicescarf" share the id "choicescarf".
func ToID(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
