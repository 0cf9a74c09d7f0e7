package importer

import (
	"strings"

	"github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/sets"
)

// similarFormeTable maps base species to the battle formes that share their
// sets. The counts are asymmetric game facts: Aegislash alone fans out to
// three calc pseudo-formes.
var similarFormeTable = map[string][]string{
	"Aegislash":        {"Aegislash-Blade", "Aegislash-Shield", "Aegislash-Both"},
	"Darmanitan":       {"Darmanitan-Zen"},
	"Darmanitan-Galar": {"Darmanitan-Galar-Zen"},
	"Eiscue":           {"Eiscue-Noice"},
	"Mimikyu":          {"Mimikyu-Busted"},
	"Minior":           {"Minior-Meteor"},
	"Morpeko":          {"Morpeko-Hangry"},
	"Palafin":          {"Palafin-Hero"},
	"Wishiwashi":       {"Wishiwashi-School"},
}

// relicSong is Meloetta's signature move; using it swaps formes mid-battle.
const relicSong = "Relic Song"

// SimilarFormes decides which alternate formes should receive a copy of a
// validated set. Fixed priority order, first match wins; nil means no
// propagation. format may be nil for allow-listed formats the reference
// database does not model, and item is the resolved held item or nil.
func SimilarFormes(set *sets.PokemonSet, format *dex.Format, species *dex.Species, item *dex.Item) []string {
	switch {
	case species.Name == "Meloetta" && hasMove(set, relicSong) && permitsPirouette(format):
		return []string{"Meloetta-Pirouette"}

	case species.Name == "Meloetta-Pirouette":
		if format != nil && strings.Contains(format.ID, "anythinggoes") {
			return nil
		}
		return []string{"Meloetta"}

	case set.Ability == "Power Construct":
		return []string{"Zygarde-Complete"}

	case item.IsMegaStone() && species.Name == item.MegaStone:
		return []string{item.MegaEvolves}

	case item.IsMegaStone() && species.Name == item.MegaEvolves:
		return []string{item.MegaStone}
	}

	return similarFormeTable[species.Name]
}

// permitsPirouette reports whether a format's ruleset allows
// Meloetta-Pirouette: modern formats need the explicit permit clause,
// National Dex and the older formats go by banlist text.
func permitsPirouette(format *dex.Format) bool {
	if format == nil {
		return false
	}
	if strings.Contains(format.ID, "nationaldex") {
		return !format.BansEntry("Meloetta-Pirouette")
	}
	if format.Generation >= 8 {
		return format.HasRule("+Meloetta-Pirouette")
	}
	return !format.BansEntry("Meloetta-Pirouette")
}

func hasMove(set *sets.PokemonSet, move string) bool {
	for _, m := range set.Moves {
		if m == move {
			return true
		}
	}
	return false
}
