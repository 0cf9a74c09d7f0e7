package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/importer"
	"github.com/agentstation/setmap/pkg/sets"
)

func formeSet(species string, moves ...string) *sets.PokemonSet {
	return &sets.PokemonSet{Species: species, Moves: moves, Level: 100}
}

func TestSimilarFormes(t *testing.T) {
	gen9ou := &dex.Format{ID: "gen9ou", Generation: 9, Ruleset: []string{"Standard", "+Meloetta-Pirouette"}}

	t.Run("static forme table", func(t *testing.T) {
		got := importer.SimilarFormes(formeSet("Aegislash", "Shadow Ball"), gen9ou,
			&dex.Species{Name: "Aegislash"}, nil)
		assert.Equal(t, []string{"Aegislash-Blade", "Aegislash-Shield", "Aegislash-Both"}, got)

		got = importer.SimilarFormes(formeSet("Palafin", "Jet Punch"), gen9ou,
			&dex.Species{Name: "Palafin"}, nil)
		assert.Equal(t, []string{"Palafin-Hero"}, got)
	})

	t.Run("no match returns nothing", func(t *testing.T) {
		assert.Nil(t, importer.SimilarFormes(formeSet("Great Tusk", "Headlong Rush"), gen9ou,
			&dex.Species{Name: "Great Tusk"}, nil))
	})

	t.Run("Meloetta with Relic Song", func(t *testing.T) {
		meloetta := &dex.Species{Name: "Meloetta"}

		got := importer.SimilarFormes(formeSet("Meloetta", "Relic Song"), gen9ou, meloetta, nil)
		assert.Equal(t, []string{"Meloetta-Pirouette"}, got)

		t.Run("modern format without the permit clause", func(t *testing.T) {
			plain := &dex.Format{ID: "gen9ubers", Generation: 9}
			assert.Nil(t, importer.SimilarFormes(formeSet("Meloetta", "Relic Song"), plain, meloetta, nil))
		})

		t.Run("older format goes by banlist", func(t *testing.T) {
			gen5 := &dex.Format{ID: "gen5ou", Generation: 5}
			got := importer.SimilarFormes(formeSet("Meloetta", "Relic Song"), gen5, meloetta, nil)
			assert.Equal(t, []string{"Meloetta-Pirouette"}, got)

			banned := &dex.Format{ID: "gen5uu", Generation: 5, Banlist: []string{"Meloetta-Pirouette"}}
			assert.Nil(t, importer.SimilarFormes(formeSet("Meloetta", "Relic Song"), banned, meloetta, nil))
		})

		t.Run("national dex goes by banlist alone", func(t *testing.T) {
			natdex := &dex.Format{ID: "gen9nationaldex", Generation: 9}
			got := importer.SimilarFormes(formeSet("Meloetta", "Relic Song"), natdex, meloetta, nil)
			assert.Equal(t, []string{"Meloetta-Pirouette"}, got)
		})

		t.Run("without Relic Song no propagation", func(t *testing.T) {
			assert.Nil(t, importer.SimilarFormes(formeSet("Meloetta", "Psychic"), gen9ou, meloetta, nil))
		})

		t.Run("nil format forbids the forme", func(t *testing.T) {
			assert.Nil(t, importer.SimilarFormes(formeSet("Meloetta", "Relic Song"), nil, meloetta, nil))
		})
	})

	t.Run("Pirouette propagates back to base", func(t *testing.T) {
		pirouette := &dex.Species{Name: "Meloetta-Pirouette", BaseSpecies: "Meloetta"}

		got := importer.SimilarFormes(formeSet("Meloetta-Pirouette", "Close Combat"), gen9ou, pirouette, nil)
		assert.Equal(t, []string{"Meloetta"}, got)

		ag := &dex.Format{ID: "gen9anythinggoes", Generation: 9}
		assert.Nil(t, importer.SimilarFormes(formeSet("Meloetta-Pirouette", "Close Combat"), ag, pirouette, nil))
	})

	t.Run("Power Construct forces the completed forme", func(t *testing.T) {
		set := formeSet("Zygarde", "Thousand Arrows")
		set.Ability = "Power Construct"
		got := importer.SimilarFormes(set, gen9ou, &dex.Species{Name: "Zygarde"}, nil)
		assert.Equal(t, []string{"Zygarde-Complete"}, got)
	})

	t.Run("mega stone propagates both directions", func(t *testing.T) {
		stone := &dex.Item{Name: "Metagrossite", MegaStone: "Metagross-Mega", MegaEvolves: "Metagross"}

		got := importer.SimilarFormes(formeSet("Metagross", "Meteor Mash"), gen9ou,
			&dex.Species{Name: "Metagross"}, stone)
		assert.Equal(t, []string{"Metagross-Mega"}, got)

		got = importer.SimilarFormes(formeSet("Metagross-Mega", "Meteor Mash"), gen9ou,
			&dex.Species{Name: "Metagross-Mega", BaseSpecies: "Metagross"}, stone)
		assert.Equal(t, []string{"Metagross"}, got)
	})

	t.Run("stone for another species does not trigger", func(t *testing.T) {
		stone := &dex.Item{Name: "Lopunnite", MegaStone: "Lopunny-Mega", MegaEvolves: "Lopunny"}
		assert.Nil(t, importer.SimilarFormes(formeSet("Great Tusk", "Headlong Rush"), gen9ou,
			&dex.Species{Name: "Great Tusk"}, stone))
	})
}

func TestUsageThreshold(t *testing.T) {
	t.Run("tiny samples qualify nothing", func(t *testing.T) {
		threshold := importer.UsageThreshold(50, "gen9ou")
		assert.Greater(t, threshold, 99.9, "even near-universal usage is rejected")
	})

	tests := []struct {
		battles  int
		formatID string
		want     float64
	}{
		{200, "gen9ou", 0.05},
		{10000, "gen9ubers", 0.03},
		{10000, "gen9anythinggoes", 0.03},
		{10000, "gen9doublesou", 0.03},
		{10000, "gen9ou", 0.01},
		{399, "gen9ubers", 0.05},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, importer.UsageThreshold(tt.battles, tt.formatID), 1e-9,
			"%d battles in %s", tt.battles, tt.formatID)
	}
}
