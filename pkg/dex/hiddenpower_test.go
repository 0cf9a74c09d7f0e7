package dex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/sets"
)

func TestHiddenPowerModern(t *testing.T) {
	t.Run("all 31s is Dark", func(t *testing.T) {
		assert.Equal(t, "Dark", dex.HiddenPower(sets.NewStatsTable(31), 9))
	})

	t.Run("missing stats fill to ceiling", func(t *testing.T) {
		assert.Equal(t, "Dark", dex.HiddenPower(sets.StatsTable{}, 4))
	})

	t.Run("every template recomputes its own type", func(t *testing.T) {
		for _, typ := range []string{
			"Bug", "Dark", "Dragon", "Electric", "Fighting", "Fire",
			"Flying", "Ghost", "Grass", "Ground", "Ice", "Poison",
			"Psychic", "Rock", "Steel", "Water",
		} {
			tmpl := dex.HiddenPowerIVs(typ)
			require.NotNil(t, tmpl, typ)
			assert.Equal(t, typ, dex.HiddenPower(tmpl, 6), typ)
		}
	})
}

func TestHiddenPowerGen2(t *testing.T) {
	t.Run("all 30s is Dark", func(t *testing.T) {
		// Doubled DVs of 15 across the board.
		assert.Equal(t, "Dark", dex.HiddenPower(sets.NewStatsTable(30), 2))
	})

	t.Run("every DV template recomputes its own type when doubled", func(t *testing.T) {
		for _, typ := range []string{
			"Bug", "Dark", "Dragon", "Electric", "Fighting", "Fire",
			"Flying", "Ghost", "Grass", "Ground", "Ice", "Poison",
			"Psychic", "Rock", "Steel", "Water",
		} {
			dvs := dex.HiddenPowerDVs(typ)
			require.NotNil(t, dvs, typ)
			doubled := sets.StatsTable{}
			for stat, v := range dvs {
				doubled[stat] = v * 2
			}
			assert.Equal(t, typ, dex.HiddenPower(doubled, 2), typ)
		}
	})
}

func TestHiddenPowerTemplatesAreCopies(t *testing.T) {
	a := dex.HiddenPowerIVs("Ice")
	a[sets.Atk] = 0
	b := dex.HiddenPowerIVs("Ice")
	assert.Equal(t, 30, b[sets.Atk])
}

func TestIsHiddenPowerType(t *testing.T) {
	assert.True(t, dex.IsHiddenPowerType("Ice"))
	assert.False(t, dex.IsHiddenPowerType("Normal"))
	assert.False(t, dex.IsHiddenPowerType("Fairy"))
}

func TestToID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Choice Scarf", "choicescarf"},
		{"Landorus-Therian", "landorustherian"},
		{"[Gen 9] OU", "gen9ou"},
		{"Farfetch'd", "farfetchd"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dex.ToID(tt.in), tt.in)
	}
}

func TestIsNature(t *testing.T) {
	assert.True(t, dex.IsNature("Jolly"))
	assert.True(t, dex.IsNature("Serious"))
	assert.False(t, dex.IsNature("jolly"))
	assert.False(t, dex.IsNature("Brazen"))
}
