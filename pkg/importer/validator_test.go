package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/importer"
	"github.com/agentstation/setmap/pkg/legality"
	"github.com/agentstation/setmap/pkg/logging"
	"github.com/agentstation/setmap/pkg/sets"
)

// fakeEngine scripts one validation outcome per call.
type fakeEngine struct {
	calls     int
	renameTo  string
	abilityTo string
	problems  [][]string
}

func (f *fakeEngine) Validate(set *sets.PokemonSet) (*sets.PokemonSet, []string) {
	corrected := set.Clone()
	if f.renameTo != "" {
		corrected.Species = f.renameTo
	}
	if f.abilityTo != "" {
		corrected.Ability = f.abilityTo
	}
	var problems []string
	if f.calls < len(f.problems) {
		problems = f.problems[f.calls]
	}
	f.calls++
	return corrected, problems
}

func fakeFactory(engines map[string]*fakeEngine, constructions *int) legality.Factory {
	return func(format *dex.Format) (legality.Engine, error) {
		if constructions != nil {
			*constructions++
		}
		return engines[format.ID], nil
	}
}

func testSet(species string) *sets.PokemonSet {
	return &sets.PokemonSet{
		Species: species,
		Moves:   []string{"Iron Head", "Play Rough", "Close Combat", "Crunch"},
		Level:   100,
		EVs:     sets.NewStatsTable(0),
		IVs:     sets.NewStatsTable(31),
	}
}

func TestValidatorAccepts(t *testing.T) {
	engines := map[string]*fakeEngine{"gen9ou": {}}
	v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

	set := testSet("Great Tusk")
	assert.True(t, v.Validate(&dex.Format{ID: "gen9ou", Name: "[Gen 9] OU", Generation: 9}, set, "smogon sets"))
}

func TestValidatorMemoizesEngines(t *testing.T) {
	constructions := 0
	engines := map[string]*fakeEngine{"gen9ou": {}, "gen9uu": {}}
	v := importer.NewValidator(fakeFactory(engines, &constructions), logging.NewNopLogger())

	ou := &dex.Format{ID: "gen9ou", Generation: 9}
	uu := &dex.Format{ID: "gen9uu", Generation: 9}
	v.Validate(ou, testSet("Great Tusk"), "smogon sets")
	v.Validate(ou, testSet("Kingambit"), "smogon sets")
	v.Validate(uu, testSet("Kingambit"), "smogon sets")

	assert.Equal(t, 2, constructions, "one engine per format for the run")
}

func TestValidatorKeepsRenameDiscardsAbility(t *testing.T) {
	engines := map[string]*fakeEngine{
		"gen6ou": {renameTo: "Metagross-Mega", abilityTo: "Tough Claws"},
	}
	v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

	set := testSet("Metagross")
	set.Ability = "Clear Body"
	require.True(t, v.Validate(&dex.Format{ID: "gen6ou", Generation: 6}, set, "smogon sets"))

	assert.Equal(t, "Metagross-Mega", set.Species, "engine rename is kept")
	assert.Equal(t, "Clear Body", set.Ability, "engine ability rewrite is discarded")
}

func TestValidatorCrownedMoveRewrite(t *testing.T) {
	t.Run("Zacian-Crowned", func(t *testing.T) {
		engines := map[string]*fakeEngine{"gen8ou": {}}
		v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

		set := testSet("Zacian-Crowned")
		require.True(t, v.Validate(&dex.Format{ID: "gen8ou", Generation: 8}, set, "smogon sets"))
		assert.Equal(t, []string{"Behemoth Blade", "Play Rough", "Close Combat", "Crunch"}, set.Moves)
	})

	t.Run("Zamazenta-Crowned", func(t *testing.T) {
		engines := map[string]*fakeEngine{"gen8ou": {}}
		v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

		set := testSet("Zamazenta-Crowned")
		require.True(t, v.Validate(&dex.Format{ID: "gen8ou", Generation: 8}, set, "smogon sets"))
		assert.Equal(t, "Behemoth Bash", set.Moves[0])
	})

	t.Run("no placeholder, no rewrite", func(t *testing.T) {
		engines := map[string]*fakeEngine{"gen8ou": {}}
		v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

		set := testSet("Zacian-Crowned")
		set.Moves = []string{"Play Rough", "Close Combat", "Crunch", "Swords Dance"}
		require.True(t, v.Validate(&dex.Format{ID: "gen8ou", Generation: 8}, set, "smogon sets"))
		assert.NotContains(t, set.Moves, "Behemoth Blade")
	})
}

func TestValidatorAutoCorrections(t *testing.T) {
	t.Run("must be shiny", func(t *testing.T) {
		engines := map[string]*fakeEngine{
			"gen4ou": {problems: [][]string{{"Raikou must be shiny to have Extreme Speed."}, nil}},
		}
		v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

		set := testSet("Raikou")
		assert.True(t, v.Validate(&dex.Format{ID: "gen4ou", Generation: 4}, set, "smogon sets"))
		assert.True(t, set.Shiny)
		assert.Equal(t, 2, engines["gen4ou"].calls, "retried exactly once")
	})

	t.Run("exactly 0 EVs", func(t *testing.T) {
		engines := map[string]*fakeEngine{
			"gen4ou": {problems: [][]string{{"Garchomp has exactly 0 EVs."}, nil}},
		}
		v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

		set := testSet("Garchomp")
		assert.True(t, v.Validate(&dex.Format{ID: "gen4ou", Generation: 4}, set, "showdown usage"))
		assert.Equal(t, 1, set.EVs[sets.HP])
	})

	t.Run("correction fails, set rejected", func(t *testing.T) {
		engines := map[string]*fakeEngine{
			"gen4ou": {problems: [][]string{
				{"Raikou must be shiny to have Extreme Speed."},
				{"Raikou must be shiny to have Extreme Speed."},
			}},
		}
		log := logging.NewTestLogger(t)
		v := importer.NewValidator(fakeFactory(engines, nil), log.Logger)

		set := testSet("Raikou")
		assert.False(t, v.Validate(&dex.Format{ID: "gen4ou", Name: "[Gen 4] OU", Generation: 4}, set, "smogon sets"))
		log.AssertContains(t, "Rejected illegal set")
		log.AssertContains(t, "smogon sets")
		log.AssertContains(t, "Raikou")
	})

	t.Run("two violations are not auto-corrected", func(t *testing.T) {
		engines := map[string]*fakeEngine{
			"gen4ou": {problems: [][]string{{
				"Raikou must be shiny to have Extreme Speed.",
				"Raikou has exactly 0 EVs.",
			}}},
		}
		v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

		set := testSet("Raikou")
		assert.False(t, v.Validate(&dex.Format{ID: "gen4ou", Generation: 4}, set, "smogon sets"))
		assert.False(t, set.Shiny)
		assert.Equal(t, 1, engines["gen4ou"].calls)
	})
}

func TestValidatorUbersBanOverride(t *testing.T) {
	t.Run("gen4ubers accepts the banned entry", func(t *testing.T) {
		engines := map[string]*fakeEngine{
			"gen4ubers": {problems: [][]string{{"Arceus is banned."}}},
		}
		v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

		set := testSet("Arceus")
		assert.True(t, v.Validate(&dex.Format{ID: "gen4ubers", Generation: 4}, set, "smogon sets"))
	})

	t.Run("other formats do not", func(t *testing.T) {
		engines := map[string]*fakeEngine{
			"gen5ubers": {problems: [][]string{{"Arceus is banned."}}},
		}
		v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

		set := testSet("Arceus")
		assert.False(t, v.Validate(&dex.Format{ID: "gen5ubers", Generation: 5}, set, "smogon sets"))
	})

	t.Run("the message must match exactly", func(t *testing.T) {
		engines := map[string]*fakeEngine{
			"gen4ubers": {problems: [][]string{{"Arceus is banned for being too strong."}}},
		}
		v := importer.NewValidator(fakeFactory(engines, nil), logging.NewNopLogger())

		set := testSet("Arceus")
		assert.False(t, v.Validate(&dex.Format{ID: "gen4ubers", Generation: 4}, set, "smogon sets"))
	})
}
