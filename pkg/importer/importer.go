// Package importer implements the import pipeline: it normalizes curated
// analysis sets and usage statistics into canonical sets, validates them
// against each format's ruleset with a bounded self-correction loop,
// propagates accepted sets to similar formes, and assembles one calc set
// map per generation.
package importer

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/errors"
	"github.com/agentstation/setmap/pkg/logging"
	"github.com/agentstation/setmap/pkg/sets"
)

// SetsSource fetches one generation's curated set collection.
type SetsSource interface {
	Sets(ctx context.Context, gen int) (sets.SmogonSets, error)
}

// StatsSource fetches one format's usage-statistics page.
type StatsSource interface {
	Statistics(ctx context.Context, formatID string) (*sets.UsageStatistics, error)
}

// allowedFormats maps format ids the reference database does not model to
// their display names. Sets in these formats bypass validation entirely.
var allowedFormats = map[string]string{
	"gen7letsgoou": "[Gen 7 Let's Go] OU",
	"gen8bdspou":   "[Gen 8 BDSP] OU",
}

// lowPlayerbase matches format ids whose ladders are too noisy for the
// standard usage cutoff.
var lowPlayerbase = regexp.MustCompile(`(?i)uber|anythinggoes|doublesou`)

// UsageThreshold computes the minimum weighted usage a species needs for
// inclusion from a format's total battle count. Small samples qualify
// nothing at all.
func UsageThreshold(battles int, formatID string) float64 {
	switch {
	case battles < 100:
		return math.Inf(1)
	case battles < 400:
		return 0.05
	case lowPlayerbase.MatchString(formatID):
		return 0.03
	default:
		return 0.01
	}
}

// sourceSmogon and sourceUsage tag rejection logs with the record's origin.
const (
	sourceSmogon = "smogon sets"
	sourceUsage  = "showdown usage"
)

// usageLabel suffixes every statistics-derived set label.
const usageLabel = "Showdown Usage"

// Importer drives the pipeline for one generation at a time. It owns the
// validator (and with it the per-format engine cache) for the lifetime of
// a batch run.
type Importer struct {
	dex       dex.Dex
	smogon    SetsSource
	usage     StatsSource
	builder   *Builder
	validator *Validator
}

// New creates an Importer over the given collaborators.
func New(d dex.Dex, smogon SetsSource, usage StatsSource, validator *Validator) *Importer {
	return &Importer{
		dex:       d,
		smogon:    smogon,
		usage:     usage,
		builder:   NewBuilder(),
		validator: validator,
	}
}

// ImportGeneration runs the pipeline for one generation and returns its
// calc set map. Curated data is processed first and marks (species, format)
// pairs as covered; usage statistics never overwrite covered pairs. A
// missing curated document means an empty generation; any other curated
// fetch failure is fatal. Statistics failures are logged and skipped.
func (imp *Importer) ImportGeneration(ctx context.Context, gen int) (sets.SetDex, error) {
	log := logging.FromContext(ctx)

	curated, err := imp.smogon.Sets(ctx, gen)
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.NewImportError(gen, "", err)
		}
		log.Info().Int("generation", gen).Msg("No curated sets published")
		curated = sets.SmogonSets{}
	}

	out := make(sets.SetDex)
	covered := make(map[string]bool)
	statsFormats := make(map[string]bool)

	for _, speciesName := range sortedKeys(curated) {
		species := imp.dex.Species(speciesName)
		if species == nil {
			log.Debug().Int("generation", gen).Str("species", speciesName).
				Msg("Skipping species unknown to the dex")
			continue
		}

		formats := curated[speciesName]
		for _, suffix := range sortedKeys(formats) {
			formatID := fmt.Sprintf("gen%d%s", gen, suffix)
			format := imp.dex.Format(formatID)
			displayName := ""
			if format != nil {
				displayName = format.Name
			} else {
				name, ok := allowedFormats[formatID]
				if !ok {
					log.Debug().Int("generation", gen).Str("format", formatID).
						Msg("Skipping format unknown to the dex")
					continue
				}
				displayName = name
			}
			statsFormats[formatID] = true

			labels := formats[suffix]
			for _, curatedLabel := range sortedKeys(labels) {
				curatedSet := labels[curatedLabel]
				set := imp.builder.FromSmogon(gen, species, &curatedSet)
				if format != nil && !imp.validator.Validate(format, set, sourceSmogon) {
					continue
				}

				label := stripTag(displayName) + " " + curatedLabel
				out.Add(set.Species, label, set.ToCalcSet(gen))
				covered[coverageKey(speciesName, formatID)] = true
				covered[coverageKey(set.Species, formatID)] = true

				imp.propagate(out, set, format, label, gen, false)
			}
		}
	}

	imp.importUsage(ctx, gen, sortedKeys(statsFormats), covered, out)

	return out, nil
}

// importUsage enriches the output with usage-statistics sets for every
// format that contributed curated data.
func (imp *Importer) importUsage(ctx context.Context, gen int, formatIDs []string, covered map[string]bool, out sets.SetDex) {
	log := logging.FromContext(ctx)

	for _, formatID := range formatIDs {
		stats, err := imp.usage.Statistics(ctx, formatID)
		if err != nil {
			// Statistics are optional enrichment: any failure here, not
			// just a missing page, downgrades to a note.
			log.Info().Err(err).Str("format", formatID).
				Msg("No usage statistics available")
			continue
		}

		format := imp.dex.Format(formatID)
		displayName := allowedFormats[formatID]
		if format != nil {
			displayName = format.Name
		}
		threshold := UsageThreshold(stats.Info.NumberOfBattles, formatID)
		label := stripTag(displayName) + " " + usageLabel

		for _, speciesName := range sortedKeys(stats.Data) {
			if covered[coverageKey(speciesName, formatID)] {
				continue
			}
			bucket := stats.Data[speciesName]
			if bucket.Usage < threshold {
				continue
			}
			species := imp.dex.Species(speciesName)
			if species == nil {
				log.Debug().Str("format", formatID).Str("species", speciesName).
					Msg("Skipping species unknown to the dex")
				continue
			}

			set := imp.builder.FromUsage(gen, formatID, species.Name, &bucket)
			if format != nil && !imp.validator.Validate(format, set, sourceUsage) {
				continue
			}

			out.Add(set.Species, label, set.ToCalcSet(gen))
			imp.propagate(out, set, format, label, gen, true)
		}
	}
}

// propagate copies an accepted set to its similar formes. The mega-ability
// override condition differs by source on purpose: the curated path
// overrides only targets named "-Mega", the usage path overrides whenever
// the held item is a mega stone.
func (imp *Importer) propagate(out sets.SetDex, set *sets.PokemonSet, format *dex.Format, label string, gen int, fromUsage bool) {
	species := imp.dex.Species(set.Species)
	if species == nil {
		return
	}
	item := imp.dex.Item(set.Item)

	for _, target := range SimilarFormes(set, format, species, item) {
		copied := set.Clone()
		copied.Species = target

		if fromUsage {
			if item.IsMegaStone() {
				if mega := imp.dex.Species(item.MegaStone); mega != nil {
					copied.Ability = mega.FirstAbility()
				}
			}
		} else if strings.Contains(target, "-Mega") {
			if mega := imp.dex.Species(target); mega != nil {
				copied.Ability = mega.FirstAbility()
			}
		}

		out.Add(target, label, copied.ToCalcSet(gen))
	}
}

// coverageKey identifies one (species, format) pair in the covered map.
func coverageKey(species, formatID string) string {
	return species + "|" + formatID
}

// stripTag removes the leading bracketed generation tag from a format
// display name: "[Gen 9] OU" becomes "OU".
func stripTag(name string) string {
	if strings.HasPrefix(name, "[") {
		if i := strings.Index(name, "]"); i >= 0 {
			return strings.TrimSpace(name[i+1:])
		}
	}
	return name
}

// sortedKeys returns a map's keys in ascending order, for deterministic
// iteration in logs and output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
