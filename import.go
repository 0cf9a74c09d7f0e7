package setmap

import (
	"context"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/setmap/pkg/logging"
)

// Importer runs the batch import: one pipeline pass and one artifact per
// requested generation.
type Importer interface {
	Import(ctx context.Context, dir string) (*Result, error)
}

// Result summarizes one batch run.
type Result struct {
	StartedAt   utc.Time
	CompletedAt utc.Time
	Generations []*GenerationResult
}

// GenerationResult summarizes one generation's import.
type GenerationResult struct {
	Generation int
	Species    int
	Sets       int
	Path       string
}

// Duration returns the wall-clock time of the run.
func (r *Result) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}

// Sets returns the total number of sets written across all generations.
func (r *Result) Sets() int {
	total := 0
	for _, gr := range r.Generations {
		total += gr.Sets
	}
	return total
}

// Import runs the pipeline for every configured generation and writes one
// data file per generation into dir. The first failed generation aborts
// the run; an empty generation still produces its (empty) artifact so the
// output directory is complete.
func (c *client) Import(ctx context.Context, dir string) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, c.options.logger)
	log := c.options.logger

	if err := checkOutputDir(dir); err != nil {
		return nil, err
	}

	result := &Result{StartedAt: utc.Now()}

	for _, gen := range c.options.generations {
		log.Info().Int("generation", gen).Msg("Importing generation")

		setdex, err := c.importer.ImportGeneration(ctx, gen)
		if err != nil {
			return nil, err
		}

		path, err := writeArtifact(dir, gen, setdex)
		if err != nil {
			return nil, err
		}

		gr := &GenerationResult{
			Generation: gen,
			Species:    len(setdex),
			Path:       path,
		}
		for _, labels := range setdex {
			gr.Sets += len(labels)
		}
		result.Generations = append(result.Generations, gr)

		log.Info().
			Int("generation", gen).
			Int("species", gr.Species).
			Int("sets", gr.Sets).
			Str("path", path).
			Msg("Generation imported")
	}

	result.CompletedAt = utc.Now()
	log.Info().
		Int("generations", len(result.Generations)).
		Int("sets", result.Sets()).
		Dur("duration", result.Duration()).
		Msg("Import complete")

	return result, nil
}
