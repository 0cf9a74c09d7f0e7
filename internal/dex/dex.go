// Package dex provides the embedded reference database: species, items,
// abilities, and formats loaded from YAML data files compiled into the
// binary. It implements the pkg/dex.Dex interface; all lookups are
// id-normalized, so "Choice Scarf" and "choicescarf" resolve identically.
package dex

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	dexpkg "github.com/agentstation/setmap/pkg/dex"
	"github.com/agentstation/setmap/pkg/errors"
)

// Dex is the embedded reference database.
type Dex struct {
	species   map[string]*dexpkg.Species
	items     map[string]*dexpkg.Item
	abilities map[string]*dexpkg.Ability
	formats   map[string]*dexpkg.Format
}

// New loads the embedded data files.
func New() (*Dex, error) {
	d := &Dex{
		species:   make(map[string]*dexpkg.Species),
		items:     make(map[string]*dexpkg.Item),
		abilities: make(map[string]*dexpkg.Ability),
		formats:   make(map[string]*dexpkg.Format),
	}

	if err := load(FS, "data/species.yaml", func(s *dexpkg.Species) {
		d.species[dexpkg.ToID(s.Name)] = s
	}); err != nil {
		return nil, err
	}
	if err := load(FS, "data/items.yaml", func(i *dexpkg.Item) {
		d.items[dexpkg.ToID(i.Name)] = i
	}); err != nil {
		return nil, err
	}
	if err := load(FS, "data/abilities.yaml", func(a *dexpkg.Ability) {
		d.abilities[dexpkg.ToID(a.Name)] = a
	}); err != nil {
		return nil, err
	}
	if err := load(FS, "data/formats.yaml", func(f *dexpkg.Format) {
		if f.Name == "" {
			f.Name = synthesizeFormatName(f.ID, f.Generation)
		}
		d.formats[f.ID] = f
	}); err != nil {
		return nil, err
	}

	return d, nil
}

// load reads one YAML data file as a list of T and indexes each entry.
func load[T any](fsys fs.FS, path string, index func(*T)) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	var entries []T
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	for i := range entries {
		index(&entries[i])
	}
	return nil
}

// Species looks up a species or forme by name or id.
func (d *Dex) Species(name string) *dexpkg.Species {
	return d.species[dexpkg.ToID(name)]
}

// Item looks up an item by name or id.
func (d *Dex) Item(name string) *dexpkg.Item {
	return d.items[dexpkg.ToID(name)]
}

// Ability looks up an ability by name or id.
func (d *Dex) Ability(name string) *dexpkg.Ability {
	return d.abilities[dexpkg.ToID(name)]
}

// Format looks up a format by id.
func (d *Dex) Format(id string) *dexpkg.Format {
	return d.formats[dexpkg.ToID(id)]
}

// synthesizeFormatName builds a "[Gen N] Suffix" display name from a format
// id that lacks one in the data files.
func synthesizeFormatName(id string, gen int) string {
	suffix := strings.TrimPrefix(id, fmt.Sprintf("gen%d", gen))
	if suffix == "" {
		suffix = id
	}
	title := cases.Title(language.English).String(suffix)
	return fmt.Sprintf("[Gen %d] %s", gen, title)
}
