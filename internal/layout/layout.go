// ABOUTME: Embedded TOML view manifests describing each management view
// ABOUTME: Columns, filters, and form fields drive the table and form rendering

package layout

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed views/*.toml
var viewsFS embed.FS

// Column describes one table column of a list view.
type Column struct {
	Key    string `toml:"key"`
	Label  string `toml:"label"`
	Width  int    `toml:"width"`
	Format string `toml:"format"` // "", "time", "badge", "bool"
}

// Filter describes one search input above the table.
type Filter struct {
	Key     string   `toml:"key"`
	Label   string   `toml:"label"`
	Kind    string   `toml:"kind"` // "text" or "select"
	Options []string `toml:"options"`
}

// Field describes one input of the create/edit form.
type Field struct {
	Key      string   `toml:"key"`
	Label    string   `toml:"label"`
	Kind     string   `toml:"kind"` // "text", "textarea", "select", "bool", "number"
	Required bool     `toml:"required"`
	Options  []string `toml:"options"`
}

// Manifest is the full layout of one management view.
type Manifest struct {
	View    string   `toml:"view"`
	Title   string   `toml:"title"`
	Columns []Column `toml:"columns"`
	Filters []Filter `toml:"filters"`
	Form    []Field  `toml:"form"`
}

var (
	loadOnce  sync.Once
	loadErr   error
	manifests map[string]Manifest
)

func loadAll() {
	manifests = make(map[string]Manifest)
	entries, err := viewsFS.ReadDir("views")
	if err != nil {
		loadErr = fmt.Errorf("reading embedded views: %w", err)
		return
	}
	for _, entry := range entries {
		data, err := viewsFS.ReadFile("views/" + entry.Name())
		if err != nil {
			loadErr = fmt.Errorf("reading %s: %w", entry.Name(), err)
			return
		}
		var m Manifest
		if _, err := toml.Decode(string(data), &m); err != nil {
			loadErr = fmt.Errorf("parsing %s: %w", entry.Name(), err)
			return
		}
		if m.View == "" {
			loadErr = fmt.Errorf("%s: view name is required", entry.Name())
			return
		}
		manifests[m.View] = m
	}
}

// Load returns the manifest for the named view.
func Load(view string) (Manifest, error) {
	loadOnce.Do(loadAll)
	if loadErr != nil {
		return Manifest{}, loadErr
	}
	m, ok := manifests[view]
	if !ok {
		return Manifest{}, fmt.Errorf("no layout for view %q", view)
	}
	return m, nil
}

// All returns every manifest, sorted by view name.
func All() ([]Manifest, error) {
	loadOnce.Do(loadAll)
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]Manifest, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].View < out[j].View })
	return out, nil
}
