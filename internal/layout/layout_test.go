// ABOUTME: Tests for the embedded view manifests
// ABOUTME: Verifies every resource view parses and carries sane column specs

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EveryResourceViewExists(t *testing.T) {
	for _, view := range []string{
		"repos", "targets", "templates", "prompts",
		"models", "users", "pushes", "logs",
	} {
		m, err := Load(view)
		require.NoError(t, err, "view %s", view)
		assert.Equal(t, view, m.View)
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Columns)
	}
}

func TestLoad_UnknownView(t *testing.T) {
	_, err := Load("no-such-view")
	assert.Error(t, err)
}

func TestLoad_ColumnsHaveKeysAndLabels(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for _, m := range all {
		for _, col := range m.Columns {
			assert.NotEmpty(t, col.Key, "%s column missing key", m.View)
			assert.NotEmpty(t, col.Label, "%s column %s missing label", m.View, col.Key)
		}
		for _, f := range m.Filters {
			assert.Contains(t, []string{"text", "select"}, f.Kind, "%s filter %s", m.View, f.Key)
			if f.Kind == "select" {
				assert.NotEmpty(t, f.Options, "%s select filter %s needs options", m.View, f.Key)
			}
		}
	}
}

func TestLoad_ReposFormMarksRequiredFields(t *testing.T) {
	m, err := Load("repos")
	require.NoError(t, err)

	required := map[string]bool{}
	for _, f := range m.Form {
		if f.Required {
			required[f.Key] = true
		}
	}
	assert.True(t, required["name"])
	assert.True(t, required["url"])
	assert.True(t, required["type"])
}

func TestAll_SortedByView(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].View, all[i].View)
	}
}
