// ABOUTME: Tests for manifest-driven table rendering

package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushnotify/console/internal/layout"
	"github.com/pushnotify/console/internal/services"
)

func TestRenderTable_PromptsGolden(t *testing.T) {
	color.NoColor = true

	m, err := layout.Load("prompts")
	require.NoError(t, err)

	rows := []services.Prompt{
		{ID: 1, Name: "commit-summary", Type: "message", Scene: "commit_notify", Version: 3},
		{ID: 2, Name: "code-review", Type: "codeview", Language: "go", Version: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, m, rows))

	g := goldie.New(t)
	g.Assert(t, "prompts_table", buf.Bytes())
}

func TestFormatCell_MissingValueIsDash(t *testing.T) {
	col := layout.Column{Key: "scene", Width: 10}
	assert.Equal(t, "-", formatCell(col, nil))
}

func TestFormatCell_IntegralNumbers(t *testing.T) {
	col := layout.Column{Key: "id", Width: 6}
	// JSON decoding hands numbers over as float64
	assert.Equal(t, "42", formatCell(col, float64(42)))
}

func TestFormatCell_BoolFormat(t *testing.T) {
	col := layout.Column{Key: "is_default", Format: "bool"}
	assert.Equal(t, "yes", formatCell(col, true))
	assert.Equal(t, "no", formatCell(col, false))
}

func TestTruncate_LongValues(t *testing.T) {
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmno", 10))
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc", truncate("abc", 3), "width too small to truncate")
}

func TestBadge_NoColorPassthrough(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, "active", badge("active"))
	assert.Equal(t, "failed", badge("failed"))
	assert.Equal(t, "custom", badge("custom"))
}

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters([]string{"status=active", "keyword=web"})
	require.NoError(t, err)
	assert.Equal(t, "active", filters["status"])
	assert.Equal(t, "web", filters["keyword"])

	_, err = parseFilters([]string{"not-a-pair"})
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("17")
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		_, err := parseID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
