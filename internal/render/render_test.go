// ABOUTME: Tests for markdown preview rendering

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_BasicStructure(t *testing.T) {
	html, err := Markdown("# Release\n\nNew commit on **main**.")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Release</h1>")
	assert.Contains(t, html, "<strong>main</strong>")
}

func TestMarkdown_EmptyInput(t *testing.T) {
	html, err := Markdown("")
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestPlain_StripsMarkup(t *testing.T) {
	text, err := Plain("# Release\n\n- commit `abc123`\n- by **alice**")
	require.NoError(t, err)

	assert.Contains(t, text, "Release")
	assert.Contains(t, text, "abc123")
	assert.Contains(t, text, "alice")
	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "**")
}

func TestPlain_UnescapesEntities(t *testing.T) {
	text, err := Plain("a > b & c < d")
	require.NoError(t, err)
	assert.Contains(t, text, "a > b & c < d")
}
