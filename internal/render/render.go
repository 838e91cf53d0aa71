// ABOUTME: Markdown rendering for template and prompt content previews
// ABOUTME: Converts markdown to HTML and to a plain-text terminal form

package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

// Markdown converts markdown source to HTML. Template and prompt bodies are
// authored in markdown; this backs their preview.
func Markdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

var (
	tagPattern    = regexp.MustCompile(`<[^>]+>`)
	blankPattern  = regexp.MustCompile(`\n{3,}`)
	entityReplace = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// Plain converts markdown to plain text suitable for a terminal preview:
// rendered to HTML first so markdown structure is honored, then stripped.
func Plain(source string) (string, error) {
	html, err := Markdown(source)
	if err != nil {
		return "", err
	}
	text := tagPattern.ReplaceAllString(html, "")
	text = entityReplace.Replace(text)
	text = blankPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text), nil
}
