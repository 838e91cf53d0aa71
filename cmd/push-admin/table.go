// ABOUTME: Table rendering for list views driven by the embedded layout manifests
// ABOUTME: Rows pass through their JSON form so column keys match the wire names

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/pushnotify/console/internal/layout"
	"github.com/pushnotify/console/internal/services"
)

var (
	badgeGood = color.New(color.FgGreen)
	badgeBad  = color.New(color.FgRed)
	badgeWarn = color.New(color.FgYellow)
)

// renderTable writes rows under the manifest's columns. Rows are marshalled
// to their JSON form first so manifest keys address the same names the
// server uses.
func renderTable[T any](w io.Writer, m layout.Manifest, rows []T) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	headers := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		headers[i] = strings.ToUpper(col.Label)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, row := range rows {
		fields, err := rowFields(row)
		if err != nil {
			return err
		}
		cells := make([]string, len(m.Columns))
		for i, col := range m.Columns {
			cells[i] = formatCell(col, fields[col.Key])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

func rowFields(row any) (map[string]any, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encoding row: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decoding row: %w", err)
	}
	return fields, nil
}

func formatCell(col layout.Column, value any) string {
	if value == nil {
		return "-"
	}

	switch col.Format {
	case "time":
		if s, ok := value.(string); ok {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return t.Local().Format("2006-01-02 15:04")
			}
		}
	case "bool":
		if b, ok := value.(bool); ok {
			if b {
				return "yes"
			}
			return "no"
		}
	case "badge":
		if s, ok := value.(string); ok {
			return badge(s)
		}
	}

	switch v := value.(type) {
	case string:
		return truncate(v, col.Width)
	case float64:
		// JSON numbers arrive as float64; IDs and counts are integral
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func badge(s string) string {
	switch s {
	case "active", "success", "info":
		return badgeGood.Sprint(s)
	case "failed", "error", "locked", "disabled":
		return badgeBad.Sprint(s)
	case "pending", "warn":
		return badgeWarn.Sprint(s)
	default:
		return s
	}
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

// printPagination writes the standard footer below every list table.
func printPagination(w io.Writer, p services.Pagination) {
	fmt.Fprintf(w, "\npage %d/%d, %d total\n", p.Page, p.TotalPages, p.Total)
}

// printJSON pretty-prints a single record for the get subcommands.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// decodeDraft parses the --json draft used by create and update.
func decodeDraft[T any](raw string) (T, error) {
	var draft T
	if raw == "" {
		return draft, fmt.Errorf("a JSON draft is required, pass --json")
	}
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return draft, fmt.Errorf("parsing draft: %w", err)
	}
	return draft, nil
}
