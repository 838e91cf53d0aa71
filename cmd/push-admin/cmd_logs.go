// ABOUTME: Log viewing subcommands: system, operation, and AI call logs
// ABOUTME: Plus full-text search, export, and volume stats

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/crud"
	"github.com/pushnotify/console/internal/nav"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View system, operation, and AI call logs",
}

var logsListFlags struct {
	page    int
	size    int
	filters []string
}

var logsSystemCmd = &cobra.Command{
	Use:   "system",
	Short: "List system logs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RouteSystemLog, "logs",
			logsListFlags.page, logsListFlags.size, logsListFlags.filters, a.logs.System)
	},
}

var logsOperationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List operation audit logs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RouteOperationLog, "logs",
			logsListFlags.page, logsListFlags.size, logsListFlags.filters, a.logs.Operations)
	},
}

var logsAICmd = &cobra.Command{
	Use:   "ai-calls",
	Short: "List AI call logs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RouteAICallLog, "logs",
			logsListFlags.page, logsListFlags.size, logsListFlags.filters, a.logs.AICalls)
	},
}

var logsSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search across all log types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := ensureRoute(cmd, a, nav.RouteSystemLog); err != nil {
			return err
		}
		q, err := buildQuery(logsListFlags.page, logsListFlags.size, logsListFlags.filters)
		if err != nil {
			return err
		}
		page, err := a.logs.Search(cmd.Context(), args[0], q)
		if err != nil {
			return err
		}
		for _, entry := range page.List {
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s/%s] %s\n",
				entry.CreatedAt.Local().Format("2006-01-02 15:04:05"), entry.Type, entry.Level, entry.Message)
		}
		printPagination(cmd.OutOrStdout(), page.Pagination)
		return nil
	},
}

var logsExportFlags struct {
	logType string
	start   string
	end     string
	format  string
}

var logsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export logs and print the download URL",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		url, err := a.logs.Export(cmd.Context(), logsExportFlags.logType,
			logsExportFlags.start, logsExportFlags.end, logsExportFlags.format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

var logsStatsFlags struct {
	start string
	end   string
}

var logsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show log volume per level and type",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		stats, err := a.logs.Stats(cmd.Context(), logsStatsFlags.start, logsStatsFlags.end)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total: %d\n", stats.Total)
		fmt.Fprintln(out, "By level:")
		printCounts(out, stats.ByLevel)
		fmt.Fprintln(out, "By type:")
		printCounts(out, stats.ByType)
		return nil
	},
}

func printCounts(out io.Writer, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %s: %d\n", k, counts[k])
	}
}

func init() {
	for _, c := range []*cobra.Command{logsSystemCmd, logsOperationsCmd, logsAICmd, logsSearchCmd} {
		f := c.Flags()
		f.IntVar(&logsListFlags.page, "page", 1, "Page number")
		f.IntVar(&logsListFlags.size, "size", crud.DefaultPageSize, "Page size")
		f.StringArrayVar(&logsListFlags.filters, "filter", nil, "Filter as key=value (repeatable)")
	}

	ef := logsExportCmd.Flags()
	ef.StringVar(&logsExportFlags.logType, "type", "system", "Log type: system, operation, or ai_call")
	ef.StringVar(&logsExportFlags.start, "start", "", "Start time, RFC 3339")
	ef.StringVar(&logsExportFlags.end, "end", "", "End time, RFC 3339")
	ef.StringVar(&logsExportFlags.format, "format", "csv", "Export format: csv or json")

	sf := logsStatsCmd.Flags()
	sf.StringVar(&logsStatsFlags.start, "start", "", "Start date, YYYY-MM-DD")
	sf.StringVar(&logsStatsFlags.end, "end", "", "End date, YYYY-MM-DD")

	logsCmd.AddCommand(logsSystemCmd)
	logsCmd.AddCommand(logsOperationsCmd)
	logsCmd.AddCommand(logsAICmd)
	logsCmd.AddCommand(logsSearchCmd)
	logsCmd.AddCommand(logsExportCmd)
	logsCmd.AddCommand(logsStatsCmd)
}
