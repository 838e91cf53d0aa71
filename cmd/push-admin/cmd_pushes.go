// ABOUTME: Push record subcommands
// ABOUTME: Listing, inspection, retry, batch operations, and delivery stats

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/crud"
	"github.com/pushnotify/console/internal/nav"
	"github.com/pushnotify/console/internal/services"
)

var pushesCmd = &cobra.Command{
	Use:   "pushes",
	Short: "Inspect and retry push delivery records",
}

var pushesListFlags struct {
	page    int
	size    int
	filters []string
}

var pushesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List push records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RoutePushes, "pushes",
			pushesListFlags.page, pushesListFlags.size, pushesListFlags.filters, a.pushes.List)
	},
}

var pushesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one push record with its rendered content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		push, err := a.pushes.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), push)
	},
}

var pushesRetryCmd = &cobra.Command{
	Use:   "retry <id>",
	Short: "Retry a failed delivery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := a.pushes.Retry(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("retry queued")
		return nil
	},
}

var pushesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a push record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := a.pushes.Delete(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("deleted successfully")
		return nil
	},
}

var pushesBatchRetryCmd = &cobra.Command{
	Use:   "batch-retry <id>...",
	Short: "Retry several failed deliveries, best-effort",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd, args, "retried")
	},
}

var pushesBatchDeleteCmd = &cobra.Command{
	Use:   "batch-delete <id>...",
	Short: "Delete several push records, best-effort",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd, args, "deleted")
	},
}

// runBatch parses IDs, runs the batch endpoint, and reports the split
// outcome. Batches are best-effort server-side, so partial failure is a
// normal result, not an error.
func runBatch(cmd *cobra.Command, args []string, verb string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	var result *services.BatchResult
	if verb == "retried" {
		result, err = a.pushes.BatchRetry(cmd.Context(), ids)
	} else {
		result, err = a.pushes.BatchDelete(cmd.Context(), ids)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %d, failed %d\n", verb, len(result.Succeeded), len(result.Failed))
	if len(result.Failed) > 0 {
		fmt.Fprintf(out, "failed ids: %v\n", result.Failed)
		a.notifier.Error("some records failed, see output")
	}
	return nil
}

var pushesStatsFlags struct {
	start string
	end   string
}

var pushesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show delivery outcome totals over a date range",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		stats, err := a.pushes.Stats(cmd.Context(), pushesStatsFlags.start, pushesStatsFlags.end)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total:    %d\n", stats.Total)
		fmt.Fprintf(out, "Success:  %d\n", stats.Success)
		fmt.Fprintf(out, "Failed:   %d\n", stats.Failed)
		fmt.Fprintf(out, "Pending:  %d\n", stats.Pending)
		fmt.Fprintf(out, "Retrying: %d\n", stats.Retrying)
		return nil
	},
}

func init() {
	f := pushesListCmd.Flags()
	f.IntVar(&pushesListFlags.page, "page", 1, "Page number")
	f.IntVar(&pushesListFlags.size, "size", crud.DefaultPageSize, "Page size")
	f.StringArrayVar(&pushesListFlags.filters, "filter", nil, "Filter as key=value (repeatable)")

	sf := pushesStatsCmd.Flags()
	sf.StringVar(&pushesStatsFlags.start, "start", "", "Start date, YYYY-MM-DD")
	sf.StringVar(&pushesStatsFlags.end, "end", "", "End date, YYYY-MM-DD")

	pushesCmd.AddCommand(pushesListCmd)
	pushesCmd.AddCommand(pushesGetCmd)
	pushesCmd.AddCommand(pushesRetryCmd)
	pushesCmd.AddCommand(pushesDeleteCmd)
	pushesCmd.AddCommand(pushesBatchRetryCmd)
	pushesCmd.AddCommand(pushesBatchDeleteCmd)
	pushesCmd.AddCommand(pushesStatsCmd)
}
