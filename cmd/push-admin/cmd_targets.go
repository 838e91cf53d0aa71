// ABOUTME: Push target management subcommands
// ABOUTME: CRUD plus delivery testing and repo binding

package main

import (
	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/crud"
	"github.com/pushnotify/console/internal/nav"
	"github.com/pushnotify/console/internal/services"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Manage push delivery targets",
}

var targetsListFlags struct {
	page    int
	size    int
	filters []string
}

var targetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List push targets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RouteTargets, "targets",
			targetsListFlags.page, targetsListFlags.size, targetsListFlags.filters, a.targets.List)
	},
}

var targetsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one push target",
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
		target, err := a.targets.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), target)
	},
}

var targetsDraft string

var targetsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a push target from a JSON draft",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		draft, err := decodeDraft[services.Target](targetsDraft)
		if err != nil {
			return err
		}
		created, err := a.targets.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}
		a.notifier.Success("created successfully")
		return printJSON(cmd.OutOrStdout(), created)
	},
}

var targetsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a push target from a JSON draft",
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
		draft, err := decodeDraft[services.Target](targetsDraft)
		if err != nil {
			return err
		}
		updated, err := a.targets.Update(cmd.Context(), id, draft)
		if err != nil {
			return err
		}
		a.notifier.Success("updated successfully")
		return printJSON(cmd.OutOrStdout(), updated)
	},
}

var targetsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a push target",
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
		if err := a.targets.Delete(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("deleted successfully")
		return nil
	},
}

var targetsTestCmd = &cobra.Command{
	Use:   "test <id>",
	Short: "Send a test message through a target",
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
		if err := a.targets.Test(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("test message sent")
		return nil
	},
}

var targetsAddReposCmd = &cobra.Command{
	Use:   "add-repos <target-id> <repo-id>...",
	Short: "Bind repositories to a target",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		targetID, err := parseID(args[0])
		if err != nil {
			return err
		}
		repoIDs := make([]int64, 0, len(args)-1)
		for _, arg := range args[1:] {
			id, err := parseID(arg)
			if err != nil {
				return err
			}
			repoIDs = append(repoIDs, id)
		}
		if err := a.targets.AddRepos(cmd.Context(), targetID, repoIDs); err != nil {
			return err
		}
		a.notifier.Success("repositories bound")
		return nil
	},
}

func init() {
	f := targetsListCmd.Flags()
	f.IntVar(&targetsListFlags.page, "page", 1, "Page number")
	f.IntVar(&targetsListFlags.size, "size", crud.DefaultPageSize, "Page size")
	f.StringArrayVar(&targetsListFlags.filters, "filter", nil, "Filter as key=value (repeatable)")

	targetsCreateCmd.Flags().StringVar(&targetsDraft, "json", "", "Target draft as JSON")
	targetsUpdateCmd.Flags().StringVar(&targetsDraft, "json", "", "Target draft as JSON")

	targetsCmd.AddCommand(targetsListCmd)
	targetsCmd.AddCommand(targetsGetCmd)
	targetsCmd.AddCommand(targetsCreateCmd)
	targetsCmd.AddCommand(targetsUpdateCmd)
	targetsCmd.AddCommand(targetsDeleteCmd)
	targetsCmd.AddCommand(targetsTestCmd)
	targetsCmd.AddCommand(targetsAddReposCmd)
}
