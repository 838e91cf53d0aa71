// ABOUTME: Repository management subcommands
// ABOUTME: CRUD plus webhook testing and target binding

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/crud"
	"github.com/pushnotify/console/internal/nav"
	"github.com/pushnotify/console/internal/services"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Manage monitored repositories",
}

var reposListFlags struct {
	page    int
	size    int
	filters []string
}

var reposListCmd = &cobra.Command{
	Use:   "list",
	Short: "List repositories",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RouteRepos, "repos",
			reposListFlags.page, reposListFlags.size, reposListFlags.filters, a.repos.List)
	},
}

var reposGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one repository",
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
		repo, err := a.repos.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), repo)
	},
}

var reposDraft string

var reposCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a repository from a JSON draft",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		draft, err := decodeDraft[services.Repo](reposDraft)
		if err != nil {
			return err
		}
		created, err := a.repos.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}
		a.notifier.Success("created successfully")
		return printJSON(cmd.OutOrStdout(), created)
	},
}

var reposUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a repository from a JSON draft",
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
		draft, err := decodeDraft[services.Repo](reposDraft)
		if err != nil {
			return err
		}
		updated, err := a.repos.Update(cmd.Context(), id, draft)
		if err != nil {
			return err
		}
		a.notifier.Success("updated successfully")
		return printJSON(cmd.OutOrStdout(), updated)
	},
}

var reposDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a repository",
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
		if err := a.repos.Delete(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("deleted successfully")
		return nil
	},
}

var reposTestCmd = &cobra.Command{
	Use:   "test-webhook <id>",
	Short: "Send a test event through the repository's webhook",
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
		if err := a.repos.TestWebhook(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("webhook test sent")
		return nil
	},
}

var reposTargetsCmd = &cobra.Command{
	Use:   "targets <id>",
	Short: "List the push targets bound to a repository",
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
		targets, err := a.repos.Targets(cmd.Context(), id)
		if err != nil {
			return err
		}
		for _, t := range targets {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", t.ID, t.Name, t.Type, t.Status)
		}
		return nil
	},
}

var reposBindCmd = &cobra.Command{
	Use:   "add-target <repo-id> <target-id>",
	Short: "Bind a push target to a repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		repoID, err := parseID(args[0])
		if err != nil {
			return err
		}
		targetID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := a.repos.AddTarget(cmd.Context(), repoID, targetID); err != nil {
			return err
		}
		a.notifier.Success("target bound")
		return nil
	},
}

var reposUnbindCmd = &cobra.Command{
	Use:   "remove-target <repo-id> <target-id>",
	Short: "Unbind a push target from a repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		repoID, err := parseID(args[0])
		if err != nil {
			return err
		}
		targetID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := a.repos.RemoveTarget(cmd.Context(), repoID, targetID); err != nil {
			return err
		}
		a.notifier.Success("target unbound")
		return nil
	},
}

func init() {
	f := reposListCmd.Flags()
	f.IntVar(&reposListFlags.page, "page", 1, "Page number")
	f.IntVar(&reposListFlags.size, "size", crud.DefaultPageSize, "Page size")
	f.StringArrayVar(&reposListFlags.filters, "filter", nil, "Filter as key=value (repeatable)")

	reposCreateCmd.Flags().StringVar(&reposDraft, "json", "", "Repository draft as JSON")
	reposUpdateCmd.Flags().StringVar(&reposDraft, "json", "", "Repository draft as JSON")

	reposCmd.AddCommand(reposListCmd)
	reposCmd.AddCommand(reposGetCmd)
	reposCmd.AddCommand(reposCreateCmd)
	reposCmd.AddCommand(reposUpdateCmd)
	reposCmd.AddCommand(reposDeleteCmd)
	reposCmd.AddCommand(reposTestCmd)
	reposCmd.AddCommand(reposTargetsCmd)
	reposCmd.AddCommand(reposBindCmd)
	reposCmd.AddCommand(reposUnbindCmd)
}
