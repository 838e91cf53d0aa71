// ABOUTME: AI model subcommands
// ABOUTME: CRUD plus default selection, connectivity verification, and call logs

package main

import (
	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/crud"
	"github.com/pushnotify/console/internal/layout"
	"github.com/pushnotify/console/internal/nav"
	"github.com/pushnotify/console/internal/services"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Manage AI model endpoints",
}

var modelsListFlags struct {
	page    int
	size    int
	filters []string
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List AI models",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RouteModels, "models",
			modelsListFlags.page, modelsListFlags.size, modelsListFlags.filters, a.models.List)
	},
}

var modelsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one model",
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
		model, err := a.models.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), model)
	},
}

var modelsDraft string

var modelsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a model from a JSON draft",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		draft, err := decodeDraft[services.AIModel](modelsDraft)
		if err != nil {
			return err
		}
		created, err := a.models.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}
		a.notifier.Success("created successfully")
		return printJSON(cmd.OutOrStdout(), created)
	},
}

var modelsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a model from a JSON draft",
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
		draft, err := decodeDraft[services.AIModel](modelsDraft)
		if err != nil {
			return err
		}
		updated, err := a.models.Update(cmd.Context(), id, draft)
		if err != nil {
			return err
		}
		a.notifier.Success("updated successfully")
		return printJSON(cmd.OutOrStdout(), updated)
	},
}

var modelsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a model",
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
		if err := a.models.Delete(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("deleted successfully")
		return nil
	},
}

var modelsDefaultCmd = &cobra.Command{
	Use:   "set-default <id>",
	Short: "Make a model the default for new work",
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
		if err := a.models.SetDefault(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("default model updated")
		return nil
	},
}

var modelsVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Verify the model endpoint is reachable with its key",
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
		if err := a.models.Verify(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("model verified")
		return nil
	},
}

var modelsLogsFlags struct {
	page int
	size int
}

var modelsLogsCmd = &cobra.Command{
	Use:   "logs <id>",
	Short: "Show the call log of one model",
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
		q, err := buildQuery(modelsLogsFlags.page, modelsLogsFlags.size, nil)
		if err != nil {
			return err
		}
		page, err := a.models.Logs(cmd.Context(), id, q)
		if err != nil {
			return err
		}
		m, err := layout.Load("logs")
		if err != nil {
			return err
		}
		if err := renderTable(cmd.OutOrStdout(), m, page.List); err != nil {
			return err
		}
		printPagination(cmd.OutOrStdout(), page.Pagination)
		return nil
	},
}

func init() {
	f := modelsListCmd.Flags()
	f.IntVar(&modelsListFlags.page, "page", 1, "Page number")
	f.IntVar(&modelsListFlags.size, "size", crud.DefaultPageSize, "Page size")
	f.StringArrayVar(&modelsListFlags.filters, "filter", nil, "Filter as key=value (repeatable)")

	modelsCreateCmd.Flags().StringVar(&modelsDraft, "json", "", "Model draft as JSON")
	modelsUpdateCmd.Flags().StringVar(&modelsDraft, "json", "", "Model draft as JSON")

	lf := modelsLogsCmd.Flags()
	lf.IntVar(&modelsLogsFlags.page, "page", 1, "Page number")
	lf.IntVar(&modelsLogsFlags.size, "size", crud.DefaultPageSize, "Page size")

	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsGetCmd)
	modelsCmd.AddCommand(modelsCreateCmd)
	modelsCmd.AddCommand(modelsUpdateCmd)
	modelsCmd.AddCommand(modelsDeleteCmd)
	modelsCmd.AddCommand(modelsDefaultCmd)
	modelsCmd.AddCommand(modelsVerifyCmd)
	modelsCmd.AddCommand(modelsLogsCmd)
}
