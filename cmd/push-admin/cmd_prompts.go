// ABOUTME: AI prompt subcommands
// ABOUTME: CRUD plus test runs, rollback, and export/import

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/crud"
	"github.com/pushnotify/console/internal/nav"
	"github.com/pushnotify/console/internal/render"
	"github.com/pushnotify/console/internal/services"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage AI prompts",
}

var promptsListFlags struct {
	page    int
	size    int
	filters []string
}

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RoutePrompts, "prompts",
			promptsListFlags.page, promptsListFlags.size, promptsListFlags.filters, a.prompts.List)
	},
}

var promptsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one prompt",
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
		prompt, err := a.prompts.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), prompt)
	},
}

var promptsDraft string

var promptsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a prompt from a JSON draft",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		draft, err := decodeDraft[services.Prompt](promptsDraft)
		if err != nil {
			return err
		}
		created, err := a.prompts.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}
		a.notifier.Success("created successfully")
		return printJSON(cmd.OutOrStdout(), created)
	},
}

var promptsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a prompt from a JSON draft",
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
		draft, err := decodeDraft[services.Prompt](promptsDraft)
		if err != nil {
			return err
		}
		updated, err := a.prompts.Update(cmd.Context(), id, draft)
		if err != nil {
			return err
		}
		a.notifier.Success("updated successfully")
		return printJSON(cmd.OutOrStdout(), updated)
	},
}

var promptsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a prompt",
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
		if err := a.prompts.Delete(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("deleted successfully")
		return nil
	},
}

var promptsTestData string

var promptsTestCmd = &cobra.Command{
	Use:   "test <id>",
	Short: "Run a prompt against sample data and show the output",
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
		output, err := a.prompts.Test(cmd.Context(), id, promptsTestData)
		if err != nil {
			return err
		}
		text, err := render.Plain(output)
		if err != nil {
			// Model output is not always markdown; show it raw
			text = output
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var promptsRollbackCmd = &cobra.Command{
	Use:   "rollback <id> <version>",
	Short: "Roll a prompt back to an earlier version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		version, err := strconv.Atoi(args[1])
		if err != nil || version < 1 {
			return fmt.Errorf("invalid version %q", args[1])
		}
		if err := a.prompts.Rollback(cmd.Context(), id, version); err != nil {
			return err
		}
		a.notifier.Success(fmt.Sprintf("rolled back to version %d", version))
		return nil
	},
}

var promptsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a prompt as a portable JSON document",
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
		doc, err := a.prompts.Export(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		return nil
	},
}

var promptsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a prompt from an exported JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		prompt, err := a.prompts.Import(cmd.Context(), json.RawMessage(data))
		if err != nil {
			return err
		}
		a.notifier.Success("prompt imported")
		return printJSON(cmd.OutOrStdout(), prompt)
	},
}

func init() {
	f := promptsListCmd.Flags()
	f.IntVar(&promptsListFlags.page, "page", 1, "Page number")
	f.IntVar(&promptsListFlags.size, "size", crud.DefaultPageSize, "Page size")
	f.StringArrayVar(&promptsListFlags.filters, "filter", nil, "Filter as key=value (repeatable)")

	promptsCreateCmd.Flags().StringVar(&promptsDraft, "json", "", "Prompt draft as JSON")
	promptsUpdateCmd.Flags().StringVar(&promptsDraft, "json", "", "Prompt draft as JSON")
	promptsTestCmd.Flags().StringVar(&promptsTestData, "data", "", "Sample input for the test run")

	promptsCmd.AddCommand(promptsListCmd)
	promptsCmd.AddCommand(promptsGetCmd)
	promptsCmd.AddCommand(promptsCreateCmd)
	promptsCmd.AddCommand(promptsUpdateCmd)
	promptsCmd.AddCommand(promptsDeleteCmd)
	promptsCmd.AddCommand(promptsTestCmd)
	promptsCmd.AddCommand(promptsRollbackCmd)
	promptsCmd.AddCommand(promptsExportCmd)
	promptsCmd.AddCommand(promptsImportCmd)
}
