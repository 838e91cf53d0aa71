// ABOUTME: Message template subcommands
// ABOUTME: CRUD plus preview, rollback, status toggle, test send, and AI generation

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/crud"
	"github.com/pushnotify/console/internal/nav"
	"github.com/pushnotify/console/internal/render"
	"github.com/pushnotify/console/internal/services"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage message templates",
}

var templatesListFlags struct {
	page    int
	size    int
	filters []string
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List message templates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RouteTemplates, "templates",
			templatesListFlags.page, templatesListFlags.size, templatesListFlags.filters, a.templates.List)
	},
}

var templatesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one template",
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
		tpl, err := a.templates.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), tpl)
	},
}

var templatesPreviewCmd = &cobra.Command{
	Use:   "preview <id>",
	Short: "Render a template's markdown body for the terminal",
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
		tpl, err := a.templates.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		text, err := render.Plain(tpl.Content)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", tpl.Title, text)
		return nil
	},
}

var templatesDraft string

var templatesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a template from a JSON draft",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		draft, err := decodeDraft[services.Template](templatesDraft)
		if err != nil {
			return err
		}
		created, err := a.templates.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}
		a.notifier.Success("created successfully")
		return printJSON(cmd.OutOrStdout(), created)
	},
}

var templatesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a template from a JSON draft",
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
		draft, err := decodeDraft[services.Template](templatesDraft)
		if err != nil {
			return err
		}
		updated, err := a.templates.Update(cmd.Context(), id, draft)
		if err != nil {
			return err
		}
		a.notifier.Success("updated successfully")
		return printJSON(cmd.OutOrStdout(), updated)
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template",
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
		if err := a.templates.Delete(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("deleted successfully")
		return nil
	},
}

var templatesStatusCmd = &cobra.Command{
	Use:   "set-status <id> <active|disabled>",
	Short: "Enable or disable a template",
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
		if err := a.templates.SetStatus(cmd.Context(), id, args[1]); err != nil {
			return err
		}
		a.notifier.Success("status updated")
		return nil
	},
}

var templatesRollbackCmd = &cobra.Command{
	Use:   "rollback <id> <version>",
	Short: "Roll a template back to an earlier version",
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
		if err := a.templates.Rollback(cmd.Context(), id, version); err != nil {
			return err
		}
		a.notifier.Success(fmt.Sprintf("rolled back to version %d", version))
		return nil
	},
}

var templatesTestCmd = &cobra.Command{
	Use:   "test <id> <target-id>",
	Short: "Send a template test message to a target",
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
		targetID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := a.templates.Test(cmd.Context(), id, targetID); err != nil {
			return err
		}
		a.notifier.Success("test message sent")
		return nil
	},
}

var generateFlags struct {
	templateType string
	scene        string
	description  string
}

var templatesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a template draft with the configured AI model",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		tpl, err := a.templates.Generate(cmd.Context(), services.GenerateTemplateRequest{
			Type:        generateFlags.templateType,
			Scene:       generateFlags.scene,
			Description: generateFlags.description,
		})
		if err != nil {
			return err
		}
		a.notifier.Success("template generated")
		return printJSON(cmd.OutOrStdout(), tpl)
	},
}

func init() {
	f := templatesListCmd.Flags()
	f.IntVar(&templatesListFlags.page, "page", 1, "Page number")
	f.IntVar(&templatesListFlags.size, "size", crud.DefaultPageSize, "Page size")
	f.StringArrayVar(&templatesListFlags.filters, "filter", nil, "Filter as key=value (repeatable)")

	templatesCreateCmd.Flags().StringVar(&templatesDraft, "json", "", "Template draft as JSON")
	templatesUpdateCmd.Flags().StringVar(&templatesDraft, "json", "", "Template draft as JSON")

	gf := templatesGenerateCmd.Flags()
	gf.StringVar(&generateFlags.templateType, "type", "", "Template type: dingtalk or email (required)")
	gf.StringVar(&generateFlags.scene, "scene", "", "Scene: commit_notify or review_notify (required)")
	gf.StringVar(&generateFlags.description, "description", "", "What the template should say (required)")
	_ = templatesGenerateCmd.MarkFlagRequired("type")
	_ = templatesGenerateCmd.MarkFlagRequired("scene")
	_ = templatesGenerateCmd.MarkFlagRequired("description")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesGetCmd)
	templatesCmd.AddCommand(templatesPreviewCmd)
	templatesCmd.AddCommand(templatesCreateCmd)
	templatesCmd.AddCommand(templatesUpdateCmd)
	templatesCmd.AddCommand(templatesDeleteCmd)
	templatesCmd.AddCommand(templatesStatusCmd)
	templatesCmd.AddCommand(templatesRollbackCmd)
	templatesCmd.AddCommand(templatesTestCmd)
	templatesCmd.AddCommand(templatesGenerateCmd)
}
