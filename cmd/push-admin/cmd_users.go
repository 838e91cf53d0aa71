// ABOUTME: User management subcommands, admin-only
// ABOUTME: CRUD plus password reset and account locking

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/crud"
	"github.com/pushnotify/console/internal/nav"
	"github.com/pushnotify/console/internal/services"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage console accounts (admin only)",
}

var usersListFlags struct {
	page    int
	size    int
	filters []string
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return listResource(cmd, a, nav.RouteUsers, "users",
			usersListFlags.page, usersListFlags.size, usersListFlags.filters, a.users.List)
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := ensureRoute(cmd, a, nav.RouteUsers); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		user, err := a.users.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), user)
	},
}

var usersDraft string

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account from a JSON draft",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := ensureRoute(cmd, a, nav.RouteUsers); err != nil {
			return err
		}
		draft, err := decodeDraft[services.User](usersDraft)
		if err != nil {
			return err
		}
		created, err := a.users.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}
		a.notifier.Success("created successfully")
		return printJSON(cmd.OutOrStdout(), created)
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an account from a JSON draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := ensureRoute(cmd, a, nav.RouteUsers); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		draft, err := decodeDraft[services.User](usersDraft)
		if err != nil {
			return err
		}
		updated, err := a.users.Update(cmd.Context(), id, draft)
		if err != nil {
			return err
		}
		a.notifier.Success("updated successfully")
		return printJSON(cmd.OutOrStdout(), updated)
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := ensureRoute(cmd, a, nav.RouteUsers); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := a.users.Delete(cmd.Context(), id); err != nil {
			return err
		}
		a.notifier.Success("deleted successfully")
		return nil
	},
}

var usersResetCmd = &cobra.Command{
	Use:   "reset-password <id>",
	Short: "Reset an account's password and print the temporary one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := ensureRoute(cmd, a, nav.RouteUsers); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		temp, err := a.users.ResetPassword(cmd.Context(), id)
		if err != nil {
			return err
		}
		a.notifier.Success("password reset")
		fmt.Fprintf(cmd.OutOrStdout(), "temporary password: %s\n", temp)
		return nil
	},
}

var usersLockCmd = &cobra.Command{
	Use:   "lock <id>",
	Short: "Lock an account",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setUserLocked(cmd, args[0], true) },
}

var usersUnlockCmd = &cobra.Command{
	Use:   "unlock <id>",
	Short: "Unlock an account",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setUserLocked(cmd, args[0], false) },
}

func setUserLocked(cmd *cobra.Command, arg string, locked bool) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := ensureRoute(cmd, a, nav.RouteUsers); err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := a.users.SetLocked(cmd.Context(), id, locked); err != nil {
		return err
	}
	if locked {
		a.notifier.Success("account locked")
	} else {
		a.notifier.Success("account unlocked")
	}
	return nil
}

func init() {
	f := usersListCmd.Flags()
	f.IntVar(&usersListFlags.page, "page", 1, "Page number")
	f.IntVar(&usersListFlags.size, "size", crud.DefaultPageSize, "Page size")
	f.StringArrayVar(&usersListFlags.filters, "filter", nil, "Filter as key=value (repeatable)")

	usersCreateCmd.Flags().StringVar(&usersDraft, "json", "", "Account draft as JSON")
	usersUpdateCmd.Flags().StringVar(&usersDraft, "json", "", "Account draft as JSON")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersResetCmd)
	usersCmd.AddCommand(usersLockCmd)
	usersCmd.AddCommand(usersUnlockCmd)
}
