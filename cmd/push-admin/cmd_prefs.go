// ABOUTME: Preference subcommands: theme, locale, and sidebar state
// ABOUTME: Values persist in the local state store, not on the server

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show and change console preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "theme:   %s\n", a.prefs.Theme())
		fmt.Fprintf(out, "locale:  %s\n", a.prefs.Locale())
		fmt.Fprintf(out, "sidebar: %s\n", sidebarLabel(a.prefs.SidebarCollapsed()))
		return nil
	},
}

var prefsThemeCmd = &cobra.Command{
	Use:   "theme <light|dark>",
	Short: "Set the console theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.prefs.SetTheme(args[0]); err != nil {
			return err
		}
		a.notifier.Success("theme set to " + args[0])
		return nil
	},
}

var prefsLocaleCmd = &cobra.Command{
	Use:   "locale <tag>",
	Short: "Set the console locale, e.g. zh-CN or en-US",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.prefs.SetLocale(args[0]); err != nil {
			return err
		}
		a.notifier.Success("locale set to " + args[0])
		return nil
	},
}

var prefsSidebarCmd = &cobra.Command{
	Use:   "toggle-sidebar",
	Short: "Collapse or expand the sidebar",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		collapsed := a.prefs.ToggleSidebar()
		fmt.Fprintf(cmd.OutOrStdout(), "sidebar %s\n", sidebarLabel(collapsed))
		return nil
	},
}

func sidebarLabel(collapsed bool) string {
	if collapsed {
		return "collapsed"
	}
	return "expanded"
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsThemeCmd)
	prefsCmd.AddCommand(prefsLocaleCmd)
	prefsCmd.AddCommand(prefsSidebarCmd)
}
