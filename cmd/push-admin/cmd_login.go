// ABOUTME: Authentication commands: login, logout, register, me, passwd, refresh
// ABOUTME: Passwords are prompted without echo rather than taken from argv

package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pushnotify/console/internal/nav"
)

var loginFlags struct {
	username string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var registerFlags struct {
	username string
	email    string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the logged-in profile",
	RunE:  runMe,
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	RunE:  runPasswd,
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Exchange the refresh token for a fresh session",
	RunE:  runRefresh,
}

func init() {
	f := loginCmd.Flags()
	f.StringVarP(&loginFlags.username, "username", "u", "", "Username (required)")
	f.StringVarP(&loginFlags.password, "password", "p", "", "Password (prompted when omitted)")
	_ = loginCmd.MarkFlagRequired("username")

	rf := registerCmd.Flags()
	rf.StringVarP(&registerFlags.username, "username", "u", "", "Username (required)")
	rf.StringVarP(&registerFlags.email, "email", "e", "", "Email (required)")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")
}

// promptPassword reads a password without echoing it.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	password := loginFlags.password
	if password == "" {
		if password, err = promptPassword("Password: "); err != nil {
			return err
		}
	}

	if err := a.session.Login(cmd.Context(), loginFlags.username, password); err != nil {
		return err
	}

	a.notifier.Success("logged in as " + loginFlags.username)
	if expiry, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "session valid until %s\n", expiry.Local().Format("2006-01-02 15:04"))
	}

	// Land where the user was headed before the login redirect, if anywhere
	if returnTo := a.nav.ConsumeReturnTo(); returnTo != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "continue to %s\n", returnTo)
	}
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	// Revoke server-side best-effort; the local session clears regardless
	if a.session.IsLoggedIn() {
		_ = a.auth.Logout(cmd.Context())
	}
	a.session.Logout()
	a.notifier.Info("logged out")
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := a.session.Register(cmd.Context(), registerFlags.username, registerFlags.email, password); err != nil {
		return err
	}
	a.notifier.Success("account created, you can log in now")
	return nil
}

func runMe(cmd *cobra.Command, _ []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if !a.session.IsLoggedIn() {
		return fmt.Errorf("not logged in, run 'push-admin login' first")
	}

	if !a.session.HasIdentity() {
		if err := a.session.FetchProfile(cmd.Context()); err != nil {
			return err
		}
	}

	user := a.session.Identity()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Username: %s\n", user.Username)
	fmt.Fprintf(out, "Email:    %s\n", user.Email)
	fmt.Fprintf(out, "Role:     %s\n", user.Role)
	if user.LastLoginAt != nil {
		fmt.Fprintf(out, "Last login: %s\n", user.LastLoginAt.Local().Format("2006-01-02 15:04"))
	}
	if expiry, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(out, "Session expires: %s\n", expiry.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runPasswd(cmd *cobra.Command, _ []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if !a.session.IsLoggedIn() {
		return fmt.Errorf("not logged in, run 'push-admin login' first")
	}

	current, err := promptPassword("Current password: ")
	if err != nil {
		return err
	}
	next, err := promptPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm new password: ")
	if err != nil {
		return err
	}
	if next != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := a.session.ChangePassword(cmd.Context(), current, next); err != nil {
		return err
	}
	a.notifier.Success("password changed")
	return nil
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.session.Refresh(cmd.Context()); err != nil {
		return err
	}
	a.notifier.Success("session refreshed")
	if expiry, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "session valid until %s\n", expiry.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// ensureRoute runs the navigation guard for the named view and reports the
// redirect the way the console would.
func ensureRoute(cmd *cobra.Command, a *app, name string) error {
	reached := a.nav.Go(cmd.Context(), name)
	switch reached.Name {
	case name:
		return nil
	case nav.RouteLogin:
		return fmt.Errorf("not logged in, run 'push-admin login' first")
	case nav.RouteForbidden:
		return fmt.Errorf("no permission to access %s", name)
	case nav.RouteNotFound:
		return fmt.Errorf("unknown view %s", name)
	default:
		return fmt.Errorf("redirected to %s", reached.Name)
	}
}
