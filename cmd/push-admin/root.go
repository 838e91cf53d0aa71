// ABOUTME: Entry point and shared wiring for the push-admin console CLI
// ABOUTME: Builds config, state store, API client, session, and navigation once per run

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/api"
	"github.com/pushnotify/console/internal/config"
	"github.com/pushnotify/console/internal/nav"
	"github.com/pushnotify/console/internal/notify"
	"github.com/pushnotify/console/internal/prefs"
	"github.com/pushnotify/console/internal/services"
	"github.com/pushnotify/console/internal/session"
	"github.com/pushnotify/console/internal/state"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
}

var rootCmd = &cobra.Command{
	Use:   "push-admin",
	Short: "Admin console for the push-notify service",
	Long: "push-admin manages repositories, push targets, templates, prompts,\n" +
		"AI models, users, and delivery records of a push-notify server.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "", "Config file path (default ~/.push-admin/config.yaml)")
	rootCmd.Version = version

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(passwdCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(pushesCmd)
	rootCmd.AddCommand(logsCmd)
}

func main() {
	err := rootCmd.Execute()
	if theApp != nil {
		theApp.close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// app holds everything a command needs, built once on first use.
type app struct {
	cfg      *config.Config
	state    state.Store
	notifier notify.Notifier
	session  *session.Store
	client   *api.Client
	nav      *nav.Navigator
	prefs    *prefs.Store

	auth      *services.AuthService
	repos     *services.RepoService
	targets   *services.TargetService
	templates *services.TemplateService
	prompts   *services.PromptService
	models    *services.ModelService
	users     *services.UserService
	pushes    *services.PushService
	logs      *services.LogService
}

var (
	theApp  *app
	appOnce sync.Once
	appErr  error
)

// getApp builds the shared wiring on first call. The session store is bound
// to the API client for tokens and to the auth service after construction,
// since each side needs the other.
func getApp() (*app, error) {
	appOnce.Do(func() {
		cfg, err := loadConfig()
		if err != nil {
			appErr = err
			return
		}
		configureLogging(cfg)

		st, err := state.NewSQLiteStore(cfg.State.Path)
		if err != nil {
			appErr = fmt.Errorf("opening state store: %w", err)
			return
		}

		notifier := notify.NewTerminal(os.Stderr)
		sess := session.New(st)

		client := api.New(api.Options{
			BaseURL:      cfg.API.BaseURL,
			Timeout:      cfg.API.Timeout,
			Tokens:       sess,
			Notifier:     notifier,
			Unauthorized: sess.HandleUnauthorized,
		})

		auth := services.NewAuthService(client)
		sess.AttachAPI(auth)

		navigator := nav.NewNavigator(nav.NewGuard(sess))
		sess.SetLoginNavigator(func() {
			navigator.Go(context.Background(), nav.RouteLogin)
		})

		theApp = &app{
			cfg:       cfg,
			state:     st,
			notifier:  notifier,
			session:   sess,
			client:    client,
			nav:       navigator,
			prefs:     prefs.New(st),
			auth:      auth,
			repos:     services.NewRepoService(client),
			targets:   services.NewTargetService(client),
			templates: services.NewTemplateService(client),
			prompts:   services.NewPromptService(client),
			models:    services.NewModelService(client),
			users:     services.NewUserService(client),
			pushes:    services.NewPushService(client),
			logs:      services.NewLogService(client),
		}
	})
	return theApp, appErr
}

func (a *app) close() {
	if a.state != nil {
		if err := a.state.Close(); err != nil {
			slog.Default().Warn("closing state store", "error", err)
		}
	}
}

// loadConfig resolves the config path: explicit flag, then the default file
// if present, else built-in defaults.
func loadConfig() (*config.Config, error) {
	if rootFlags.configPath != "" {
		return config.Load(rootFlags.configPath)
	}
	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".push-admin", "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return config.Load(path)
		}
	}
	return config.Default(), nil
}

func configureLogging(cfg *config.Config) {
	var level slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Logging.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// parseID parses a positional numeric ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseFilters turns repeated key=value flags into filter pairs.
func parseFilters(raw []string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q, want key=value", kv)
		}
		out[key] = value
	}
	return out, nil
}
