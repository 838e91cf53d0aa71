// ABOUTME: Opens a management view: guard check, controller fetch, table render
// ABOUTME: Drives the same list pipeline the resource subcommands use

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushnotify/console/internal/crud"
	"github.com/pushnotify/console/internal/layout"
	"github.com/pushnotify/console/internal/nav"
	"github.com/pushnotify/console/internal/services"
)

var openFlags struct {
	page    int
	size    int
	filters []string
}

var openCmd = &cobra.Command{
	Use:   "open <view>",
	Short: "Open a management view and show its first page",
	Long: "Open runs the navigation guard for the named view, then loads and\n" +
		"renders the view's table. Views: repos, targets, templates, prompts,\n" +
		"models, users, pushes, logs/system, logs/operations, logs/ai-calls.",
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	f := openCmd.Flags()
	f.IntVar(&openFlags.page, "page", 1, "Page number")
	f.IntVar(&openFlags.size, "size", crud.DefaultPageSize, "Page size")
	f.StringArrayVar(&openFlags.filters, "filter", nil, "Filter as key=value (repeatable)")
}

func runOpen(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	view := args[0]
	if err := ensureRoute(cmd, a, view); err != nil {
		return err
	}

	switch view {
	case nav.RouteRepos:
		return openControlled(cmd, a, "repos", crud.Resource[services.Repo]{
			List:   listAdapter(a.repos.List),
			Create: createAdapter(a.repos.Create),
			Update: updateAdapter(a.repos.Update),
			Delete: a.repos.Delete,
		}, func(r services.Repo) int64 { return r.ID })
	case nav.RouteTargets:
		return openControlled(cmd, a, "targets", crud.Resource[services.Target]{
			List:   listAdapter(a.targets.List),
			Create: createAdapter(a.targets.Create),
			Update: updateAdapter(a.targets.Update),
			Delete: a.targets.Delete,
		}, func(t services.Target) int64 { return t.ID })
	case nav.RouteTemplates:
		return openControlled(cmd, a, "templates", crud.Resource[services.Template]{
			List:   listAdapter(a.templates.List),
			Create: createAdapter(a.templates.Create),
			Update: updateAdapter(a.templates.Update),
			Delete: a.templates.Delete,
		}, func(t services.Template) int64 { return t.ID })
	case nav.RoutePrompts:
		return openControlled(cmd, a, "prompts", crud.Resource[services.Prompt]{
			List:   listAdapter(a.prompts.List),
			Create: createAdapter(a.prompts.Create),
			Update: updateAdapter(a.prompts.Update),
			Delete: a.prompts.Delete,
		}, func(p services.Prompt) int64 { return p.ID })
	case nav.RouteModels:
		return openControlled(cmd, a, "models", crud.Resource[services.AIModel]{
			List:   listAdapter(a.models.List),
			Create: createAdapter(a.models.Create),
			Update: updateAdapter(a.models.Update),
			Delete: a.models.Delete,
		}, func(m services.AIModel) int64 { return m.ID })
	case nav.RouteUsers:
		return openControlled(cmd, a, "users", crud.Resource[services.User]{
			List:   listAdapter(a.users.List),
			Create: createAdapter(a.users.Create),
			Update: updateAdapter(a.users.Update),
			Delete: a.users.Delete,
		}, func(u services.User) int64 { return u.ID })
	case nav.RoutePushes:
		return openReadOnly(cmd, a, "pushes", a.pushes.List)
	case nav.RouteSystemLog:
		return openReadOnly(cmd, a, "logs", a.logs.System)
	case nav.RouteOperationLog:
		return openReadOnly(cmd, a, "logs", a.logs.Operations)
	case nav.RouteAICallLog:
		return openReadOnly(cmd, a, "logs", a.logs.AICalls)
	default:
		return fmt.Errorf("view %s has no table", view)
	}
}

// openControlled drives a full CRUD controller through one fetch.
func openControlled[T any](cmd *cobra.Command, a *app, viewLayout string, res crud.Resource[T], id func(T) int64) error {
	ctrl, err := crud.New(res, crud.Hooks[T]{ID: id}, a.notifier)
	if err != nil {
		return err
	}

	filters, err := parseFilters(openFlags.filters)
	if err != nil {
		return err
	}
	for key, value := range filters {
		ctrl.SetFilter(key, value)
	}
	if err := ctrl.SetPageSize(cmd.Context(), openFlags.size); err != nil {
		return err
	}
	if openFlags.page != 1 {
		if err := ctrl.SetPage(cmd.Context(), openFlags.page); err != nil {
			return err
		}
	}

	m, err := layout.Load(viewLayout)
	if err != nil {
		return err
	}
	if err := renderTable(cmd.OutOrStdout(), m, ctrl.Items()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\npage %d, %d total\n", ctrl.Page(), ctrl.Total())
	return nil
}

// openReadOnly lists a view with no edit surface directly from its service.
func openReadOnly[T any](cmd *cobra.Command, a *app, viewLayout string, list func(context.Context, services.ListQuery) (services.ListPage[T], error)) error {
	q, err := buildQuery(openFlags.page, openFlags.size, openFlags.filters)
	if err != nil {
		return err
	}
	page, err := list(cmd.Context(), q)
	if err != nil {
		return err
	}

	m, err := layout.Load(viewLayout)
	if err != nil {
		return err
	}
	if err := renderTable(cmd.OutOrStdout(), m, page.List); err != nil {
		return err
	}
	printPagination(cmd.OutOrStdout(), page.Pagination)
	return nil
}

// listAdapter converts a service list into the controller's result shape.
func listAdapter[T any](fn func(context.Context, services.ListQuery) (services.ListPage[T], error)) func(context.Context, services.ListQuery) (crud.Result[T], error) {
	return func(ctx context.Context, q services.ListQuery) (crud.Result[T], error) {
		page, err := fn(ctx, q)
		if err != nil {
			return crud.Result[T]{}, err
		}
		return crud.Result[T]{Rows: page.List, Total: page.Pagination.Total}, nil
	}
}

// createAdapter discards the created row; the controller re-fetches anyway.
func createAdapter[T any](fn func(context.Context, T) (*T, error)) func(context.Context, T) error {
	return func(ctx context.Context, draft T) error {
		_, err := fn(ctx, draft)
		return err
	}
}

func updateAdapter[T any](fn func(context.Context, int64, T) (*T, error)) func(context.Context, int64, T) error {
	return func(ctx context.Context, id int64, draft T) error {
		_, err := fn(ctx, id, draft)
		return err
	}
}

// listResource is the shared list pipeline of the resource subcommands:
// guard the view, query the service, render the manifest table.
func listResource[T any](cmd *cobra.Command, a *app, route, viewLayout string, page, size int, rawFilters []string, list func(context.Context, services.ListQuery) (services.ListPage[T], error)) error {
	if err := ensureRoute(cmd, a, route); err != nil {
		return err
	}
	q, err := buildQuery(page, size, rawFilters)
	if err != nil {
		return err
	}
	result, err := list(cmd.Context(), q)
	if err != nil {
		return err
	}

	m, err := layout.Load(viewLayout)
	if err != nil {
		return err
	}
	if err := renderTable(cmd.OutOrStdout(), m, result.List); err != nil {
		return err
	}
	printPagination(cmd.OutOrStdout(), result.Pagination)
	return nil
}

// buildQuery assembles a list query from page, size, and key=value filters.
func buildQuery(page, size int, rawFilters []string) (services.ListQuery, error) {
	filters, err := parseFilters(rawFilters)
	if err != nil {
		return services.ListQuery{}, err
	}
	q := services.ListQuery{Page: page, Size: size, Filters: map[string][]string{}}
	for key, value := range filters {
		q.Filters.Set(key, value)
	}
	return q, nil
}
