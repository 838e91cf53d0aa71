// ABOUTME: Declarative route table for the admin console views
// ABOUTME: Mirrors the navigable surface: resources, logs, settings, error views

package nav

// Route names used across the console.
const (
	RouteLogin        = "login"
	RouteDashboard    = "dashboard"
	RouteRepos        = "repos"
	RouteTargets      = "targets"
	RoutePushes       = "pushes"
	RouteTemplates    = "templates"
	RoutePrompts      = "prompts"
	RouteModels       = "models"
	RouteUsers        = "users"
	RouteSystemLog    = "logs/system"
	RouteOperationLog = "logs/operations"
	RouteAICallLog    = "logs/ai-calls"
	RouteSettings     = "settings"
	RouteForbidden    = "403"
	RouteNotFound     = "404"
)

// Route declares one navigable view: its visibility and the roles allowed
// to enter it. An empty Roles list means any authenticated user.
type Route struct {
	Name   string
	Path   string
	Title  string
	Public bool
	Roles  []string
}

// routes is the full navigable surface of the console.
var routes = []Route{
	{Name: RouteLogin, Path: "/login", Title: "Sign in", Public: true},
	{Name: RouteDashboard, Path: "/dashboard", Title: "Dashboard"},
	{Name: RouteRepos, Path: "/repos", Title: "Repositories"},
	{Name: RouteTargets, Path: "/targets", Title: "Push targets"},
	{Name: RoutePushes, Path: "/pushes", Title: "Push records"},
	{Name: RouteTemplates, Path: "/templates", Title: "Message templates"},
	{Name: RoutePrompts, Path: "/prompts", Title: "Prompts"},
	{Name: RouteModels, Path: "/models", Title: "AI models"},
	{Name: RouteUsers, Path: "/users", Title: "User management", Roles: []string{"admin"}},
	{Name: RouteSystemLog, Path: "/logs/system", Title: "System logs"},
	{Name: RouteOperationLog, Path: "/logs/operations", Title: "Operation logs"},
	{Name: RouteAICallLog, Path: "/logs/ai-calls", Title: "AI call logs"},
	{Name: RouteSettings, Path: "/settings", Title: "Settings"},
	{Name: RouteForbidden, Path: "/403", Title: "Forbidden", Public: true},
	{Name: RouteNotFound, Path: "/404", Title: "Not found", Public: true},
}

// Table returns a copy of the route table.
func Table() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup finds a route by name.
func Lookup(name string) (Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}
