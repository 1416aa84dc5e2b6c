// Package router holds the client's static route table and the navigation
// guard that keeps unauthenticated sessions out of protected views.
package router

import "strings"

// LoginPath is where guarded transitions land when the session is not
// authenticated.
const LoginPath = "/login"

// AuthState is the slice of the auth service the guard reads.
type AuthState interface {
	IsAuthenticated() bool
}

// Route maps a path pattern to a named view. Pattern segments starting
// with ':' match any non-empty value.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
}

// Routes is the application's route surface.
var Routes = []Route{
	{Path: "/", Name: "home"},
	{Path: "/browse", Name: "browse"},
	{Path: "/recipes/:id", Name: "recipe-detail"},
	{Path: "/create-recipe", Name: "create-recipe"},
	{Path: "/recipes/:id/edit", Name: "edit-recipe", RequiresAuth: true},
	{Path: LoginPath, Name: "login"},
	{Path: "/my-recipes", Name: "my-recipes", RequiresAuth: true},
}

// Router resolves requested paths against the route table. The guard is
// evaluated on every call, never cached, so authentication changes between
// navigations are always seen.
type Router struct {
	auth   AuthState
	routes []Route
}

func New(auth AuthState) *Router {
	return &Router{auth: auth, routes: Routes}
}

// Resolve returns the path navigation should actually land on: the
// canonical form of path, or LoginPath when the target requires
// authentication and the session has none.
func (r *Router) Resolve(path string) string {
	path = rewrite(path)
	route := r.match(path)
	if route != nil && route.RequiresAuth && !r.auth.IsAuthenticated() {
		return LoginPath
	}
	return path
}

// Match returns the route for path after rewrites, or nil for unknown
// paths.
func (r *Router) Match(path string) *Route {
	return r.match(rewrite(path))
}

func (r *Router) match(path string) *Route {
	segs := split(path)
	for i := range r.routes {
		if matchSegments(split(r.routes[i].Path), segs) {
			return &r.routes[i]
		}
	}
	return nil
}

// rewrite maps legacy paths onto the canonical shape before matching:
// the old collection URL and the old singular detail URL.
func rewrite(path string) string {
	if path == "/recipes" {
		return "/browse"
	}
	if rest, ok := strings.CutPrefix(path, "/recipe/"); ok && rest != "" {
		return "/recipes/" + rest
	}
	return path
}

func split(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

func matchSegments(pattern, segs []string) bool {
	if len(pattern) != len(segs) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return false
			}
			continue
		}
		if p != segs[i] {
			return false
		}
	}
	return true
}
