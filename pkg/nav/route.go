// Package nav coordinates screen navigation for vitrine. It maps symbolic
// route identifiers to screen factories, keeps an ordered navigation history,
// normalizes caller-supplied payloads into a canonical argument record, and
// notifies subscribers of navigation events.
//
// The Router is the single entry point; everything else in this package is a
// building block it composes. Construct one Router at startup and pass it by
// reference to consumers — there is no package-level instance.
package nav

import "strings"

// Route identifies a navigable destination. The set of routes is closed;
// RouteNotFound doubles as the sentinel returned when a path string does not
// resolve to any known route.
type Route int

const (
	RouteNotFound Route = iota
	RouteHome
	RouteDetails
	RouteSearch
	RouteSettings
	RouteStatus
)

// routePaths maps each route to its canonical path. Built once; treated as
// immutable. Every path is unique, non-empty, and starts with "/".
var routePaths = map[Route]string{
	RouteNotFound: "/not-found",
	RouteHome:     "/home",
	RouteDetails:  "/details",
	RouteSearch:   "/search",
	RouteSettings: "/settings",
	RouteStatus:   "/status",
}

// pathRoutes is the reverse lookup table, derived from routePaths at init.
var pathRoutes = func() map[string]Route {
	m := make(map[string]Route, len(routePaths))
	for r, p := range routePaths {
		m[p] = r
	}
	return m
}()

// Path returns the canonical path for the route, e.g. "/details".
func (r Route) Path() string {
	if p, ok := routePaths[r]; ok {
		return p
	}
	return routePaths[RouteNotFound]
}

// String returns the canonical path; Route satisfies fmt.Stringer so routes
// read naturally in logs and error messages.
func (r Route) String() string {
	return r.Path()
}

// FromPath resolves a path string to a route. A missing leading "/" is
// prefixed before lookup; matching is otherwise exact and case-sensitive
// (no trailing-slash trimming). Unknown paths, including the empty string,
// resolve to RouteNotFound. FromPath never fails.
func FromPath(text string) Route {
	if !strings.HasPrefix(text, "/") {
		text = "/" + text
	}
	if r, ok := pathRoutes[text]; ok {
		return r
	}
	return RouteNotFound
}

// IsValidPath reports whether text resolves to a route other than
// RouteNotFound.
func IsValidPath(text string) bool {
	return FromPath(text) != RouteNotFound
}

// Routes returns all route identifiers, including RouteNotFound, in
// declaration order. Useful for registration loops and tests.
func Routes() []Route {
	return []Route{RouteNotFound, RouteHome, RouteDetails, RouteSearch, RouteSettings, RouteStatus}
}
