package nav

import (
	"sort"
	"sync"
)

// ScreenFactory produces the renderable unit for a route. The returned value
// is opaque to the router; the presentation layer type-asserts it (vitrine's
// app layer expects a bubbletea model). The normalized arguments for the
// navigation that triggered construction are passed in.
type ScreenFactory func(args Args) any

// Registry maps routes to screen factories. Registration is last-wins and
// never errors; lookups are pure reads. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[Route]ScreenFactory
}

// NewRegistry returns an empty registry ready for screen registration.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[Route]ScreenFactory),
	}
}

// Register stores factory for route, overwriting any prior entry.
func (r *Registry) Register(route Route, factory ScreenFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[route] = factory
}

// RegisterMany applies Register for each entry in mapping. Map iteration
// order is unspecified, which is fine: entries never conflict except on a
// duplicate key, where the map itself has already collapsed them.
func (r *Registry) RegisterMany(mapping map[Route]ScreenFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for route, factory := range mapping {
		r.factories[route] = factory
	}
}

// Lookup returns the factory registered for route, or false if absent.
func (r *Registry) Lookup(route Route) (ScreenFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[route]
	return f, ok
}

// IsRegistered reports whether route has a factory.
func (r *Registry) IsRegistered(route Route) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[route]
	return ok
}

// RegisteredRoutes returns all registered routes sorted by canonical path.
func (r *Registry) RegisteredRoutes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes := make([]Route, 0, len(r.factories))
	for route := range r.factories {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path() < routes[j].Path()
	})
	return routes
}
