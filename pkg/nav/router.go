package nav

import (
	"fmt"
	"log/slog"
	"sync"
)

// Delegate is the presentation layer the router drives. In vitrine it is the
// root bubbletea model, which swaps the active screen; tests supply fakes.
// Delegate calls run synchronously after history mutation and listener
// notification, so a delegate error never unwinds either.
type Delegate interface {
	// Push presents the screen for route and blocks until the transition
	// settles.
	Push(route Route, args Args) error

	// Replace presents the screen for route in place of the current one.
	Replace(route Route, args Args) error

	// Pop dismisses the current screen, forwarding result to whatever is
	// revealed underneath.
	Pop(result any) error
}

// Result reports the outcome of a navigation operation. Exactly one of the
// success path and Err is meaningful: Err is set iff OK is false. Navigation
// operations never panic or return errors past the router boundary; failures
// always arrive as a Result.
type Result struct {
	OK    bool
	Err   string
	Value any // set by the presentation layer, e.g. a value handed back through Pop
}

func failuref(format string, a ...any) Result {
	return Result{Err: fmt.Sprintf(format, a...)}
}

// Router is the navigation facade. It owns the route registry, the history
// stack, and the listener hub, and orchestrates the push/replace/pop
// protocol: argument normalization, history mutation, listener notification,
// then delegation to the presentation layer.
//
// History mutation and notification happen synchronously before the delegate
// runs, so observers see history updated at the moment of navigation intent,
// not at completion. A failing delegate does not roll either back; the
// history update is final even when the navigation step failed.
//
// The embedding application is expected to issue one navigation call at a
// time, but because bubbletea commands run on their own goroutines the
// router guards its history with a mutex anyway.
type Router struct {
	registry *Registry
	hub      *Hub
	delegate Delegate
	logger   *slog.Logger
	home     Route

	mu    sync.Mutex
	stack *Stack
}

// New constructs a Router whose history is seeded with home. A nil logger
// falls back to slog.Default().
func New(home Route, delegate Delegate, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		registry: NewRegistry(),
		hub:      NewHub(),
		delegate: delegate,
		logger:   logger,
		home:     home,
		stack:    NewStack(home),
	}
}

// Register forwards to the route registry.
func (r *Router) Register(route Route, factory ScreenFactory) {
	r.registry.Register(route, factory)
}

// RegisterMany forwards to the route registry.
func (r *Router) RegisterMany(mapping map[Route]ScreenFactory) {
	r.registry.RegisterMany(mapping)
}

// IsRegistered forwards to the route registry.
func (r *Router) IsRegistered(route Route) bool {
	return r.registry.IsRegistered(route)
}

// Registry exposes the route registry so the presentation layer can look up
// the factory for a route it has been told to present.
func (r *Router) Registry() *Registry {
	return r.registry
}

// Push navigates forward to route, appending it to the history. data is
// normalized via Normalize before listeners or the delegate see it.
func (r *Router) Push(route Route, data any) Result {
	return r.navigate(route, data, false)
}

// Replace navigates to route in place of the current history top, leaving
// the history length unchanged. Failure and notification semantics match
// Push.
func (r *Router) Replace(route Route, data any) Result {
	return r.navigate(route, data, true)
}

// NavigateByPath resolves text to a route and navigates to it with Replace
// semantics. An unresolvable path fails without touching history or
// notifying listeners.
func (r *Router) NavigateByPath(text string, data any) Result {
	route := FromPath(text)
	if route == RouteNotFound {
		return failuref("Invalid path: %s", text)
	}
	return r.Replace(route, data)
}

// Pop removes the current route from the history and asks the delegate to
// dismiss the current screen, forwarding result. When only the root entry
// remains the history is left unchanged — the length ≥ 1 invariant holds at
// rest — but the delegate is still invoked so the presentation layer can
// decide what leaving the root means (vitrine quits).
func (r *Router) Pop(result any) Result {
	r.mu.Lock()
	popped, ok := r.stack.Pop()
	r.mu.Unlock()

	if !ok {
		r.logger.Debug("pop on root entry, history unchanged", "route", popped.Path())
	}

	if err := r.delegate.Pop(result); err != nil {
		r.logger.Warn("pop delegate failed", "route", popped.Path(), "error", err)
		return failuref("Navigation error: %v", err)
	}
	return Result{OK: true, Value: result}
}

// Current returns the route at the top of the history, or ok=false if the
// history is somehow empty.
func (r *Router) Current() (Route, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack.Current()
}

// History returns a defensive copy of the navigation history, oldest first.
func (r *Router) History() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack.Snapshot()
}

// ClearHistory resets the history to exactly [home].
func (r *Router) ClearHistory() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stack.Reset(r.home)
}

// AddRouteListener subscribes fn to navigation events and returns the token
// needed to remove it.
func (r *Router) AddRouteListener(fn Listener) Subscription {
	return r.hub.Subscribe(fn)
}

// RemoveRouteListener removes a previously added listener. Unknown tokens
// are ignored.
func (r *Router) RemoveRouteListener(sub Subscription) {
	r.hub.Unsubscribe(sub)
}

func (r *Router) navigate(route Route, data any, replace bool) Result {
	if !r.registry.IsRegistered(route) {
		return failuref("Route %s is not registered", route.Path())
	}

	args := Normalize(data)

	r.mu.Lock()
	if replace {
		r.stack.ReplaceTop(route)
	} else {
		r.stack.Push(route)
	}
	r.mu.Unlock()

	// A panicking listener aborts the navigation: the delegate never runs
	// and the caller gets a failure Result. The history update above is
	// already final at that point.
	if err := r.notify(route, args); err != nil {
		return failuref("Navigation error: %v", err)
	}

	var err error
	if replace {
		err = r.delegate.Replace(route, args)
	} else {
		err = r.delegate.Push(route, args)
	}
	if err != nil {
		r.logger.Warn("navigation delegate failed", "route", route.Path(), "error", err)
		return failuref("Navigation error: %v", err)
	}

	r.logger.Debug("navigated", "route", route.Path(), "replace", replace, "depth", r.historyLen())
	return Result{OK: true}
}

// notify dispatches to the hub, converting a listener panic into an error.
// The hub itself never recovers; the abort-on-panic policy lives here.
func (r *Router) notify(route Route, args Args) (err error) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("route listener panicked", "route", route.Path(), "panic", p)
			err = fmt.Errorf("listener panic: %v", p)
		}
	}()
	r.hub.Notify(route, args)
	return nil
}

func (r *Router) historyLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack.Len()
}
