package nav

// Stack is the ordered history of visited routes, oldest first. The last
// entry is the current route. A Stack is seeded with a root route at
// construction and holds at least one entry at every observable point; the
// Router enforces that by refusing to pop the final entry.
//
// Stack is not safe for concurrent use on its own; the Router serializes
// access.
type Stack struct {
	entries []Route
}

// NewStack returns a stack seeded with root.
func NewStack(root Route) *Stack {
	return &Stack{entries: []Route{root}}
}

// Push appends route as the new current route.
func (s *Stack) Push(route Route) {
	s.entries = append(s.entries, route)
}

// ReplaceTop swaps the current route for route, leaving the length
// unchanged. On an empty stack it degrades to a plain push.
func (s *Stack) ReplaceTop(route Route) {
	if len(s.entries) == 0 {
		s.entries = []Route{route}
		return
	}
	s.entries[len(s.entries)-1] = route
}

// Pop removes and returns the current route. It refuses to remove the final
// entry: when the stack holds one route, Pop returns that route with
// ok=false and leaves the stack unchanged.
func (s *Stack) Pop() (route Route, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return RouteNotFound, false
	}
	top := s.entries[n-1]
	if n == 1 {
		return top, false
	}
	s.entries = s.entries[:n-1]
	return top, true
}

// Current returns the current route, or ok=false if the stack is empty.
func (s *Stack) Current() (Route, bool) {
	if len(s.entries) == 0 {
		return RouteNotFound, false
	}
	return s.entries[len(s.entries)-1], true
}

// Snapshot returns a defensive copy of the history, oldest first. Mutating
// the returned slice has no effect on the stack.
func (s *Stack) Snapshot() []Route {
	out := make([]Route, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Reset discards the history and reseeds the stack with root.
func (s *Stack) Reset(root Route) {
	s.entries = s.entries[:0]
	s.entries = append(s.entries, root)
}
