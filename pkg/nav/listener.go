package nav

import "sync"

// Listener is notified on every navigation dispatch with the destination
// route and the normalized arguments.
type Listener func(route Route, args Args)

// Subscription is an opaque handle identifying one registered listener.
// Tokens are handed out by Hub.Subscribe and required for Unsubscribe;
// listeners are never compared by function identity.
type Subscription struct {
	id uint64
}

type hubEntry struct {
	sub Subscription
	fn  Listener
}

// Hub is an ordered collection of navigation-event subscribers. Listeners
// are invoked in subscription order. Safe for concurrent use.
type Hub struct {
	mu      sync.Mutex
	nextID  uint64
	entries []hubEntry
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers fn and returns the token needed to remove it.
func (h *Hub) Subscribe(fn Listener) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := Subscription{id: h.nextID}
	h.entries = append(h.entries, hubEntry{sub: sub, fn: fn})
	return sub
}

// Unsubscribe removes the registration identified by sub. Removing an
// unknown or already-removed subscription is a no-op.
func (h *Hub) Unsubscribe(sub Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, e := range h.entries {
		if e.sub == sub {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

// Notify invokes every currently-subscribed listener synchronously, in
// subscription order, passing the same (route, args) pair to each. The hub
// does not recover listener panics; propagation policy belongs to the
// caller.
func (h *Hub) Notify(route Route, args Args) {
	h.mu.Lock()
	entries := make([]hubEntry, len(h.entries))
	copy(entries, h.entries)
	h.mu.Unlock()

	for _, e := range entries {
		e.fn(route, args)
	}
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
