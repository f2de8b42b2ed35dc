package nav

import "testing"

func TestHubNotifyOrder(t *testing.T) {
	h := NewHub()
	var order []int
	h.Subscribe(func(Route, Args) { order = append(order, 1) })
	h.Subscribe(func(Route, Args) { order = append(order, 2) })
	h.Subscribe(func(Route, Args) { order = append(order, 3) })

	h.Notify(RouteHome, Args{})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("listeners ran in order %v, want [1 2 3]", order)
	}
}

func TestHubNotifyPassesSamePair(t *testing.T) {
	h := NewHub()
	args := Args{ID: "P1", Title: "T"}

	var got []Args
	h.Subscribe(func(r Route, a Args) {
		if r != RouteDetails {
			t.Errorf("route = %v, want RouteDetails", r)
		}
		got = append(got, a)
	})
	h.Subscribe(func(_ Route, a Args) { got = append(got, a) })

	h.Notify(RouteDetails, args)

	for i, a := range got {
		if a != args {
			t.Errorf("listener %d received %+v, want %+v", i, a, args)
		}
	}
}

func TestHubUnsubscribeRemovesExactly(t *testing.T) {
	h := NewHub()
	var aCalls, bCalls int
	subA := h.Subscribe(func(Route, Args) { aCalls++ })
	h.Subscribe(func(Route, Args) { bCalls++ })

	h.Unsubscribe(subA)
	h.Notify(RouteHome, Args{})

	if aCalls != 0 {
		t.Errorf("removed listener ran %d times", aCalls)
	}
	if bCalls != 1 {
		t.Errorf("surviving listener ran %d times, want 1", bCalls)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHubUnsubscribeUnknownIsNoOp(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(func(Route, Args) {})
	h.Unsubscribe(sub)
	// Double removal and a never-issued token must both be harmless.
	h.Unsubscribe(sub)
	h.Unsubscribe(Subscription{})

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHubIdenticalFunctionsGetDistinctTokens(t *testing.T) {
	h := NewHub()
	fn := func(Route, Args) {}
	subA := h.Subscribe(fn)
	subB := h.Subscribe(fn)

	if subA == subB {
		t.Fatal("two subscriptions of the same function share a token")
	}

	h.Unsubscribe(subA)
	if h.Len() != 1 {
		t.Errorf("Len() = %d after removing one of two, want 1", h.Len())
	}
}
