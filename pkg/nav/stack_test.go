package nav

import "testing"

func TestNewStackSeededWithRoot(t *testing.T) {
	s := NewStack(RouteHome)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	cur, ok := s.Current()
	if !ok || cur != RouteHome {
		t.Errorf("Current() = %v,%v, want RouteHome,true", cur, ok)
	}
}

func TestStackPushGrowsByOne(t *testing.T) {
	s := NewStack(RouteHome)
	s.Push(RouteDetails)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if cur, _ := s.Current(); cur != RouteDetails {
		t.Errorf("Current() = %v, want RouteDetails", cur)
	}
}

func TestStackReplaceTopKeepsLength(t *testing.T) {
	s := NewStack(RouteHome)
	s.Push(RouteDetails)
	s.ReplaceTop(RouteSettings)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	snap := s.Snapshot()
	if snap[0] != RouteHome || snap[1] != RouteSettings {
		t.Errorf("history = %v, want [RouteHome RouteSettings]", snap)
	}
}

func TestStackPopRefusesFinalEntry(t *testing.T) {
	s := NewStack(RouteHome)
	s.Push(RouteDetails)

	route, ok := s.Pop()
	if !ok || route != RouteDetails {
		t.Errorf("Pop() = %v,%v, want RouteDetails,true", route, ok)
	}

	// One entry left: Pop reports it but must not remove it.
	route, ok = s.Pop()
	if ok {
		t.Error("Pop() removed the final entry")
	}
	if route != RouteHome {
		t.Errorf("Pop() on root returned %v, want RouteHome", route)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d after root pop, want 1", s.Len())
	}
}

func TestStackSnapshotIsDefensiveCopy(t *testing.T) {
	s := NewStack(RouteHome)
	s.Push(RouteDetails)

	snap := s.Snapshot()
	snap[0] = RouteSettings

	if got := s.Snapshot()[0]; got != RouteHome {
		t.Errorf("mutating a snapshot changed the stack: first entry = %v", got)
	}
}

func TestStackReset(t *testing.T) {
	s := NewStack(RouteHome)
	s.Push(RouteDetails)
	s.Push(RouteSearch)

	s.Reset(RouteHome)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d after Reset, want 1", s.Len())
	}
	if cur, _ := s.Current(); cur != RouteHome {
		t.Errorf("Current() = %v after Reset, want RouteHome", cur)
	}
}
