package nav

import (
	"strings"
	"testing"
)

func TestEveryRouteHasUniqueCanonicalPath(t *testing.T) {
	seen := map[string]Route{}
	for _, r := range Routes() {
		p := r.Path()
		if p == "" {
			t.Errorf("route %d has empty path", int(r))
		}
		if !strings.HasPrefix(p, "/") {
			t.Errorf("route %d path %q does not start with /", int(r), p)
		}
		if prev, dup := seen[p]; dup {
			t.Errorf("routes %d and %d share path %q", int(prev), int(r), p)
		}
		seen[p] = r
	}
}

func TestFromPathRoundTrips(t *testing.T) {
	for _, r := range Routes() {
		if got := FromPath(r.Path()); got != r {
			t.Errorf("FromPath(%q) = %v, want %v", r.Path(), got, r)
		}
		// The same path without its leading slash must resolve identically.
		bare := strings.TrimPrefix(r.Path(), "/")
		if got := FromPath(bare); got != r {
			t.Errorf("FromPath(%q) = %v, want %v", bare, got, r)
		}
	}
}

func TestFromPathUnknownInputs(t *testing.T) {
	inputs := []string{"", "/", "/bogus", "bogus", "/Home", "/home/", "/home/extra", "//home", " /home"}
	for _, in := range inputs {
		if got := FromPath(in); got != RouteNotFound {
			t.Errorf("FromPath(%q) = %v, want RouteNotFound", in, got)
		}
		if IsValidPath(in) {
			t.Errorf("IsValidPath(%q) = true, want false", in)
		}
	}
}

func TestIsValidPathKnownRoutes(t *testing.T) {
	if !IsValidPath("/details") {
		t.Error("IsValidPath(/details) = false, want true")
	}
	if !IsValidPath("details") {
		t.Error("IsValidPath(details) = false, want true")
	}
	// The sentinel's own path still resolves; it is a real member of the set.
	if !IsValidPath("/home") {
		t.Error("IsValidPath(/home) = false, want true")
	}
}

func TestFromPathScenarioD(t *testing.T) {
	if FromPath("details") != FromPath("/details") {
		t.Error("FromPath(details) != FromPath(/details)")
	}
	if FromPath("details") != RouteDetails {
		t.Errorf("FromPath(details) = %v, want RouteDetails", FromPath("details"))
	}
}

func TestRouteStringIsCanonicalPath(t *testing.T) {
	if RouteSettings.String() != "/settings" {
		t.Errorf("RouteSettings.String() = %q, want /settings", RouteSettings.String())
	}
	// Out-of-range tags fall back to the sentinel path rather than panicking.
	if Route(999).Path() != "/not-found" {
		t.Errorf("Route(999).Path() = %q, want /not-found", Route(999).Path())
	}
}
