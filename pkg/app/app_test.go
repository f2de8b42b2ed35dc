package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/vitrine/pkg/catalog"
	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
	"gitlab.com/tinyland/lab/vitrine/pkg/screens"
	"gitlab.com/tinyland/lab/vitrine/pkg/theme"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	source, err := catalog.NewFixtureSource()
	if err != nil {
		t.Fatalf("NewFixtureSource: %v", err)
	}
	deps := &screens.Deps{
		Source: source,
		Theme:  func() theme.Theme { return theme.Get("default") },
	}
	m, err := New(Options{
		Deps:   deps,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.width, m.height = 80, 24
	return m
}

func expectHistory(t *testing.T, m *Model, want ...nav.Route) {
	t.Helper()
	got := m.Router().History()
	if len(got) != len(want) {
		t.Fatalf("history length = %d (%v), want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %s, want %s", i, got[i].Path(), want[i].Path())
		}
	}
}

func TestNewSeedsHome(t *testing.T) {
	m := newTestModel(t)
	expectHistory(t, m, nav.RouteHome)
	if m.active().Route() != nav.RouteHome {
		t.Errorf("active screen = %s, want /home", m.active().Route().Path())
	}
	if len(m.stack) != 1 {
		t.Errorf("screen stack depth = %d, want 1", len(m.stack))
	}
}

func TestGoToMsgPushesScreen(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(screens.GoToMsg{
		Route: nav.RouteDetails,
		Data:  map[string]any{"id": "P1", "title": "Walnut Desk Lamp"},
	})

	expectHistory(t, m, nav.RouteHome, nav.RouteDetails)
	if m.active().Route() != nav.RouteDetails {
		t.Errorf("active = %s, want /details", m.active().Route().Path())
	}
	if cmd == nil {
		t.Error("push did not surface the new screen's init command")
	}
}

func TestGoToMsgReplaceKeepsDepth(t *testing.T) {
	m := newTestModel(t)
	m.Update(screens.GoToMsg{Route: nav.RouteSearch})
	m.Update(screens.GoToMsg{Route: nav.RouteSettings, Replace: true})

	expectHistory(t, m, nav.RouteHome, nav.RouteSettings)
	if len(m.stack) != 2 {
		t.Errorf("screen stack depth = %d, want 2", len(m.stack))
	}
}

func TestEscPopsToPreviousScreen(t *testing.T) {
	m := newTestModel(t)
	m.Update(screens.GoToMsg{Route: nav.RouteSettings})

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	expectHistory(t, m, nav.RouteHome)
	if m.active().Route() != nav.RouteHome {
		t.Errorf("active = %s after esc, want /home", m.active().Route().Path())
	}
}

func TestEscOnRootQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !m.quitting {
		t.Error("esc on the root screen should quit")
	}
	if cmd == nil {
		t.Fatal("no quit command returned")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command yields %T, want tea.QuitMsg", cmd())
	}
	// Root guard: the history still holds its final entry.
	expectHistory(t, m, nav.RouteHome)
}

func TestQQuitsExceptOnSearch(t *testing.T) {
	m := newTestModel(t)
	m.Update(screens.GoToMsg{Route: nav.RouteSearch})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.quitting {
		t.Fatal("q while searching should type, not quit")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc}) // back home
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.quitting {
		t.Error("q on home should quit")
	}
}

func TestGoBackForwardsResult(t *testing.T) {
	m := newTestModel(t)
	m.Update(screens.GoToMsg{Route: nav.RouteSettings})

	_, cmd := m.Update(screens.GoBackMsg{Result: "picked"})
	expectHistory(t, m, nav.RouteHome)
	if cmd == nil {
		t.Fatal("pop with a result produced no command")
	}
	back, ok := cmd().(backMsg)
	if !ok {
		t.Fatalf("command yields %T, want backMsg", cmd())
	}
	if back.result != "picked" {
		t.Errorf("forwarded result = %v, want picked", back.result)
	}
}

func TestOpenPathResolvesRoutes(t *testing.T) {
	m := newTestModel(t)
	m.Update(openPathMsg{path: "/settings"})

	expectHistory(t, m, nav.RouteSettings)
	if m.active().Route() != nav.RouteSettings {
		t.Errorf("active = %s, want /settings", m.active().Route().Path())
	}
}

func TestOpenPathUnknownLandsOnNotFound(t *testing.T) {
	m := newTestModel(t)
	m.Update(openPathMsg{path: "/bogus"})

	if m.active().Route() != nav.RouteNotFound {
		t.Fatalf("active = %s, want /not-found", m.active().Route().Path())
	}
	if !strings.Contains(m.active().View(80, 23), "/bogus") {
		t.Error("fallback screen does not show the offending path")
	}
}

func TestViewShowsBreadcrumb(t *testing.T) {
	m := newTestModel(t)
	m.Update(screens.GoToMsg{Route: nav.RouteSettings})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if !strings.Contains(view, "/home › /settings") {
		t.Errorf("view missing breadcrumb, got %q", view)
	}
}
