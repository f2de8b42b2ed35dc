package screens

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/vitrine/pkg/catalog"
	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
)

// GoToMsg asks the app layer to navigate to a route. Data flows through the
// router's argument normalization before the target screen sees it.
type GoToMsg struct {
	Route   nav.Route
	Data    any
	Replace bool
}

// GoBackMsg asks the app layer to pop the current screen, handing Result to
// whatever is revealed underneath.
type GoBackMsg struct {
	Result any
}

// GoTo returns a command that emits a push navigation request.
func GoTo(route nav.Route, data any) tea.Cmd {
	return func() tea.Msg { return GoToMsg{Route: route, Data: data} }
}

// GoToReplace returns a command that emits a replace navigation request.
func GoToReplace(route nav.Route, data any) tea.Cmd {
	return func() tea.Msg { return GoToMsg{Route: route, Data: data, Replace: true} }
}

// GoBack returns a command that emits a pop request.
func GoBack(result any) tea.Cmd {
	return func() tea.Msg { return GoBackMsg{Result: result} }
}

// catalogMsg delivers the outcome of a catalog fetch to the screen that
// requested it.
type catalogMsg struct {
	catalog *catalog.Catalog
	err     error
}

const fetchTimeout = 15 * time.Second

// loadCatalog fetches the catalog off the update loop.
func loadCatalog(source catalog.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		cat, err := source.Fetch(ctx)
		return catalogMsg{catalog: cat, err: err}
	}
}
