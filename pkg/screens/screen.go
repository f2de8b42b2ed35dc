// Package screens contains the bubbletea models behind each vitrine route.
// The app layer constructs them through the route registry and swaps the
// active one as the router's history changes.
package screens

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/vitrine/pkg/cache"
	"gitlab.com/tinyland/lab/vitrine/pkg/catalog"
	"gitlab.com/tinyland/lab/vitrine/pkg/config"
	"gitlab.com/tinyland/lab/vitrine/pkg/image"
	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
	"gitlab.com/tinyland/lab/vitrine/pkg/theme"
)

// Screen is one routed view. Update returns the (possibly replaced) screen;
// View renders into the given cell budget.
type Screen interface {
	Route() nav.Route
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
}

// ImageFetcher retrieves raw encoded image bytes for a product image URL.
// *catalog.Client satisfies it; fixture-backed runs leave it nil.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Deps carries the shared services screens draw on. Theme is a getter so a
// change made on the settings screen shows up everywhere on the next render.
type Deps struct {
	Source   catalog.Source
	Fetcher  ImageFetcher
	Images   *image.Renderer
	Theme    func() theme.Theme
	SetTheme func(name string)
	Cache    *cache.Store
	Config   *config.Config
	Logger   *slog.Logger
}

func (d *Deps) theme() theme.Theme {
	if d.Theme != nil {
		return d.Theme()
	}
	return theme.Get("default")
}

func (d *Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Factories returns the screen constructor for every route, keyed for
// Router.RegisterMany. Each factory yields a Screen; the registry's return
// type is any because the router never inspects what it builds.
func Factories(deps *Deps) map[nav.Route]nav.ScreenFactory {
	return map[nav.Route]nav.ScreenFactory{
		nav.RouteNotFound: func(args nav.Args) any { return NewNotFound(deps, args) },
		nav.RouteHome:     func(args nav.Args) any { return NewHome(deps) },
		nav.RouteDetails:  func(args nav.Args) any { return NewDetails(deps, args) },
		nav.RouteSearch:   func(args nav.Args) any { return NewSearch(deps, args) },
		nav.RouteSettings: func(args nav.Args) any { return NewSettings(deps) },
		nav.RouteStatus:   func(args nav.Args) any { return NewStatus(deps) },
	}
}
