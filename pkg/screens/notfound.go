package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vitrine/pkg/components"
	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
)

// NotFound is the terminal fallback screen. It is the zero route, so any
// unresolvable path lands here.
type NotFound struct {
	deps *Deps
	path string
}

// NewNotFound builds the fallback screen. The offending path, when known,
// arrives as the navigation payload.
func NewNotFound(deps *Deps, args nav.Args) *NotFound {
	nf := &NotFound{deps: deps}
	if p, ok := args.Payload.(string); ok {
		nf.path = p
	}
	return nf
}

func (n *NotFound) Route() nav.Route { return nav.RouteNotFound }

func (n *NotFound) Init() tea.Cmd { return nil }

func (n *NotFound) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return n, GoToReplace(nav.RouteHome, nil)
	}
	return n, nil
}

func (n *NotFound) View(width, height int) string {
	th := n.deps.theme()
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Err)).Bold(true)

	var lines []string
	lines = append(lines, components.TitleBar(th, width, "vitrine"), "")
	lines = append(lines, errStyle.Render("there is nothing here"))
	if n.path != "" {
		lines = append(lines, dim.Render("unknown path: "+n.path))
	}
	lines = append(lines, "", dim.Render("press enter to return to the catalog"))

	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, components.HelpBar(th, width,
		components.KeyHint{Key: "enter", Desc: "home"},
		components.KeyHint{Key: "q", Desc: "quit"},
	))
	return lipgloss.JoinVertical(lipgloss.Left, lines[:height]...)
}
