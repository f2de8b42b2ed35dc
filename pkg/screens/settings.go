package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vitrine/pkg/components"
	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
	"gitlab.com/tinyland/lab/vitrine/pkg/theme"
)

// Settings lets the user pick a theme and shows the effective rendering
// setup. Theme changes apply immediately through Deps.SetTheme.
type Settings struct {
	deps   *Deps
	names  []string
	cursor int
}

// NewSettings builds the settings screen with the cursor on the active theme.
func NewSettings(deps *Deps) *Settings {
	s := &Settings{deps: deps, names: theme.Names()}
	active := deps.theme().Name
	for i, name := range s.names {
		if name == active {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *Settings) Route() nav.Route { return nav.RouteSettings }

func (s *Settings) Init() tea.Cmd { return nil }

func (s *Settings) Update(msg tea.Msg) (Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.names)-1 {
			s.cursor++
		}
	case "enter":
		if s.deps.SetTheme != nil && s.cursor < len(s.names) {
			s.deps.SetTheme(s.names[s.cursor])
		}
	}
	return s, nil
}

func (s *Settings) View(width, height int) string {
	th := s.deps.theme()
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Bold(true)

	var lines []string
	lines = append(lines, components.TitleBar(th, width, "vitrine · settings"), "")
	lines = append(lines, dim.Render("theme"))

	for i, name := range s.names {
		marker := "  "
		label := name
		if name == th.Name {
			label += " (active)"
		}
		if i == s.cursor {
			marker = "> "
			lines = append(lines, marker+accent.Render(label))
			continue
		}
		lines = append(lines, marker+label)
	}

	lines = append(lines, "", dim.Render("rendering"))
	if s.deps.Images != nil {
		lines = append(lines, "  image protocol: "+s.deps.Images.Protocol().String())
	} else {
		lines = append(lines, "  image previews: off")
	}
	if s.deps.Config != nil {
		lines = append(lines, "  catalog source: "+s.deps.Source.Name())
		lines = append(lines, "  cache dir: "+s.deps.Config.General.CacheDir)
	}

	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, components.HelpBar(th, width,
		components.KeyHint{Key: "enter", Desc: "apply"},
		components.KeyHint{Key: "↑/↓", Desc: "move"},
		components.KeyHint{Key: "esc", Desc: "back"},
	))
	return lipgloss.JoinVertical(lipgloss.Left, lines[:height]...)
}
