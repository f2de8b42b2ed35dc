package screens

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vitrine/pkg/catalog"
	"gitlab.com/tinyland/lab/vitrine/pkg/components"
	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
)

// Search filters the catalog as the user types. Matching is case-insensitive
// over id, title, description, and tags.
type Search struct {
	deps *Deps

	input   textinput.Model
	catalog *catalog.Catalog
	results []catalog.Product
	cursor  int
	err     error
}

// NewSearch builds the search screen. An initial query may arrive through
// the navigation payload.
func NewSearch(deps *Deps, args nav.Args) *Search {
	in := textinput.New()
	in.Placeholder = "type to filter the catalog"
	in.Prompt = "/ "
	in.Focus()
	if q, ok := args.Payload.(string); ok {
		in.SetValue(q)
	}
	return &Search{deps: deps, input: in}
}

func (s *Search) Route() nav.Route { return nav.RouteSearch }

func (s *Search) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadCatalog(s.deps.Source))
}

func (s *Search) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.catalog = msg.catalog
		s.refilter()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down":
			if s.cursor < len(s.results)-1 {
				s.cursor++
			}
			return s, nil
		case "enter":
			return s, s.openSelected()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.refilter()
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Search) refilter() {
	if s.catalog == nil {
		return
	}
	s.results = s.catalog.Search(s.input.Value())
	if s.cursor >= len(s.results) {
		s.cursor = 0
	}
}

func (s *Search) openSelected() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.results) {
		return nil
	}
	p := s.results[s.cursor]
	return GoTo(nav.RouteDetails, map[string]any{
		"id":    p.ID,
		"title": p.Title,
		"data":  p,
	})
}

func (s *Search) View(width, height int) string {
	th := s.deps.theme()
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))

	var lines []string
	lines = append(lines, components.TitleBar(th, width, "vitrine · search"))
	lines = append(lines, s.input.View(), "")

	query := s.input.Value()
	switch {
	case s.err != nil:
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Err))
		lines = append(lines, errStyle.Render("could not load catalog: "+s.err.Error()))
	case s.catalog == nil:
		lines = append(lines, dim.Render("loading catalog…"))
	case len(s.results) == 0:
		lines = append(lines, dim.Render("no products match"))
	default:
		visible := height - 5
		if visible < 1 {
			visible = 1
		}
		start := 0
		if s.cursor >= visible {
			start = s.cursor - visible + 1
		}
		for i := start; i < len(s.results) && i-start < visible; i++ {
			p := s.results[i]
			marker := "  "
			if i == s.cursor {
				marker = "> "
			}
			title := components.Highlight(th, p.Title, query)
			row := marker + title + "  " + dim.Render(p.ID)
			lines = append(lines, components.Truncate(row, width))
		}
	}

	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, components.HelpBar(th, width,
		components.KeyHint{Key: "enter", Desc: "open"},
		components.KeyHint{Key: "↑/↓", Desc: "move"},
		components.KeyHint{Key: "esc", Desc: "back"},
	))
	return lipgloss.JoinVertical(lipgloss.Left, lines[:height]...)
}
