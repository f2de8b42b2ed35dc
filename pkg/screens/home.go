package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/vitrine/pkg/catalog"
	"gitlab.com/tinyland/lab/vitrine/pkg/components"
	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
)

// Home lists the catalog. It is the root of the navigation history.
type Home struct {
	deps    *Deps
	spin    spinner.Model
	loading bool
	err     error

	products []catalog.Product
	cursor   int
}

// NewHome builds the catalog listing screen.
func NewHome(deps *Deps) *Home {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(deps.theme().Accent))
	return &Home{
		deps:    deps,
		spin:    sp,
		loading: true,
	}
}

func (h *Home) Route() nav.Route { return nav.RouteHome }

func (h *Home) Init() tea.Cmd {
	return tea.Batch(h.spin.Tick, loadCatalog(h.deps.Source))
}

func (h *Home) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		h.loading = false
		h.err = msg.err
		if msg.err != nil {
			h.deps.logger().Warn("catalog load failed", "source", h.deps.Source.Name(), "error", msg.err)
			return h, nil
		}
		h.products = msg.catalog.Search("")
		if h.cursor >= len(h.products) {
			h.cursor = 0
		}
		return h, nil

	case spinner.TickMsg:
		if !h.loading {
			return h, nil
		}
		var cmd tea.Cmd
		h.spin, cmd = h.spin.Update(msg)
		return h, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.cursor > 0 {
				h.cursor--
			}
		case "down", "j":
			if h.cursor < len(h.products)-1 {
				h.cursor++
			}
		case "enter":
			return h, h.openSelected()
		case "r":
			h.loading = true
			h.err = nil
			return h, tea.Batch(h.spin.Tick, loadCatalog(h.deps.Source))
		case "/":
			return h, GoTo(nav.RouteSearch, nil)
		case "s":
			return h, GoTo(nav.RouteSettings, nil)
		case "i":
			return h, GoTo(nav.RouteStatus, nil)
		}
		return h, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return h, nil
		}
		for i, p := range h.products {
			if zone.Get(h.rowID(p)).InBounds(msg) {
				h.cursor = i
				return h, h.openSelected()
			}
		}
		return h, nil
	}
	return h, nil
}

func (h *Home) openSelected() tea.Cmd {
	if h.cursor < 0 || h.cursor >= len(h.products) {
		return nil
	}
	p := h.products[h.cursor]
	return GoTo(nav.RouteDetails, map[string]any{
		"id":    p.ID,
		"title": p.Title,
		"data":  p,
	})
}

func (h *Home) rowID(p catalog.Product) string {
	return "home:" + p.ID
}

func (h *Home) View(width, height int) string {
	th := h.deps.theme()
	var lines []string
	lines = append(lines, components.TitleBar(th, width, "vitrine · catalog"))

	switch {
	case h.loading:
		lines = append(lines, "", h.spin.View()+" loading catalog from "+h.deps.Source.Name())
	case h.err != nil:
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Err))
		lines = append(lines, "", errStyle.Render("could not load catalog: "+h.err.Error()), "",
			lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim)).Render("press r to retry"))
	case len(h.products) == 0:
		lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim)).Render("the catalog is empty"))
	default:
		lines = append(lines, "")
		visible := height - 4 // title, blank, blank, help
		if visible < 1 {
			visible = 1
		}
		start := 0
		if h.cursor >= visible {
			start = h.cursor - visible + 1
		}
		for i := start; i < len(h.products) && i-start < visible; i++ {
			lines = append(lines, h.renderRow(i, width))
		}
	}

	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	help := components.HelpBar(th, width,
		components.KeyHint{Key: "↑/↓", Desc: "move"},
		components.KeyHint{Key: "enter", Desc: "details"},
		components.KeyHint{Key: "/", Desc: "search"},
		components.KeyHint{Key: "s", Desc: "settings"},
		components.KeyHint{Key: "i", Desc: "status"},
		components.KeyHint{Key: "q", Desc: "quit"},
	)
	lines = append(lines, help)
	return lipgloss.JoinVertical(lipgloss.Left, lines[:height]...)
}

func (h *Home) renderRow(i, width int) string {
	th := h.deps.theme()
	p := h.products[i]

	marker := "  "
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Foreground))
	if i == h.cursor {
		marker = "> "
		rowStyle = rowStyle.Foreground(lipgloss.Color(th.Accent)).Bold(true)
	}

	price := components.PriceTag(th, p.DisplayPrice())
	badge := components.StockBadge(th, p.InStock)
	meta := fmt.Sprintf("%s  %s", price, badge)

	titleWidth := width - 2 - components.VisibleLen(meta) - 2
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := components.PadRight(components.TruncateWithTail(p.Title, titleWidth, "…"), titleWidth)

	row := marker + rowStyle.Render(title) + "  " + meta
	return zone.Mark(h.rowID(p), components.Truncate(row, width))
}
