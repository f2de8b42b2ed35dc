package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vitrine/pkg/catalog"
	"gitlab.com/tinyland/lab/vitrine/pkg/components"
	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
)

// previewMsg delivers a rendered image preview (or the reason there is none).
type previewMsg struct {
	rendered string
	err      error
}

// Details shows one product: price, availability, tags, scrollable
// description, and an inline image preview when the terminal can draw one.
type Details struct {
	deps *Deps

	product catalog.Product
	found   bool
	lookup  string // product ID still to resolve
	err     error

	preview    string
	previewErr error

	vp      viewport.Model
	vpReady bool
}

// NewDetails builds the product detail screen from navigation arguments. A
// full product may arrive as the payload; otherwise the ID is resolved
// against the catalog on init.
func NewDetails(deps *Deps, args nav.Args) *Details {
	d := &Details{deps: deps, lookup: args.ID}
	if p, ok := args.Payload.(catalog.Product); ok {
		d.product = p
		d.found = true
	}
	return d
}

func (d *Details) Route() nav.Route { return nav.RouteDetails }

func (d *Details) Init() tea.Cmd {
	var cmds []tea.Cmd
	if !d.found && d.lookup != "" {
		cmds = append(cmds, loadCatalog(d.deps.Source))
	}
	if d.found {
		cmds = append(cmds, d.loadPreview())
	}
	return tea.Batch(cmds...)
}

// loadPreview fetches and renders the product image. Nil when previews are
// disabled, unavailable, or the product has no image.
func (d *Details) loadPreview() tea.Cmd {
	if d.deps.Fetcher == nil || d.deps.Images == nil || d.product.ImageURL == "" {
		return nil
	}
	if d.deps.Config != nil && !d.deps.Config.UI.ImagePreviews {
		return nil
	}
	url := d.product.ImageURL
	fetcher := d.deps.Fetcher
	renderer := d.deps.Images
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		data, err := fetcher.FetchImage(ctx, url)
		if err != nil {
			return previewMsg{err: err}
		}
		rendered, err := renderer.Render(data, 36, 12)
		if err != nil {
			return previewMsg{err: err}
		}
		return previewMsg{rendered: rendered}
	}
}

func (d *Details) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		if msg.err != nil {
			d.err = msg.err
			return d, nil
		}
		p, ok := msg.catalog.FindByID(d.lookup)
		if !ok {
			d.err = fmt.Errorf("no product with id %q", d.lookup)
			return d, nil
		}
		d.product = p
		d.found = true
		d.vpReady = false
		return d, d.loadPreview()

	case previewMsg:
		d.preview = msg.rendered
		d.previewErr = msg.err
		if msg.err != nil {
			d.deps.logger().Debug("image preview unavailable", "product", d.product.ID, "error", msg.err)
		}
		return d, nil

	case tea.KeyMsg:
		if !d.vpReady {
			return d, nil
		}
		var cmd tea.Cmd
		d.vp, cmd = d.vp.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *Details) View(width, height int) string {
	th := d.deps.theme()
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))

	if d.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Err))
		return lipgloss.JoinVertical(lipgloss.Left,
			components.TitleBar(th, width, "vitrine · details"),
			"",
			errStyle.Render(d.err.Error()),
			"",
			dim.Render("press esc to go back"),
		)
	}
	if !d.found {
		return lipgloss.JoinVertical(lipgloss.Left,
			components.TitleBar(th, width, "vitrine · details"),
			"",
			dim.Render("looking up product…"),
		)
	}

	p := d.product
	var lines []string
	lines = append(lines, components.TitleBar(th, width, "vitrine · "+p.Title), "")

	if d.preview != "" {
		lines = append(lines, strings.Split(d.preview, "\n")...)
		lines = append(lines, "")
	}

	meta := components.PriceTag(th, p.DisplayPrice()) + "  " + components.StockBadge(th, p.InStock)
	lines = append(lines, meta)
	if len(p.Tags) > 0 {
		lines = append(lines, dim.Render("tags: "+strings.Join(p.Tags, ", ")))
	}
	lines = append(lines, "")

	used := len(lines) + 1 // + help bar
	bodyHeight := height - used
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	if !d.vpReady || d.vp.Width != width || d.vp.Height != bodyHeight {
		d.vp = viewport.New(width, bodyHeight)
		d.vp.SetContent(strings.Join(components.Wrap(p.Description, width), "\n"))
		d.vpReady = true
	}
	lines = append(lines, d.vp.View())

	lines = append(lines, components.HelpBar(th, width,
		components.KeyHint{Key: "↑/↓", Desc: "scroll"},
		components.KeyHint{Key: "esc", Desc: "back"},
		components.KeyHint{Key: "q", Desc: "quit"},
	))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
