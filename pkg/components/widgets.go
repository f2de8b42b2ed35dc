package components

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vitrine/pkg/theme"
)

// PriceTag renders a price string in the theme's price color, bold.
func PriceTag(th theme.Theme, price string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.Price)).
		Bold(true).
		Render(price)
}

// StockBadge renders an availability marker.
func StockBadge(th theme.Theme, inStock bool) string {
	if inStock {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.InStock)).
			Render("● in stock")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.OutOfStock)).
		Render("○ out of stock")
}

// KeyHint is one entry in a help bar.
type KeyHint struct {
	Key  string
	Desc string
}

// HelpBar renders key hints as "key desc" pairs separated by dots, truncated
// to width.
func HelpBar(th theme.Theme, width int, hints ...KeyHint) string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.HelpKey)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.HelpDesc))

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	bar := strings.Join(parts, descStyle.Render(" · "))
	return TruncateWithTail(bar, width, "…")
}

// Highlight wraps every case-insensitive occurrence of query in s with the
// theme's search highlight color. An empty query returns s unchanged.
//
// Lowercasing can change a rune's encoded width (Ⱥ is two bytes, ⱥ is
// three), so offsets found in the lowered text are mapped back to the
// original through a per-byte offset table instead of indexing s directly.
func Highlight(th theme.Theme, s, query string) string {
	if query == "" {
		return s
	}
	needle := strings.ToLower(query)

	var lowered strings.Builder
	lowered.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offsets = append(offsets, i)
		}
		lowered.WriteRune(lr)
	}
	offsets = append(offsets, len(s))
	low := lowered.String()

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.SearchHighlight)).
		Bold(true)

	var sb strings.Builder
	pos := 0
	for {
		i := strings.Index(low[pos:], needle)
		if i < 0 {
			sb.WriteString(s[offsets[pos]:])
			return sb.String()
		}
		start := pos + i
		end := start + len(needle)
		sb.WriteString(s[offsets[pos]:offsets[start]])
		sb.WriteString(style.Render(s[offsets[start]:offsets[end]]))
		pos = end
	}
}

// TitleBar renders a screen title padded to width with the theme's title
// color on the accent border.
func TitleBar(th theme.Theme, width int, title string) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.Title)).
		Bold(true).
		Width(width)
	return style.Render(TruncateWithTail(title, width, "…"))
}
