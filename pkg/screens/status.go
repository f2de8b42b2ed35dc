package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/vitrine/pkg/cache"
	"gitlab.com/tinyland/lab/vitrine/pkg/components"
	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
)

// statusMsg carries one sampled snapshot of host and cache state.
type statusMsg struct {
	hostname string
	platform string
	uptime   time.Duration
	loadAvg  float64
	memUsed  uint64
	memTotal uint64
	cache    cache.Stats
	err      error
}

// Status shows host vitals alongside the catalog cache counters. Samples
// refresh every few seconds while the screen is visible.
type Status struct {
	deps   *Deps
	sample statusMsg
	loaded bool
}

// NewStatus builds the status screen.
func NewStatus(deps *Deps) *Status {
	return &Status{deps: deps}
}

func (s *Status) Route() nav.Route { return nav.RouteStatus }

func (s *Status) Init() tea.Cmd { return s.sampleCmd() }

const statusInterval = 3 * time.Second

func (s *Status) sampleCmd() tea.Cmd {
	store := s.deps.Cache
	return func() tea.Msg {
		var msg statusMsg

		info, err := host.Info()
		if err != nil {
			msg.err = fmt.Errorf("host info: %w", err)
			return msg
		}
		msg.hostname = info.Hostname
		msg.platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
		msg.uptime = time.Duration(info.Uptime) * time.Second

		if avg, err := load.Avg(); err == nil {
			msg.loadAvg = avg.Load1
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			msg.memUsed = vm.Used
			msg.memTotal = vm.Total
		}
		if store != nil {
			msg.cache = store.Stats()
		}
		return msg
	}
}

type statusTickMsg struct{}

func (s *Status) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		s.sample = msg
		s.loaded = true
		return s, tea.Tick(statusInterval, func(time.Time) tea.Msg { return statusTickMsg{} })
	case statusTickMsg:
		return s, s.sampleCmd()
	}
	return s, nil
}

func (s *Status) View(width, height int) string {
	th := s.deps.theme()
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))

	var lines []string
	lines = append(lines, components.TitleBar(th, width, "vitrine · status"), "")

	switch {
	case s.loaded && s.sample.err != nil:
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Err))
		lines = append(lines, errStyle.Render(s.sample.err.Error()))
	case !s.loaded:
		lines = append(lines, dim.Render("sampling…"))
	default:
		m := s.sample
		lines = append(lines,
			dim.Render("host"),
			kv("hostname", m.hostname),
			kv("platform", m.platform),
			kv("uptime", m.uptime.Truncate(time.Minute).String()),
			kv("load (1m)", fmt.Sprintf("%.2f", m.loadAvg)),
			kv("memory", fmt.Sprintf("%s / %s", formatBytes(m.memUsed), formatBytes(m.memTotal))),
			"",
			dim.Render("catalog cache"),
			kv("entries", fmt.Sprintf("%d", m.cache.Entries)),
			kv("hits", fmt.Sprintf("%d", m.cache.Hits)),
			kv("misses", fmt.Sprintf("%d", m.cache.Misses)),
			kv("evictions", fmt.Sprintf("%d", m.cache.Evictions)),
			"",
			dim.Render("source"),
			kv("name", s.deps.Source.Name()),
		)
	}

	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, components.HelpBar(th, width,
		components.KeyHint{Key: "esc", Desc: "back"},
		components.KeyHint{Key: "q", Desc: "quit"},
	))
	return lipgloss.JoinVertical(lipgloss.Left, lines[:height]...)
}

func kv(key, value string) string {
	return "  " + components.PadRight(key, 12) + value
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
