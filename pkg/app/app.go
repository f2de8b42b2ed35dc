// Package app owns the root bubbletea model. It implements nav.Delegate:
// router navigation swaps the active screen here, and screens request
// navigation by emitting messages the root model translates into router
// calls.
package app

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/vitrine/pkg/nav"
	"gitlab.com/tinyland/lab/vitrine/pkg/screens"
)

// backMsg delivers a pop result to the screen that was revealed.
type backMsg struct {
	result any
}

// Model is the root program model. Its screen stack mirrors the router's
// history: the router decides where navigation goes, the model decides what
// that looks like.
type Model struct {
	router *nav.Router
	deps   *screens.Deps
	logger *slog.Logger

	stack   []screens.Screen
	pending tea.Cmd // init/result command produced by the last delegate call

	width    int
	height   int
	quitting bool
	lastErr  string

	initialPath string
	navSub      nav.Subscription
}

// Options configures the root model.
type Options struct {
	Deps   *screens.Deps
	Logger *slog.Logger

	// InitialPath, when set, is resolved with NavigateByPath after startup
	// (e.g. "-open /settings" on the command line).
	InitialPath string
}

// New wires the router to a fresh root model, registers every screen
// factory, and seeds the display with the home screen.
func New(opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Model{
		deps:        opts.Deps,
		logger:      logger,
		initialPath: opts.InitialPath,
	}
	m.router = nav.New(nav.RouteHome, m, logger)
	m.router.RegisterMany(screens.Factories(opts.Deps))

	m.navSub = m.router.AddRouteListener(func(route nav.Route, args nav.Args) {
		logger.Debug("route changed", "route", route.Path(), "title", args.Title)
	})

	// The history is seeded with home; mirror that on the screen stack.
	factory, ok := m.router.Registry().Lookup(nav.RouteHome)
	if !ok {
		return nil, fmt.Errorf("app: home screen is not registered")
	}
	home, ok := factory(nav.Args{}).(screens.Screen)
	if !ok {
		return nil, fmt.Errorf("app: home factory did not build a screen")
	}
	m.stack = []screens.Screen{home}
	return m, nil
}

// Router exposes the navigation facade, mostly for tests.
func (m *Model) Router() *nav.Router { return m.router }

func (m *Model) active() screens.Screen {
	return m.stack[len(m.stack)-1]
}

// Push implements nav.Delegate.
func (m *Model) Push(route nav.Route, args nav.Args) error {
	scr, err := m.build(route, args)
	if err != nil {
		return err
	}
	m.stack = append(m.stack, scr)
	m.pending = scr.Init()
	return nil
}

// Replace implements nav.Delegate.
func (m *Model) Replace(route nav.Route, args nav.Args) error {
	scr, err := m.build(route, args)
	if err != nil {
		return err
	}
	if len(m.stack) == 0 {
		m.stack = []screens.Screen{scr}
	} else {
		m.stack[len(m.stack)-1] = scr
	}
	m.pending = scr.Init()
	return nil
}

// Pop implements nav.Delegate. Leaving the root screen quits the program.
func (m *Model) Pop(result any) error {
	if len(m.stack) <= 1 {
		m.quitting = true
		m.pending = tea.Quit
		return nil
	}
	m.stack = m.stack[:len(m.stack)-1]
	if result != nil {
		m.pending = func() tea.Msg { return backMsg{result: result} }
	} else {
		m.pending = nil
	}
	return nil
}

func (m *Model) build(route nav.Route, args nav.Args) (screens.Screen, error) {
	factory, ok := m.router.Registry().Lookup(route)
	if !ok {
		return nil, fmt.Errorf("no screen registered for %s", route.Path())
	}
	scr, ok := factory(args).(screens.Screen)
	if !ok {
		return nil, fmt.Errorf("factory for %s did not build a screen", route.Path())
	}
	return scr, nil
}

// takePending returns and clears the command left behind by the last
// delegate call.
func (m *Model) takePending() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.active().Init()}
	if m.initialPath != "" {
		path := m.initialPath
		cmds = append(cmds, func() tea.Msg {
			return openPathMsg{path: path}
		})
	}
	return tea.Batch(cmds...)
}

// openPathMsg resolves a textual path through the router once the program
// is running.
type openPathMsg struct {
	path string
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			// Search needs the rune for typing.
			if m.active().Route() != nav.RouteSearch {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			return m.applyResult(m.router.Pop(nil))
		case "backspace":
			// Search needs backspace for editing.
			if m.active().Route() != nav.RouteSearch {
				return m.applyResult(m.router.Pop(nil))
			}
		}
		return m.forward(msg)

	case screens.GoToMsg:
		if msg.Replace {
			return m.applyResult(m.router.Replace(msg.Route, msg.Data))
		}
		return m.applyResult(m.router.Push(msg.Route, msg.Data))

	case screens.GoBackMsg:
		return m.applyResult(m.router.Pop(msg.Result))

	case openPathMsg:
		res := m.router.NavigateByPath(msg.path, nil)
		if !res.OK {
			// Unknown paths land on the fallback screen with the path
			// attached so the user sees what went wrong.
			m.logger.Warn("open by path failed", "path", msg.path, "error", res.Err)
			return m.applyResult(m.router.Replace(nav.RouteNotFound, msg.path))
		}
		return m.applyResult(res)

	default:
		return m.forward(msg)
	}
}

// applyResult folds a router Result into the model: surface failures on the
// status bar, run whatever command the delegate left pending.
func (m *Model) applyResult(res nav.Result) (tea.Model, tea.Cmd) {
	if !res.OK {
		m.lastErr = res.Err
		return m, m.takePending()
	}
	m.lastErr = ""
	return m, m.takePending()
}

// forward hands a message to the active screen.
func (m *Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.active().Update(msg)
	m.stack[len(m.stack)-1] = updated
	return m, cmd
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "starting…"
	}

	body := m.active().View(m.width, m.height-1)
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar()))
}

// statusBar renders the breadcrumb of the navigation history plus the last
// navigation error, if any.
func (m *Model) statusBar() string {
	th := m.deps.Theme()

	var crumbs []string
	for _, route := range m.router.History() {
		crumbs = append(crumbs, route.Path())
	}
	left := " " + strings.Join(crumbs, " › ")

	right := ""
	if m.lastErr != "" {
		right = m.lastErr + " "
	}

	barStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(th.Border)).
		Foreground(lipgloss.Color(th.Foreground)).
		Width(m.width)
	if m.lastErr != "" {
		barStyle = barStyle.Foreground(lipgloss.Color(th.Err))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return barStyle.Render(left + strings.Repeat(" ", gap) + right)
}
