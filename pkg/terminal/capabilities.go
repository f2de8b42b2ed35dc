// Package terminal probes what the hosting terminal can do: whether stdout
// is a TTY, the color profile, the window size, and the pixel dimensions of
// one cell (needed for inline image sizing). Probing runs once per process.
package terminal

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Size is the terminal window size in cells.
type Size struct {
	Cols int
	Rows int
}

// Capabilities is the cached probe result for the current session.
type Capabilities struct {
	TTY       bool             // stdout is a terminal
	Profile   termenv.Profile  // color profile (ascii..truecolor)
	TrueColor bool             // 24-bit color support
	Size      Size             // window size in cells
	CellW     int              // one cell's width in pixels
	CellH     int              // one cell's height in pixels
	SSH       bool             // running over SSH
	Mux       bool             // inside tmux/screen/zellij
}

var (
	cached    *Capabilities
	probeOnce sync.Once
)

// Probe performs terminal detection and caches the result. Safe to call
// from multiple goroutines; detection runs exactly once.
func Probe() *Capabilities {
	probeOnce.Do(func() {
		cached = probe()
	})
	return cached
}

func probe() *Capabilities {
	caps := &Capabilities{
		TTY:     isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		Profile: termenv.ColorProfile(),
		SSH:     isSSH(),
		Mux:     isMux(),
		Size:    Size{Cols: 80, Rows: 24},
	}
	caps.TrueColor = caps.Profile == termenv.TrueColor

	if caps.TTY {
		if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
			caps.Size = Size{Cols: w, Rows: h}
		}
	}

	caps.CellW, caps.CellH = detectCellSize()
	return caps
}

// isSSH reports whether the process appears to run over an SSH session.
func isSSH() bool {
	return os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_TTY") != ""
}

// isMux reports whether the process runs inside a terminal multiplexer.
func isMux() bool {
	if os.Getenv("TMUX") != "" || os.Getenv("ZELLIJ") != "" {
		return true
	}
	return strings.HasPrefix(os.Getenv("TERM"), "screen")
}
