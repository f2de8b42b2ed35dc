package terminal

import "testing"

func TestProbeReturnsUsableDefaults(t *testing.T) {
	caps := Probe()
	if caps == nil {
		t.Fatal("Probe returned nil")
	}
	if caps.Size.Cols <= 0 || caps.Size.Rows <= 0 {
		t.Errorf("Size = %+v, want positive defaults even without a TTY", caps.Size)
	}
	if caps.CellW <= 0 || caps.CellH <= 0 {
		t.Errorf("cell size = %dx%d, want positive fallback", caps.CellW, caps.CellH)
	}
}

func TestProbeIsCached(t *testing.T) {
	if Probe() != Probe() {
		t.Error("Probe returned distinct values across calls")
	}
}

func TestDetectCellSizeFallback(t *testing.T) {
	w, h := detectCellSize()
	if w <= 0 || h <= 0 {
		t.Errorf("detectCellSize = %dx%d, want positive", w, h)
	}
}

func TestIsMuxReadsEnvironment(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	if !isMux() {
		t.Error("isMux = false with TMUX set")
	}

	t.Setenv("TMUX", "")
	t.Setenv("ZELLIJ", "")
	t.Setenv("TERM", "xterm-256color")
	if isMux() {
		t.Error("isMux = true without multiplexer hints")
	}
}

func TestIsSSHReadsEnvironment(t *testing.T) {
	t.Setenv("SSH_CONNECTION", "10.0.0.1 50000 10.0.0.2 22")
	if !isSSH() {
		t.Error("isSSH = false with SSH_CONNECTION set")
	}

	t.Setenv("SSH_CONNECTION", "")
	t.Setenv("SSH_TTY", "")
	if isSSH() {
		t.Error("isSSH = true without SSH hints")
	}
}
