package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/vitrine/pkg/terminal"
)

func testCaps() *terminal.Capabilities {
	return &terminal.Capabilities{
		TTY:       true,
		TrueColor: true,
		Size:      terminal.Size{Cols: 80, Rows: 24},
		CellW:     8,
		CellH:     16,
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestSelectProtocolOverrides(t *testing.T) {
	caps := testCaps()
	cases := []struct {
		override string
		want     Protocol
	}{
		{"kitty", ProtocolKitty},
		{"iterm2", ProtocolITerm2},
		{"sixel", ProtocolSixel},
		{"halfblock", ProtocolHalfblock},
		{"none", ProtocolNone},
	}
	for _, tc := range cases {
		if got := selectProtocol(caps, tc.override); got != tc.want {
			t.Errorf("selectProtocol(%q) = %s, want %s", tc.override, got, tc.want)
		}
	}
}

func TestSelectProtocolAutoWithoutTTY(t *testing.T) {
	caps := testCaps()
	caps.TTY = false
	if got := selectProtocol(caps, "auto"); got != ProtocolNone {
		t.Errorf("selectProtocol without TTY = %s, want none", got)
	}
}

func TestSelectProtocolAutoKittyTerm(t *testing.T) {
	t.Setenv("TERM", "xterm-kitty")
	t.Setenv("TERM_PROGRAM", "")
	if got := selectProtocol(testCaps(), "auto"); got != ProtocolKitty {
		t.Errorf("selectProtocol on kitty TERM = %s, want kitty", got)
	}
}

func TestSelectProtocolAutoTrueColorFallback(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TERM_PROGRAM", "")
	if got := selectProtocol(testCaps(), "auto"); got != ProtocolHalfblock {
		t.Errorf("selectProtocol on plain true-color terminal = %s, want halfblock", got)
	}
}

func TestRenderHalfblockProducesColoredCells(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, A: 255})

	r := NewRenderer(testCaps(), "halfblock")
	out, err := r.Render(encodePNG(t, img), 4, 4)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "▀") {
		t.Error("output has no half-block glyphs")
	}
	if !strings.Contains(out, "\x1b[38;2;255;0;0m") {
		t.Error("output missing red foreground sequence")
	}
	if !strings.Contains(out, "\x1b[48;2;0;0;255m") {
		t.Error("output missing blue background sequence")
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Error("output does not reset attributes at the end")
	}
}

func TestRenderHalfblockTransparentPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{}) // fully transparent top
	img.SetNRGBA(0, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	r := NewRenderer(testCaps(), "halfblock")
	out, err := r.Render(encodePNG(t, img), 2, 2)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "\x1b[0m ") {
		t.Error("transparent top pixel should render as a reset blank cell")
	}
}

func TestRenderDownscalesOversizedImages(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(4 * x), G: uint8(4 * y), A: 255})
		}
	}

	r := NewRenderer(testCaps(), "halfblock")
	out, err := r.Render(encodePNG(t, img), 8, 4)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) > 4 {
		t.Errorf("rendered %d lines, want at most 4", len(lines))
	}
}

func TestRenderRejectsGarbage(t *testing.T) {
	r := NewRenderer(testCaps(), "halfblock")
	if _, err := r.Render([]byte("not an image"), 4, 4); err == nil {
		t.Error("Render accepted undecodable bytes")
	}
}

func TestRenderDisabled(t *testing.T) {
	r := NewRenderer(testCaps(), "none")
	if _, err := r.Render(nil, 4, 4); err == nil {
		t.Error("Render succeeded with protocol none")
	}
}
