// Package image renders product preview images into terminal escape
// sequences. Kitty, iTerm2, and Sixel terminals go through go-termimg; every
// other true-color terminal gets a Unicode half-block fallback. Images are
// downscaled to the target cell area before rendering.
package image

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"gitlab.com/tinyland/lab/vitrine/pkg/terminal"
)

// Protocol identifies the rendering backend.
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolHalfblock
	ProtocolKitty
	ProtocolITerm2
	ProtocolSixel
)

func (p Protocol) String() string {
	switch p {
	case ProtocolHalfblock:
		return "halfblock"
	case ProtocolKitty:
		return "kitty"
	case ProtocolITerm2:
		return "iterm2"
	case ProtocolSixel:
		return "sixel"
	default:
		return "none"
	}
}

// Renderer converts images into terminal output at cell granularity.
type Renderer struct {
	protocol Protocol
	caps     *terminal.Capabilities
}

// NewRenderer selects a protocol and returns a renderer. override is the
// configured protocol name; "auto" (or empty) picks from the environment.
func NewRenderer(caps *terminal.Capabilities, override string) *Renderer {
	return &Renderer{
		protocol: selectProtocol(caps, override),
		caps:     caps,
	}
}

// Protocol returns the active protocol.
func (r *Renderer) Protocol() Protocol {
	return r.protocol
}

// Render converts raw encoded image bytes (PNG/JPEG/GIF) into a terminal
// escape string no larger than widthCells x heightCells.
func (r *Renderer) Render(data []byte, widthCells, heightCells int) (string, error) {
	if r.protocol == ProtocolNone {
		return "", fmt.Errorf("image: rendering disabled")
	}
	if widthCells <= 0 || heightCells <= 0 {
		return "", fmt.Errorf("image: non-positive target %dx%d", widthCells, heightCells)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("image: decode: %w", err)
	}

	prepared := r.prepare(img, widthCells, heightCells)

	if r.protocol == ProtocolHalfblock {
		return renderHalfblocks(prepared, widthCells, heightCells), nil
	}
	return r.renderTermimg(prepared, widthCells, heightCells)
}

// prepare downscales to the pixel budget of the target cell area and applies
// a light sharpen to recover edge detail. Images already within budget pass
// through unscaled.
func (r *Renderer) prepare(img image.Image, widthCells, heightCells int) image.Image {
	if r.protocol == ProtocolHalfblock {
		// Half blocks pack two pixels per cell vertically and one per
		// cell horizontally.
		return scaleToFit(img, widthCells, heightCells*2)
	}

	maxW := widthCells * r.caps.CellW
	maxH := heightCells * r.caps.CellH
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	fitted := imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	return imaging.Sharpen(fitted, 0.5)
}

// scaleToFit resamples img to fit within maxW x maxH pixels, preserving
// aspect ratio. CatmullRom keeps hard edges readable at the tiny sizes the
// half-block path works with.
func scaleToFit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= maxW && srcH <= maxH {
		return img
	}

	scale := float64(maxW) / float64(srcW)
	if s := float64(maxH) / float64(srcH); s < scale {
		scale = s
	}
	w := int(float64(srcW) * scale)
	h := int(float64(srcH) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func (r *Renderer) renderTermimg(img image.Image, widthCells, heightCells int) (string, error) {
	var proto termimg.Protocol
	switch r.protocol {
	case ProtocolKitty:
		proto = termimg.Kitty
	case ProtocolITerm2:
		proto = termimg.ITerm2
	case ProtocolSixel:
		proto = termimg.Sixel
	default:
		return "", fmt.Errorf("image: protocol %s has no termimg backend", r.protocol)
	}

	ti := termimg.New(img)
	if ti == nil {
		return "", fmt.Errorf("image: termimg wrapper creation failed")
	}
	ti.Protocol(proto).Size(widthCells, heightCells).Scale(termimg.ScaleFit)
	return ti.Render()
}

// renderHalfblocks encodes two vertical pixels per cell with U+2580 and
// 24-bit colors: the top pixel as foreground, the bottom as background.
func renderHalfblocks(img image.Image, widthCells, heightCells int) string {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return ""
	}
	if w > widthCells {
		w = widthCells
	}
	if h > heightCells*2 {
		h = heightCells * 2
	}

	var sb strings.Builder
	sb.Grow(w * (h/2 + 1) * 30)

	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			top := nrgba.NRGBAAt(x, y)
			if y+1 >= h || top.A == 0 {
				if top.A == 0 {
					sb.WriteString("\x1b[0m ")
					continue
				}
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
				continue
			}
			bot := nrgba.NRGBAAt(x, y+1)
			if bot.A == 0 {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
				continue
			}
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}

// selectProtocol resolves the configured protocol name against what the
// terminal supports.
func selectProtocol(caps *terminal.Capabilities, override string) Protocol {
	switch override {
	case "kitty":
		return ProtocolKitty
	case "iterm2":
		return ProtocolITerm2
	case "sixel":
		return ProtocolSixel
	case "halfblock":
		return ProtocolHalfblock
	case "none":
		return ProtocolNone
	}

	// auto
	if !caps.TTY {
		return ProtocolNone
	}
	term := os.Getenv("TERM")
	prog := os.Getenv("TERM_PROGRAM")
	switch {
	case strings.Contains(term, "kitty"), strings.Contains(term, "ghostty"), prog == "ghostty":
		return ProtocolKitty
	case prog == "iTerm.app", prog == "WezTerm":
		return ProtocolITerm2
	}
	if caps.TrueColor {
		return ProtocolHalfblock
	}
	return ProtocolNone
}
