package terminal

// defaultCellW and defaultCellH are fallback cell pixel dimensions used when
// detection fails. Common for standard fonts at typical sizes.
const (
	defaultCellW = 8
	defaultCellH = 16
)

// detectCellSize returns the pixel dimensions of a single terminal cell.
// When the terminal does not report pixel dimensions (or the platform has
// no ioctl), the common 8x16 default is returned.
func detectCellSize() (cellW, cellH int) {
	w, h, err := cellSizeIoctl()
	if err == nil && w > 0 && h > 0 {
		return w, h
	}
	return defaultCellW, defaultCellH
}
