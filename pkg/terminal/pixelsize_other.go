//go:build !unix

package terminal

import "errors"

// cellSizeIoctl is unavailable off Unix; callers fall back to defaults.
func cellSizeIoctl() (cellW, cellH int, err error) {
	return 0, 0, errors.New("cell size ioctl not supported on this platform")
}
