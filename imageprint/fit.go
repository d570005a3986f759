package imageprint

import (
	"image"

	"github.com/nfnt/resize"
)

// Fit shrinks img so it fits a terminal of cols x rows character cells.
// The pixel modes print two cells per pixel, so the width budget is
// halved. Images that already fit are returned unchanged.
func Fit(img image.Image, cols, rows uint, m Mode) image.Image {
	if cols == 0 || rows == 0 {
		return img
	}
	maxW, maxH := cols, rows
	if m == TrueColor || m == Color || m == NoColor {
		maxW = cols / 2
	}
	size := img.Bounds().Size()
	if uint(size.X) <= maxW && uint(size.Y) <= maxH {
		return img
	}
	return resize.Thumbnail(maxW, maxH, img, resize.Lanczos3)
}
