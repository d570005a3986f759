package main

import (
	"image"
	"os"

	"github.com/brian-armstrong/wsz/imageprint"
)

func out(img image.Image, m imageprint.Mode) error {
	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if termSize.WSXPixel != 0 && termSize.WSYPixel != 0 && (m == imageprint.RasTerm || m == imageprint.ITerm) {
				// Image protocols get pixels, not cells.
				img = imageprint.Fit(img, termSize.WSXPixel, termSize.WSYPixel, m)
			} else {
				img = imageprint.Fit(img, termSize.WSCol, termSize.WSRow, m)
			}
		}
	}
	return imageprint.Print(os.Stdout, img, m, *blanks)
}
