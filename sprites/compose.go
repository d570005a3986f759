package sprites

import (
	"image"
	"image/color"
	"image/draw"
)

// TransparencyKey fills the parts of a composed sheet no sprite covers.
// The classic player never draws those pixels.
var TransparencyKey = color.RGBA{R: 0, G: 198, B: 255, A: 255}

// ComposeSheet is the inverse of ExtractSheet. The sheet is exactly large
// enough to hold every supplied non-empty sprite at its rectangle origin.
// Missing and empty sprites neither get drawn nor affect the size.
//
// Sprites are copied without blending. Overlapping rectangles keep
// whichever sprite is drawn last.
func ComposeSheet(rects []Rect, sprites map[string]*image.RGBA) *image.RGBA {
	var width, height int
	for _, r := range rects {
		img := present(sprites, r.Name)
		if img == nil {
			continue
		}
		sz := img.Bounds().Size()
		width = max(width, r.X+sz.X)
		height = max(height, r.Y+sz.Y)
	}

	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(TransparencyKey), image.Point{}, draw.Src)

	for _, r := range rects {
		img := present(sprites, r.Name)
		if img == nil {
			continue
		}
		dst := image.Rectangle{Min: image.Pt(r.X, r.Y)}
		dst.Max = dst.Min.Add(img.Bounds().Size())
		draw.Draw(sheet, dst, img, img.Bounds().Min, draw.Src)
	}
	return sheet
}

func present(sprites map[string]*image.RGBA, name string) *image.RGBA {
	img, ok := sprites[name]
	if !ok || img == nil || img.Bounds().Empty() {
		return nil
	}
	return img
}
