package sprites

import (
	"image"
	"image/draw"
)

// ExtractSheet copies every rectangle out of sheet. Rectangles whose
// origin lies outside the sheet produce a 0x0 image; rectangles that
// extend past the right or bottom edge are clipped.
func ExtractSheet(sheet image.Image, rects []Rect) map[string]*image.RGBA {
	out := make(map[string]*image.RGBA, len(rects))
	for _, r := range rects {
		out[r.Name] = extract(sheet, r)
	}
	return out
}

func extract(sheet image.Image, r Rect) *image.RGBA {
	b := sheet.Bounds()
	w, h := b.Dx(), b.Dy()
	if r.X < 0 || r.Y < 0 || r.X >= w || r.Y >= h {
		return empty()
	}

	cw, ch := r.Width, r.Height
	if r.X+cw > w {
		cw = w - r.X
	}
	if r.Y+ch > h {
		ch = h - r.Y
	}
	if cw <= 0 || ch <= 0 {
		return empty()
	}

	dst := image.NewRGBA(image.Rect(0, 0, cw, ch))
	draw.Draw(dst, dst.Bounds(), sheet, b.Min.Add(image.Pt(r.X, r.Y)), draw.Src)
	return dst
}

func empty() *image.RGBA {
	return image.NewRGBA(image.Rectangle{})
}
