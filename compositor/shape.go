package compositor

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/glog"

	"github.com/brian-armstrong/wsz/text/region"
)

// shapeMask is an alpha mask computed pixel by pixel from the window
// regions. Pixels of a window with polygons are opaque only inside one of
// them; windows without polygons stay rectangular.
type shapeMask struct {
	bounds  image.Rectangle
	windows []windowShape
}

type windowShape struct {
	area  image.Rectangle
	polys []region.Polygon
}

func (*shapeMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *shapeMask) Bounds() image.Rectangle {
	return m.bounds
}

func (m *shapeMask) At(x, y int) color.Color {
	for _, w := range m.windows {
		if !image.Pt(x, y).In(w.area) {
			continue
		}
		if len(w.polys) == 0 {
			return color.Opaque
		}
		// Polygons are relative to the window origin; test pixel centers.
		px := float64(x-w.area.Min.X) + 0.5
		py := float64(y-w.area.Min.Y) + 0.5
		for _, p := range w.polys {
			if contains(p, px, py) {
				return color.Opaque
			}
		}
		return color.Transparent
	}
	return color.Opaque
}

// contains tests (x, y) against p with the even-odd rule.
func contains(p region.Polygon, x, y float64) bool {
	if len(p) < 3 {
		return false
	}
	in := false
	j := len(p) - 1
	for i := range p {
		xi, yi := float64(p[i].X), float64(p[i].Y)
		xj, yj := float64(p[j].X), float64(p[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
		j = i
	}
	return in
}

// Shape cuts the main and equalizer windows of a composited canvas to the
// polygons of r, leaving everything outside them fully transparent. The
// shade mode polygons do not apply to the full size windows and are
// ignored. A nil or empty r returns a copy of img.
func Shape(img *image.RGBA, r *region.Regions) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	if r.Empty() {
		draw.Draw(out, b, img, b.Min, draw.Src)
		return out
	}

	mask := &shapeMask{
		bounds: b,
		windows: []windowShape{
			{area: Main.Bounds(), polys: r.Main},
			{area: Equalizer.Bounds(), polys: r.Equalizer},
		},
	}
	glog.V(1).Infof("shaping canvas with %d main and %d equalizer polygons", len(r.Main), len(r.Equalizer))
	draw.DrawMask(out, b, img, b.Min, mask, b.Min, draw.Src)
	return out
}
