// Package ttesting holds helpers shared by the tests of this module.
package ttesting

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

// AssertSize checks the width and height of img.
func AssertSize(t *testing.T, name string, img image.Image, wantW, wantH int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if img == nil {
			t.Fatalf("got nil image; want %dx%d", wantW, wantH)
		}
		sz := img.Bounds().Size()
		if sz.X != wantW || sz.Y != wantH {
			t.Errorf("got %dx%d; want %dx%d", sz.X, sz.Y, wantW, wantH)
		}
	})
}

// AssertColorAt compares the pixel at (x, y), relative to the image origin,
// with want.
func AssertColorAt(t *testing.T, name string, img image.Image, x, y int, want color.Color) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		p := img.Bounds().Min.Add(image.Pt(x, y))
		got := color.RGBAModel.Convert(img.At(p.X, p.Y)).(color.RGBA)
		w := color.RGBAModel.Convert(want).(color.RGBA)
		if got != w {
			t.Errorf("pixel (%d,%d): got %v; want %v", x, y, got, w)
		}
	})
}

// AssertSameImage compares two images pixel by pixel.
func AssertSameImage(t *testing.T, name string, got, want image.Image) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		gs, ws := got.Bounds().Size(), want.Bounds().Size()
		if gs != ws {
			t.Fatalf("got size %v; want %v", gs, ws)
		}
		for y := 0; y < ws.Y; y++ {
			for x := 0; x < ws.X; x++ {
				g := color.RGBAModel.Convert(got.At(got.Bounds().Min.X+x, got.Bounds().Min.Y+y))
				w := color.RGBAModel.Convert(want.At(want.Bounds().Min.X+x, want.Bounds().Min.Y+y))
				if g != w {
					t.Fatalf("pixel (%d,%d): got %v; want %v", x, y, g, w)
				}
			}
		}
	})
}

// Solid returns a w x h image filled with c.
func Solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// Pattern returns an opaque w x h image in which every pixel up to 256x256
// has a distinct color, which makes misplaced copies easy to spot.
func Pattern(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 0xFF})
		}
	}
	return img
}
