package sprites

// This file wraps the image codecs used for whole sheets and for exported
// sprites. Pixel work never goes through here.

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"

	"github.com/brian-armstrong/wsz/skinerr"
)

// Format is an output image format.
type Format int

const (
	PNG Format = iota
	BMP
	GIF
)

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	switch f {
	case BMP:
		return ".bmp"
	case GIF:
		return ".gif"
	default:
		return ".png"
	}
}

// ParseFormat parses "png", "bmp" or "gif" (case-insensitive, dot optional).
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "gif":
		return GIF, nil
	}
	return 0, skinerr.Argument("unsupported image format %q", s)
}

// Decode sniffs the format of data and decodes it into an RGBA image with
// its origin at (0, 0).
func Decode(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, skinerr.Codec(err, "decoding image")
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img as an *image.RGBA whose bounds start at (0, 0). Images
// that already satisfy this are returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case BMP:
		err = bmp.Encode(w, img)
	case GIF:
		err = gif.Encode(w, img, &gif.Options{
			NumColors: 256,
			Quantizer: &quantize.MedianCutQuantizer{},
		})
	case PNG:
		err = png.Encode(w, img)
	default:
		return skinerr.Argument("unsupported image format %d", int(f))
	}
	if err != nil {
		return skinerr.Codec(err, "encoding %s", strings.TrimPrefix(f.Extension(), "."))
	}
	return nil
}
