// Package viscolor parses viscolor.txt, the visualizer color table.
//
// The file is a list of "r,g,b" lines. Their position gives them meaning:
//
//	0      analyzer background
//	1      analyzer background dots
//	2..17  spectrum bars, top to bottom
//	18..22 oscilloscope, lightest to darkest
//	23     analyzer peak dots
//
// Anything after "//" is a comment. Lines without a comma are ignored.
package viscolor

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/brian-armstrong/wsz/archive"
	"github.com/brian-armstrong/wsz/text"
)

// FileName is the name of the color table inside a skin archive.
const FileName = "viscolor.txt"

// Positions in the color table.
const (
	Background       = 0
	BackgroundDots   = 1
	SpectrumTop      = 2
	SpectrumBottom   = 17
	OscilloscopeBase = 18
	PeakDots         = 23

	// LegendSize is the number of entries a complete table has.
	LegendSize = 24

	spectrumLevels     = SpectrumBottom - SpectrumTop + 1
	oscilloscopeLevels = PeakDots - OscilloscopeBase
)

var dialect = text.Dialect{TrailingComment: "//"}

// VisColors is a parsed color table. The zero value is an empty table for
// which every getter reports no color.
type VisColors struct {
	colors []color.RGBA
}

// FromArchive finds and parses viscolor.txt. A skin without one yields a
// not found error.
func FromArchive(a archive.Archive) (*VisColors, error) {
	data, err := a.Lookup(FileName)
	if err != nil {
		return nil, err
	}
	return Parse(strings.ToValidUTF8(string(data), "\uFFFD"))
}

// Parse parses the contents of a viscolor.txt file.
func Parse(content string) (*VisColors, error) {
	v := &VisColors{}
	s := text.NewScanner(content, dialect)
	for s.Scan() {
		l := s.Line()
		if l.Kind == text.Blank || l.Kind == text.Comment {
			continue
		}
		if !strings.Contains(l.Text, ",") {
			continue
		}
		c, err := parseRGB(l)
		if err != nil {
			return nil, err
		}
		v.colors = append(v.colors, c)
	}
	return v, nil
}

func parseRGB(l text.Line) (color.RGBA, error) {
	parts := strings.Split(l.Text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	// "0,0,0, // black" leaves an empty trailing field.
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 3 {
		return color.RGBA{}, l.Errorf("expected three comma-separated RGB values, got '%s'", l.Text)
	}

	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return color.RGBA{}, l.Errorf("invalid color value: '%s'", p)
		}
		rgb[i] = uint8(n)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}, nil
}

// Len returns the number of colors in the table.
func (v *VisColors) Len() int {
	if v == nil {
		return 0
	}
	return len(v.colors)
}

// At returns the color at position i.
func (v *VisColors) At(i int) (color.RGBA, bool) {
	if v == nil || i < 0 || i >= len(v.colors) {
		return color.RGBA{}, false
	}
	return v.colors[i], true
}

// Colors returns a copy of the whole table.
func (v *VisColors) Colors() []color.RGBA {
	if v == nil {
		return nil
	}
	return append([]color.RGBA(nil), v.colors...)
}

func (v *VisColors) Background() (color.RGBA, bool) {
	return v.At(Background)
}

func (v *VisColors) BackgroundDots() (color.RGBA, bool) {
	return v.At(BackgroundDots)
}

func (v *VisColors) PeakDots() (color.RGBA, bool) {
	return v.At(PeakDots)
}

// Spectrum returns the color of a spectrum bar at the given level, where
// 0 is the bottom of the analyzer and 15 the top.
func (v *VisColors) Spectrum(level int) (color.RGBA, bool) {
	if level < 0 || level >= spectrumLevels {
		return color.RGBA{}, false
	}
	return v.At(SpectrumBottom - level)
}

// SpectrumColors returns the available spectrum colors from bottom to top.
func (v *VisColors) SpectrumColors() []color.RGBA {
	var cs []color.RGBA
	for level := 0; level < spectrumLevels; level++ {
		if c, ok := v.Spectrum(level); ok {
			cs = append(cs, c)
		}
	}
	return cs
}

// Oscilloscope returns oscilloscope color i, 0 through 4.
func (v *VisColors) Oscilloscope(i int) (color.RGBA, bool) {
	if i < 0 || i >= oscilloscopeLevels {
		return color.RGBA{}, false
	}
	return v.At(OscilloscopeBase + i)
}

// OscilloscopeColors returns the available oscilloscope colors in order.
func (v *VisColors) OscilloscopeColors() []color.RGBA {
	var cs []color.RGBA
	for i := 0; i < oscilloscopeLevels; i++ {
		if c, ok := v.Oscilloscope(i); ok {
			cs = append(cs, c)
		}
	}
	return cs
}
