// Package imageprint prints images on terminal. Debug package used by the
// wsz CLI to preview sprites and screenshots.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"strings"

	"github.com/gookit/color"
)

// Mode selects how pixels are put on the terminal.
type Mode int

const (
	// TrueColor uses 24bit background color escape sequences.
	TrueColor Mode = iota
	// Color uses the gookit/color renderer, which degrades on terminals
	// without true color support.
	Color
	// NoColor prints shading characters only.
	NoColor
	// ITerm uses iTerm2's inline image escape sequence.
	ITerm
	// RasTerm uses whatever image protocol rasterm detects (kitty, iTerm,
	// sixel).
	RasTerm
)

var modeNames = []string{"truecolor", "color", "nocolor", "iterm", "rasterm"}

func (m Mode) String() string {
	if int(m) >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, s) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown print mode %q (want one of %s)", s, strings.Join(modeNames, ", "))
}

// Print draws i on w with the given mode. blanks replaces the shading
// characters with spaces in the pixel modes.
func Print(w io.Writer, i image.Image, m Mode, blanks bool) error {
	switch m {
	case Color:
		return Print256Color(w, i, blanks)
	case NoColor:
		return PrintNoColor(w, i, blanks)
	case ITerm:
		return PrintITerm(w, i, "image.png")
	case RasTerm:
		return PrintRasTerm(w, i)
	}
	return Print24bit(w, i, blanks)
}

func glyph(col ic.Color, blanks bool) string {
	if blanks {
		return "  "
	}
	cR, cG, cB, _ := col.RGBA()
	a := ((cR + cG + cB) / 3) >> 8
	switch {
	case a < 32:
		return ".."
	case a < 64:
		return "--"
	case a < 128:
		return "=="
	}
	return "##"
}

func shade(b *strings.Builder, col ic.Color, escapesTrueColor, blanks, noColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		b.WriteString("\x1b[0m  ")
		return
	}
	r, g, bl := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	switch {
	case noColor:
		b.WriteString(glyph(col, blanks))
	case escapesTrueColor:
		fmt.Fprintf(b, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, bl, glyph(col, blanks))
	default:
		b.WriteString(color.RGB(r, g, bl, true).Sprint(glyph(col, blanks)))
	}
}

func printPixels(w io.Writer, i image.Image, escapesTrueColor, blanks, noColor bool) error {
	var b strings.Builder
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(&b, i.At(x, y), escapesTrueColor, blanks, noColor)
		}
		if !noColor {
			b.WriteString("\x1b[0m")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Print256Color draws an image using gookit/color backgrounds.
func Print256Color(w io.Writer, i image.Image, blanks bool) error {
	return printPixels(w, i, false, blanks, false)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) error {
	return printPixels(w, i, true, blanks, false)
}

// PrintNoColor draws an image without using color escape sequences.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) error {
	return printPixels(w, i, false, blanks, true)
}

// PrintITerm draws an image using iTerm2's escape sequences. Nothing is
// printed on other terminals.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	if !isTermItermWez() {
		return nil
	}
	return writeITerm(w, i, fn)
}

func writeITerm(w io.Writer, i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return err
	}
	if err := bEnc.Close(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
	return err
}
