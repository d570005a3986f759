package imageprint

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/brian-armstrong/wsz/ttesting"
)

func TestPrintNoColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{A: 0xFF})
	img.Set(1, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	img.Set(2, 0, color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xFF})

	var b bytes.Buffer
	if err := PrintNoColor(&b, img, false); err != nil {
		t.Fatalf("PrintNoColor: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	ttesting.AssertEqualInt(t, "rows", len(lines), 2)
	ttesting.AssertEqualString(t, "first row", lines[0], "..##==")
	// Fully transparent pixels reset attributes and print blank.
	ttesting.AssertEqualString(t, "second row", lines[1], strings.Repeat("\x1b[0m  ", 3))
}

func TestPrint24bit(t *testing.T) {
	img := ttesting.Solid(2, 1, color.RGBA{R: 1, G: 2, B: 3, A: 0xFF})
	var b bytes.Buffer
	if err := Print(&b, img, TrueColor, true); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got := strings.Count(b.String(), "\x1b[48;2;1;2;3m  "); got != 2 {
		t.Errorf("got %d true color cells in %q; want 2", got, b.String())
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{TrueColor, Color, NoColor, ITerm, RasTerm} {
		got, err := ParseMode(strings.ToUpper(m.String()))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseMode("sixel"); err == nil {
		t.Error("ParseMode(sixel) succeeded")
	}
}

func TestFit(t *testing.T) {
	img := ttesting.Pattern(100, 40)
	ttesting.AssertSize(t, "shrunk", Fit(img, 80, 25, TrueColor), 40, 16)
	ttesting.AssertSize(t, "fits already", Fit(img, 300, 50, TrueColor), 100, 40)
	ttesting.AssertSize(t, "unknown terminal", Fit(img, 0, 0, ITerm), 100, 40)
}
