package compositor

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/brian-armstrong/wsz/skinerr"
	"github.com/brian-armstrong/wsz/sprites"
	"github.com/brian-armstrong/wsz/text/region"
	"github.com/brian-armstrong/wsz/ttesting"
)

var (
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	green = color.RGBA{G: 0xFF, A: 0xFF}
	blue  = color.RGBA{B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

// solidSprites returns a full-size solid sprite for every catalog entry.
func solidSprites(c color.Color) map[string]*image.RGBA {
	m := map[string]*image.RGBA{}
	cat := sprites.Default()
	for _, s := range cat.Sheets() {
		for _, r := range cat.Rects(s) {
			m[r.Name] = ttesting.Solid(r.Width, r.Height, c)
		}
	}
	return m
}

func TestDefaultLayoutFitsCanvas(t *testing.T) {
	c := Default()
	for _, p := range c.Placements() {
		if err := p.check(); err != nil {
			t.Errorf("%s: %v", p.Name, err)
		}
		if _, ok := sprites.Default().Lookup(p.Sprite); !ok {
			t.Errorf("%s draws unknown sprite %s", p.Name, p.Sprite)
		}
	}

	img, err := c.Composite(solidSprites(green))
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	ttesting.AssertSize(t, "canvas", img, Width, Height)
	ttesting.AssertColorAt(t, "main background", img, 100, 50, green)
	ttesting.AssertColorAt(t, "playlist middle is empty", img, 100, 300, black)
}

func TestCompositeEmpty(t *testing.T) {
	img, err := Default().Composite(nil)
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	ttesting.AssertColorAt(t, "top left", img, 0, 0, black)
	ttesting.AssertColorAt(t, "bottom right", img, Width-1, Height-1, black)
}

func TestCompositeLayers(t *testing.T) {
	c := New([]Placement{
		{Name: "top", Sprite: "B", Layer: 1, X: 0, Y: 0, Width: 10, Height: 10},
		{Name: "bottom", Sprite: "A", Layer: 0, X: 0, Y: 0, Width: 20, Height: 20},
		{Name: "eq", Sprite: "A", Window: Equalizer, Layer: 0, X: 5, Y: 5, Width: 2, Height: 2},
	})
	c.SetBackground(colornames.White)
	img, err := c.Composite(map[string]*image.RGBA{
		"A": ttesting.Solid(20, 20, red),
		"B": ttesting.Solid(10, 10, blue),
	})
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	ttesting.AssertColorAt(t, "higher layer wins", img, 5, 5, blue)
	ttesting.AssertColorAt(t, "lower layer shows around it", img, 15, 15, red)
	ttesting.AssertColorAt(t, "background", img, 25, 25, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	ttesting.AssertColorAt(t, "window origin applied", img, 5, 116+5, red)
}

func TestCompositeClipsToPlacement(t *testing.T) {
	c := Default()
	img, err := c.Composite(map[string]*image.RGBA{
		"MAIN_VOLUME_BACKGROUND": ttesting.Solid(68, 420, red),
	})
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	ttesting.AssertColorAt(t, "inside", img, 107, 57+12, red)
	ttesting.AssertColorAt(t, "below placement", img, 107, 57+13, black)
}

func TestCompositeOutOfBounds(t *testing.T) {
	c := New([]Placement{{Name: "wide", Sprite: "A", X: 270, Y: 0, Width: 10, Height: 10}})
	_, err := c.Composite(map[string]*image.RGBA{"A": ttesting.Solid(10, 10, red)})
	if !errors.Is(err, skinerr.ErrOutOfBounds) {
		t.Fatalf("got %v; want out of bounds", err)
	}
	if !errors.Is(err, skinerr.ErrArgument) {
		t.Errorf("out of bounds should also be an argument error: %v", err)
	}

	// Placements of missing sprites are skipped before the bounds check.
	if _, err := c.Composite(nil); err != nil {
		t.Errorf("Composite without sprites: %v", err)
	}
}

func TestAliasedDigits(t *testing.T) {
	img, err := Default().Composite(map[string]*image.RGBA{"DIGIT_0": ttesting.Solid(9, 13, green)})
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	for _, x := range []int{48, 60, 78, 90} {
		ttesting.AssertColorAt(t, "digit", img, x, 26, green)
		ttesting.AssertColorAt(t, "digit corner", img, x+8, 26+12, green)
	}
}

func TestPositionSlider(t *testing.T) {
	c := Default()
	for _, name := range []string{"MAIN_POSITION_SLIDER_BACKGROUND", "MAIN_POSITION_SLIDER_THUMB"} {
		p, ok := c.Placement(name)
		if !ok {
			t.Fatalf("no placement %s", name)
		}
		ttesting.AssertEqualInt(t, name+" x", p.X, 17)
		ttesting.AssertEqualInt(t, name+" y", p.Y, 72)
	}

	img, err := c.Composite(map[string]*image.RGBA{"MAIN_POSITION_SLIDER_BACKGROUND": ttesting.Solid(248, 10, green)})
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	ttesting.AssertColorAt(t, "left of slider", img, 16, 72, color.RGBA{A: 0xFF})
	ttesting.AssertColorAt(t, "slider start", img, 17, 72, green)
	ttesting.AssertColorAt(t, "slider end", img, 264, 81, green)
}

func TestDraw(t *testing.T) {
	c := Default()
	canvas := image.NewRGBA(image.Rect(0, 0, Width, Height))
	if err := c.Draw(canvas, ttesting.Solid(23, 18, red), "MAIN_PLAY_BUTTON"); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	ttesting.AssertColorAt(t, "play button", canvas, 39, 88, red)

	if err := c.Draw(canvas, ttesting.Solid(1, 1, red), "NOPE"); !errors.Is(err, skinerr.ErrArgument) {
		t.Errorf("Draw(NOPE): got %v; want argument error", err)
	}
}

func TestEditing(t *testing.T) {
	c := Default()
	d := Default()

	if err := c.SetPosition("MAIN_PLAY_BUTTON", 0, 0); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	p, _ := c.Placement("MAIN_PLAY_BUTTON")
	if p.X != 0 || p.Y != 0 {
		t.Errorf("moved placement at %d,%d", p.X, p.Y)
	}
	if q, _ := d.Placement("MAIN_PLAY_BUTTON"); q.X != 39 {
		t.Errorf("Default() copies share state: x=%d", q.X)
	}

	if err := c.SetPosition("MAIN_PLAY_BUTTON", 270, 0); !errors.Is(err, skinerr.ErrOutOfBounds) {
		t.Errorf("SetPosition out of canvas: got %v", err)
	}
	if p, _ := c.Placement("MAIN_PLAY_BUTTON"); p.X != 0 {
		t.Errorf("failed SetPosition changed placement: %+v", p)
	}
	if err := c.SetPosition("NOPE", 0, 0); !errors.Is(err, skinerr.ErrArgument) {
		t.Errorf("SetPosition(NOPE): got %v", err)
	}

	if err := c.SetSprite("MAIN_TIME_DIGIT_4", "DIGIT_7"); err != nil {
		t.Fatalf("SetSprite: %v", err)
	}
	img, err := c.Composite(map[string]*image.RGBA{
		"DIGIT_0": ttesting.Solid(9, 13, green),
		"DIGIT_7": ttesting.Solid(9, 13, blue),
	})
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	ttesting.AssertColorAt(t, "unchanged digit", img, 78, 26, green)
	ttesting.AssertColorAt(t, "re-aliased digit", img, 90, 26, blue)

	n := len(c.Placements())
	if err := c.Add(Placement{Name: "X", Sprite: "DIGIT_0", Window: Playlist, X: 1, Y: 1, Width: 9, Height: 13}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add(Placement{Name: "X", Sprite: "DIGIT_0"}); !errors.Is(err, skinerr.ErrArgument) {
		t.Errorf("duplicate Add: got %v", err)
	}
	if err := c.Add(Placement{Name: "Y", Window: Playlist, Y: 200, Width: 1, Height: 10}); !errors.Is(err, skinerr.ErrOutOfBounds) {
		t.Errorf("out of canvas Add: got %v", err)
	}
	ttesting.AssertEqualInt(t, "after add", len(c.Placements()), n+1)
	if !c.Remove("X") || c.Remove("X") {
		t.Error("Remove should report existence")
	}
	ttesting.AssertEqualInt(t, "after remove", len(c.Placements()), n)
}

func TestPlacementsOrder(t *testing.T) {
	ps := Default().Placements()
	for i := 1; i < len(ps); i++ {
		a, b := ps[i-1], ps[i]
		if a.Window > b.Window || (a.Window == b.Window && a.Layer > b.Layer) {
			t.Fatalf("%s before %s", a.Name, b.Name)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	c := Default()
	err := c.LoadOverrides(strings.NewReader(`
background: navy
remove: [MAIN_CLUTTER_BAR_BACKGROUND, NOT_THERE]
placements:
  - name: MAIN_TIME_DIGIT_4
    sprite: DIGIT_7
  - name: MAIN_PLAY_BUTTON
    x: 40
  - name: BADGE
    sprite: MAIN_STEREO_ACTIVE
    window: Playlist
    layer: 2
    x: 120
    y: 100
`))
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if c.Background() != colornames.Navy {
		t.Errorf("background: got %v", c.Background())
	}
	if _, ok := c.Placement("MAIN_CLUTTER_BAR_BACKGROUND"); ok {
		t.Error("placement not removed")
	}
	p, _ := c.Placement("MAIN_TIME_DIGIT_4")
	ttesting.AssertEqualString(t, "aliased", p.Sprite, "DIGIT_7")
	p, _ = c.Placement("MAIN_PLAY_BUTTON")
	ttesting.AssertEqualInt(t, "moved x", p.X, 40)
	ttesting.AssertEqualInt(t, "kept y", p.Y, 88)

	b, ok := c.Placement("BADGE")
	if !ok {
		t.Fatal("BADGE not added")
	}
	if b.Window != Playlist || b.Layer != 2 || b.Width != 29 || b.Height != 12 {
		t.Errorf("BADGE: got %+v", b)
	}
}

func TestLoadOverridesErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
		want error
	}{
		{"bad yaml", "placements: {", skinerr.ErrArgument},
		{"bad color", "background: '#12'", skinerr.ErrArgument},
		{"new without sprite", "placements: [{name: NEW, x: 1}]", skinerr.ErrArgument},
		{"bad window", "placements: [{name: MAIN_PLAY_BUTTON, window: desktop}]", skinerr.ErrArgument},
		{"off canvas", "placements: [{name: MAIN_PLAY_BUTTON, y: 500}]", skinerr.ErrOutOfBounds},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := Default().LoadOverrides(strings.NewReader(tc.doc)); !errors.Is(err, tc.want) {
				t.Errorf("got %v; want %v", err, tc.want)
			}
		})
	}
}

func TestYAMLColorHex(t *testing.T) {
	c := Default()
	if err := c.LoadOverrides(strings.NewReader("background: '#10203080'\n")); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if got, want := c.Background(), (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}); got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestShape(t *testing.T) {
	canvas := ttesting.Solid(Width, Height, red)
	r := &region.Regions{
		Main: []region.Polygon{{image.Pt(0, 0), image.Pt(10, 0), image.Pt(10, 10), image.Pt(0, 10)}},
	}
	out := Shape(canvas, r)
	ttesting.AssertColorAt(t, "inside polygon", out, 5, 5, red)
	ttesting.AssertColorAt(t, "outside polygon", out, 20, 20, color.RGBA{})
	ttesting.AssertColorAt(t, "equalizer unshaped", out, 20, 120, red)
	ttesting.AssertColorAt(t, "playlist unshaped", out, 20, 300, red)

	same := Shape(canvas, nil)
	ttesting.AssertSameImage(t, "no regions", same, canvas)
}
