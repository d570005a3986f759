// Package compositor paints the three classic windows of a skin into one
// screenshot image.
//
// The canvas is a fixed 275x435 stack: the main window on top, the
// equalizer below it and the playlist editor at the bottom. Every element
// is a Placement, a rectangle relative to its window's origin that names
// the sprite drawn into it. Placements are drawn by ascending layer, so
// title bars on layer 1 cover the window backgrounds on layer 0 and the
// buttons and thumbs on layer 2 cover both.
//
// Several placements may share a sprite; the four time digits all draw
// DIGIT_0.
package compositor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"
	"golang.org/x/image/colornames"

	"github.com/brian-armstrong/wsz/skinerr"
)

const (
	// Width and Height are the dimensions of the composited canvas.
	Width  = 275
	Height = 435
)

// Window is one of the stacked windows on the canvas.
type Window int

const (
	Main Window = iota
	Equalizer
	Playlist
)

var windowNames = map[Window]string{
	Main:      "main",
	Equalizer: "equalizer",
	Playlist:  "playlist",
}

func (w Window) String() string {
	if n, ok := windowNames[w]; ok {
		return n
	}
	return fmt.Sprintf("Window(%d)", int(w))
}

// Origin returns the top left corner of the window on the canvas.
func (w Window) Origin() image.Point {
	switch w {
	case Equalizer:
		return image.Pt(0, 116)
	case Playlist:
		return image.Pt(0, 232)
	}
	return image.Pt(0, 0)
}

// Bounds returns the area the window occupies on the canvas.
func (w Window) Bounds() image.Rectangle {
	switch w {
	case Main, Equalizer:
		return image.Rectangle{Max: image.Pt(Width, 116)}.Add(w.Origin())
	case Playlist:
		return image.Rectangle{Max: image.Pt(Width, Height-232)}.Add(w.Origin())
	}
	return image.Rectangle{}
}

// ParseWindow accepts the names printed by String, case-insensitively.
func ParseWindow(name string) (Window, error) {
	for w, n := range windowNames {
		if strings.EqualFold(n, name) {
			return w, nil
		}
	}
	return 0, skinerr.Argument("unknown window %q", name)
}

// Placement is a named rectangle inside a window that Sprite is drawn
// into. Sprites larger than the rectangle are clipped to it.
type Placement struct {
	Name   string
	Sprite string
	Window Window
	Layer  int
	X, Y   int
	Width  int
	Height int
}

// Rect returns the placement rectangle in canvas coordinates.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height).Add(p.Window.Origin())
}

func (p Placement) check() error {
	r := p.Rect()
	if p.X < 0 || p.Y < 0 || p.Width < 0 || p.Height < 0 || !r.In(canvasBounds) {
		return skinerr.OutOfBounds("placement %s at %v does not fit the %dx%d canvas", p.Name, r, Width, Height)
	}
	return nil
}

var canvasBounds = image.Rect(0, 0, Width, Height)

// Compositor holds a window layout. It is not safe for concurrent use;
// callers that share one must serialize access.
type Compositor struct {
	placements map[string]Placement
	background color.Color
}

// New returns a compositor for the given placements. The slice is copied.
func New(placements []Placement) *Compositor {
	c := &Compositor{
		placements: make(map[string]Placement, len(placements)),
		background: colornames.Black,
	}
	for _, p := range placements {
		c.placements[p.Name] = p
	}
	return c
}

// Default returns a new compositor with the classic screenshot layout.
// Each call returns an independent copy.
func Default() *Compositor {
	return New(defaultLayout())
}

// SetBackground sets the color the canvas is filled with before drawing.
func (c *Compositor) SetBackground(bg color.Color) {
	c.background = bg
}

// Background returns the fill color.
func (c *Compositor) Background() color.Color {
	return c.background
}

// Composite draws every placement whose sprite is present in sprites onto
// a fresh canvas. Missing sprites are skipped. A placement that does not
// fit the canvas aborts compositing.
func (c *Compositor) Composite(sprites map[string]*image.RGBA) (*image.RGBA, error) {
	canvas := image.NewRGBA(canvasBounds)
	draw.Draw(canvas, canvasBounds, &image.Uniform{c.background}, image.Point{}, draw.Src)

	byLayer := c.layers()
	for layer := range iter.N(len(byLayer)) {
		for _, p := range byLayer[layer] {
			img, ok := sprites[p.Sprite]
			if !ok {
				glog.V(2).Infof("placement %s: sprite %s not present, skipping", p.Name, p.Sprite)
				continue
			}
			if err := drawPlacement(canvas, img, p); err != nil {
				return nil, err
			}
		}
	}
	return canvas, nil
}

// Draw draws sprite into the named placement on canvas.
func (c *Compositor) Draw(canvas *image.RGBA, sprite image.Image, name string) error {
	p, ok := c.placements[name]
	if !ok {
		return skinerr.Argument("unknown placement %q", name)
	}
	return drawPlacement(canvas, sprite, p)
}

func drawPlacement(canvas *image.RGBA, sprite image.Image, p Placement) error {
	if err := p.check(); err != nil {
		return err
	}
	r := p.Rect()
	draw.Draw(canvas, r, sprite, sprite.Bounds().Min, draw.Src)
	return nil
}

// layers groups placements by layer, each group sorted by name. Negative
// layers are never drawn.
func (c *Compositor) layers() [][]Placement {
	var byLayer [][]Placement
	for _, p := range c.placements {
		if p.Layer < 0 {
			glog.Warningf("placement %s has negative layer %d, not drawing", p.Name, p.Layer)
			continue
		}
		for len(byLayer) <= p.Layer {
			byLayer = append(byLayer, nil)
		}
		byLayer[p.Layer] = append(byLayer[p.Layer], p)
	}
	for _, ps := range byLayer {
		sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	}
	return byLayer
}
