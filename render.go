package wsz

import (
	"fmt"
	"image"

	"github.com/brian-armstrong/wsz/compositor"
)

// DigitSprite returns the sprite the clock uses for digit d: the NUMS_EX.BMP
// digit when the skin ships that sheet, the NUMBERS.BMP one otherwise.
func (s *Skin) DigitSprite(d int) string {
	ex := fmt.Sprintf("DIGIT_%d_EX", d)
	if img, ok := s.sprites[ex]; ok && !img.Bounds().Empty() {
		return ex
	}
	return fmt.Sprintf("DIGIT_%d", d)
}

// Layout returns a new compositor with the default three window layout
// adjusted to the skin: the playlist's normal background color fills the
// canvas when the skin sets one, and the clock uses the extended digits
// when present.
func (s *Skin) Layout() *compositor.Compositor {
	c := compositor.Default()
	if bg := s.pledit.NormalBG; bg != nil {
		c.SetBackground(*bg)
	}
	if digit := s.DigitSprite(0); digit != "DIGIT_0" {
		for _, p := range c.Placements() {
			if p.Sprite == "DIGIT_0" {
				c.SetSprite(p.Name, digit)
			}
		}
	}
	return c
}

// RenderScreenshot composites the skin into the layout returned by Layout.
// The canvas is black where no window covers it unless the skin sets a
// playlist background color.
func (s *Skin) RenderScreenshot() (*image.RGBA, error) {
	return s.RenderWith(s.Layout())
}

// RenderWith composites the skin with a caller-provided layout.
func (s *Skin) RenderWith(c *compositor.Compositor) (*image.RGBA, error) {
	return c.Composite(s.sprites)
}

// RenderShaped is RenderScreenshot with the main and equalizer windows cut
// to the skin's region.txt polygons.
func (s *Skin) RenderShaped() (*image.RGBA, error) {
	img, err := s.RenderScreenshot()
	if err != nil {
		return nil, err
	}
	return compositor.Shape(img, s.regions), nil
}
