package compositor

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/brian-armstrong/wsz/skinerr"
	"github.com/brian-armstrong/wsz/sprites"
)

// Overrides is a layout tweak loaded from YAML:
//
//	background: navy
//	remove: [MAIN_CLUTTER_BAR_BACKGROUND]
//	placements:
//	  - name: MAIN_TIME_DIGIT_4
//	    sprite: DIGIT_7
//	  - name: MAIN_PLAY_BUTTON
//	    sprite: MAIN_PLAY_BUTTON_ACTIVE
//	    x: 40
//	  - name: BADGE
//	    sprite: MAIN_STEREO_ACTIVE
//	    window: playlist
//	    layer: 2
//	    x: 120
//	    y: 100
//
// Placements that already exist are changed field by field; new ones
// need a sprite and take their size from the sprite catalog unless given.
type Overrides struct {
	Background *YAMLColor        `yaml:"background"`
	Remove     []string          `yaml:"remove"`
	Placements []PlacementChange `yaml:"placements"`
}

// PlacementChange is one entry of Overrides.Placements. Nil fields are
// left alone.
type PlacementChange struct {
	Name   string  `yaml:"name"`
	Sprite *string `yaml:"sprite"`
	Window *string `yaml:"window"`
	Layer  *int    `yaml:"layer"`
	X      *int    `yaml:"x"`
	Y      *int    `yaml:"y"`
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	if len(s) == 6 {
		n = n<<8 | 0xFF
	}
	c.Color = color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}
	return nil
}

// LoadOverrides reads a YAML override document from r and applies it. On
// error the compositor may be partially modified.
func (c *Compositor) LoadOverrides(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return skinerr.IO(err, "read layout overrides")
	}
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return skinerr.Argument("layout overrides: %v", err)
	}
	return c.Apply(o)
}

// Apply applies o in order: background, removals, then placement changes.
func (c *Compositor) Apply(o Overrides) error {
	if o.Background != nil {
		c.SetBackground(o.Background.Color)
	}
	for _, name := range o.Remove {
		if !c.Remove(name) {
			glog.Warningf("layout overrides: no placement %s to remove", name)
		}
	}
	for _, ch := range o.Placements {
		if err := c.applyChange(ch); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compositor) applyChange(ch PlacementChange) error {
	if ch.Name == "" {
		return skinerr.Argument("layout overrides: placement without a name")
	}
	p, exists := c.placements[ch.Name]
	if !exists {
		if ch.Sprite == nil {
			return skinerr.Argument("layout overrides: new placement %s needs a sprite", ch.Name)
		}
		p = Placement{Name: ch.Name, Sprite: *ch.Sprite}
		if r, ok := sprites.Default().Lookup(*ch.Sprite); ok {
			p.Width, p.Height = r.Width, r.Height
		}
	}

	if ch.Sprite != nil {
		p.Sprite = *ch.Sprite
	}
	if ch.Window != nil {
		w, err := ParseWindow(*ch.Window)
		if err != nil {
			return err
		}
		p.Window = w
	}
	for _, f := range []struct {
		dst *int
		src *int
	}{
		{&p.Layer, ch.Layer},
		{&p.X, ch.X},
		{&p.Y, ch.Y},
		{&p.Width, ch.Width},
		{&p.Height, ch.Height},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	if p.Layer < 0 {
		return skinerr.Argument("layout overrides: placement %s has negative layer %d", p.Name, p.Layer)
	}
	if err := p.check(); err != nil {
		return err
	}
	glog.V(1).Infof("layout overrides: %s -> %+v", p.Name, p)
	c.placements[p.Name] = p
	return nil
}
