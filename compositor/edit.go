package compositor

import (
	"sort"

	"github.com/brian-armstrong/wsz/skinerr"
)

// Placement returns the named placement.
func (c *Compositor) Placement(name string) (Placement, bool) {
	p, ok := c.placements[name]
	return p, ok
}

// Placements returns all placements sorted by window, layer and name.
func (c *Compositor) Placements() []Placement {
	ps := make([]Placement, 0, len(c.placements))
	for _, p := range c.placements {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a.Window != b.Window {
			return a.Window < b.Window
		}
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return a.Name < b.Name
	})
	return ps
}

// SetPosition moves a placement within its window. The placement is left
// untouched if it would no longer fit the canvas.
func (c *Compositor) SetPosition(name string, x, y int) error {
	p, ok := c.placements[name]
	if !ok {
		return skinerr.Argument("unknown placement %q", name)
	}
	p.X, p.Y = x, y
	if err := p.check(); err != nil {
		return err
	}
	c.placements[name] = p
	return nil
}

// SetSprite changes the sprite drawn by a placement.
func (c *Compositor) SetSprite(name, sprite string) error {
	p, ok := c.placements[name]
	if !ok {
		return skinerr.Argument("unknown placement %q", name)
	}
	p.Sprite = sprite
	c.placements[name] = p
	return nil
}

// Add adds a new placement.
func (c *Compositor) Add(p Placement) error {
	if p.Name == "" {
		return skinerr.Argument("placement without a name")
	}
	if _, dup := c.placements[p.Name]; dup {
		return skinerr.Argument("placement %q already exists", p.Name)
	}
	if p.Layer < 0 {
		return skinerr.Argument("placement %q has negative layer %d", p.Name, p.Layer)
	}
	if err := p.check(); err != nil {
		return err
	}
	c.placements[p.Name] = p
	return nil
}

// Remove deletes a placement, reporting whether it existed.
func (c *Compositor) Remove(name string) bool {
	_, ok := c.placements[name]
	delete(c.placements, name)
	return ok
}
