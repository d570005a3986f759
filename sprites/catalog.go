package sprites

import (
	"fmt"
	"image"
	"sort"

	"github.com/brian-armstrong/wsz/skinerr"
)

// Rect is the location of a named sprite on its sheet. A zero-size Rect is
// valid and marks a sprite some skins simply do not have.
type Rect struct {
	Name          string
	Sheet         Sheet
	X, Y          int
	Width, Height int
}

// Bounds returns the rectangle in sheet coordinates.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Catalog is an immutable set of sprite rectangles with globally unique
// names. It is safe for concurrent use.
type Catalog struct {
	byName  map[string]Rect
	bySheet map[Sheet][]Rect
}

// NewCatalog builds a catalog. It panics if two rectangles share a name,
// since catalogs are built from static tables.
func NewCatalog(rects ...Rect) *Catalog {
	c := &Catalog{
		byName:  make(map[string]Rect, len(rects)),
		bySheet: make(map[Sheet][]Rect),
	}
	for _, r := range rects {
		if _, dup := c.byName[r.Name]; dup {
			panic(fmt.Sprintf("sprites: duplicate sprite name %q", r.Name))
		}
		c.byName[r.Name] = r
		c.bySheet[r.Sheet] = append(c.bySheet[r.Sheet], r)
	}
	for _, rs := range c.bySheet {
		sort.Slice(rs, func(i, j int) bool { return rs[i].Name < rs[j].Name })
	}
	return c
}

var defaultCatalog = NewCatalog(builtinRects()...)

// Default returns the catalog of the classic skin format.
func Default() *Catalog {
	return defaultCatalog
}

func builtinRects() []Rect {
	var all []Rect
	for _, table := range [][]Rect{
		balanceRects(),
		cbuttonsRects(),
		mainRects(),
		monosterRects(),
		numbersRects(),
		numsExRects(),
		playpausRects(),
		pleditRects(),
		eqExRects(),
		eqmainRects(),
		posbarRects(),
		shufrepRects(),
		textRects(),
		titlebarRects(),
		volumeRects(),
		genRects(),
	} {
		all = append(all, table...)
	}
	return all
}

// Len returns the number of sprites in the catalog.
func (c *Catalog) Len() int {
	return len(c.byName)
}

// Lookup returns the rectangle of the named sprite.
func (c *Catalog) Lookup(name string) (Rect, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Rects returns the sprites of one sheet sorted by name. The returned slice
// is a copy.
func (c *Catalog) Rects(s Sheet) []Rect {
	return append([]Rect(nil), c.bySheet[s]...)
}

// Sheets returns the sheets that have at least one sprite.
func (c *Catalog) Sheets() []Sheet {
	var sheets []Sheet
	for _, s := range AllSheets() {
		if len(c.bySheet[s]) > 0 {
			sheets = append(sheets, s)
		}
	}
	return sheets
}

func (c *Catalog) sheetRects(s Sheet) ([]Rect, error) {
	rs, ok := c.bySheet[s]
	if !ok {
		return nil, skinerr.Argument("%v not a known sprite sheet", s)
	}
	return rs, nil
}

// ExtractSprite cuts the named sprite out of an already decoded sheet.
func (c *Catalog) ExtractSprite(name string, sheet image.Image) (*image.RGBA, error) {
	r, ok := c.byName[name]
	if !ok {
		return nil, skinerr.Argument("sprite %s not found", name)
	}
	return extract(sheet, r), nil
}

// ExtractSheet cuts all sprites of sheet s out of img.
func (c *Catalog) ExtractSheet(s Sheet, img image.Image) (map[string]*image.RGBA, error) {
	rs, err := c.sheetRects(s)
	if err != nil {
		return nil, err
	}
	return ExtractSheet(img, rs), nil
}

// ComposeSheet rebuilds sheet s from sprites. Sprites not belonging to s
// are ignored.
func (c *Catalog) ComposeSheet(s Sheet, sprites map[string]*image.RGBA) (*image.RGBA, error) {
	rs, err := c.sheetRects(s)
	if err != nil {
		return nil, err
	}
	return ComposeSheet(rs, sprites), nil
}
