// Package wsz reads classic Winamp skins (.wsz files).
//
// A skin is a zip archive of bitmap sprite sheets plus a few text files.
// Opening one cuts every known sheet into its named sprites and parses
// viscolor.txt, pledit.txt and region.txt:
//
//	s, err := wsz.Open("base-2.91.wsz")
//	if err != nil {
//		return err
//	}
//	play, ok := s.Sprite("MAIN_PLAY_BUTTON")
//	shot, err := s.RenderScreenshot()
//
// A Skin is immutable once built and safe for concurrent use.
package wsz

import (
	"image"
	"sort"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/brian-armstrong/wsz/archive"
	"github.com/brian-armstrong/wsz/skinerr"
	"github.com/brian-armstrong/wsz/sprites"
	"github.com/brian-armstrong/wsz/text/pledit"
	"github.com/brian-armstrong/wsz/text/region"
	"github.com/brian-armstrong/wsz/text/viscolor"
)

// Skin is a loaded skin.
type Skin struct {
	archive archive.Archive
	sprites map[string]*image.RGBA

	visColors *viscolor.VisColors
	pledit    *pledit.Settings
	regions   *region.Regions
}

// Open reads and loads the skin archive at path.
func Open(path string) (*Skin, error) {
	a, err := archive.Open(path)
	if err != nil {
		return nil, err
	}
	return FromArchive(a)
}

// FromBytes loads a skin from the bytes of a zip archive.
func FromBytes(data []byte) (*Skin, error) {
	a, err := archive.Read(data)
	if err != nil {
		return nil, err
	}
	return FromArchive(a)
}

// FromArchive loads a skin from an already unpacked archive.
//
// Sheets missing from the archive contribute no sprites. A sheet that is
// present but cannot be decoded fails the load. Missing viscolor.txt and
// pledit.txt yield empty settings; region.txt is optional decoration, so
// it yields empty regions when missing or malformed.
func FromArchive(a archive.Archive) (*Skin, error) {
	spr, err := extractSprites(a, sprites.Default())
	if err != nil {
		return nil, err
	}
	s := &Skin{archive: a, sprites: spr}

	s.visColors, err = viscolor.FromArchive(a)
	if skinerr.IsNotFound(err) {
		s.visColors, err = &viscolor.VisColors{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, viscolor.FileName)
	}

	s.pledit, err = pledit.FromArchive(a)
	if skinerr.IsNotFound(err) {
		s.pledit, err = &pledit.Settings{Custom: map[string]string{}}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, pledit.FileName)
	}

	s.regions, err = region.FromArchive(a)
	if err != nil {
		if !skinerr.IsNotFound(err) {
			glog.Warningf("ignoring %s: %v", region.FileName, err)
		}
		s.regions = &region.Regions{}
	}

	glog.V(1).Infof("loaded skin: %d sprites, %d vis colors", len(s.sprites), s.visColors.Len())
	return s, nil
}

// extractSprites decodes and cuts every sheet of cat found in a, one
// goroutine per sheet.
func extractSprites(a archive.Archive, cat *sprites.Catalog) (map[string]*image.RGBA, error) {
	sheets := cat.Sheets()
	results := make([]map[string]*image.RGBA, len(sheets))

	var g errgroup.Group
	for i, sheet := range sheets {
		key, data, ok := a.Find(sheet.FileName())
		if !ok {
			glog.V(1).Infof("skin has no %s", sheet.FileName())
			continue
		}
		i, sheet := i, sheet
		g.Go(func() error {
			img, err := sprites.Decode(data)
			if err != nil {
				return errors.Wrapf(err, "sheet %s", key)
			}
			m, err := cat.ExtractSheet(sheet, img)
			if err != nil {
				return err
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make(map[string]*image.RGBA)
	for _, m := range results {
		for name, img := range m {
			all[name] = img
		}
	}
	return all, nil
}

// Archive returns the archive the skin was loaded from. It must not be
// modified.
func (s *Skin) Archive() archive.Archive {
	return s.archive
}

// Sprite returns the named sprite, which is 0x0 when its rectangle lies
// outside the skin's sheet. ok is false if the sheet was missing or the
// name is unknown. The image must not be modified.
func (s *Skin) Sprite(name string) (img *image.RGBA, ok bool) {
	img, ok = s.sprites[name]
	return img, ok
}

// Sprites returns a copy of the sprite map. The images themselves are
// shared and must not be modified.
func (s *Skin) Sprites() map[string]*image.RGBA {
	m := make(map[string]*image.RGBA, len(s.sprites))
	for k, v := range s.sprites {
		m[k] = v
	}
	return m
}

// SpriteNames returns the names of all extracted sprites, sorted.
func (s *Skin) SpriteNames() []string {
	names := make([]string, 0, len(s.sprites))
	for n := range s.sprites {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// VisColors returns the visualizer colors; never nil.
func (s *Skin) VisColors() *viscolor.VisColors {
	return s.visColors
}

// Pledit returns the playlist editor settings; never nil.
func (s *Skin) Pledit() *pledit.Settings {
	return s.pledit
}

// Regions returns the window shapes; never nil.
func (s *Skin) Regions() *region.Regions {
	return s.regions
}
