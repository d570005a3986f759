package wsz

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"go.uber.org/multierr"

	"github.com/brian-armstrong/wsz/archive"
	"github.com/brian-armstrong/wsz/skinerr"
	"github.com/brian-armstrong/wsz/sprites"
)

// ExtractToDir unpacks a skin into an editable directory tree: every
// non-empty sprite becomes <dir>/<SHEET>/<SPRITE>.png and every other file
// of the archive is copied to <dir> under its base name.
func ExtractToDir(a archive.Archive, dir string) error {
	s, err := FromArchive(a)
	if err != nil {
		return err
	}
	cat := sprites.Default()

	for _, sheet := range cat.Sheets() {
		sheetDir := filepath.Join(dir, sheet.String())
		made := false
		for _, r := range cat.Rects(sheet) {
			img, ok := s.Sprite(r.Name)
			if !ok || img.Bounds().Empty() {
				continue
			}
			if !made {
				if err := os.MkdirAll(sheetDir, 0755); err != nil {
					return skinerr.IO(err, "create %s", sheetDir)
				}
				made = true
			}
			if err := writeImage(filepath.Join(sheetDir, r.Name+".png"), img, sprites.PNG); err != nil {
				return err
			}
		}
	}

	for _, name := range a.Names() {
		base := archive.BaseName(name)
		if base == "" {
			continue
		}
		if _, err := sprites.ParseSheet(base); err == nil {
			continue
		}
		dst := filepath.Join(dir, base)
		if err := os.WriteFile(dst, a[name], 0644); err != nil {
			return skinerr.IO(err, "write %s", dst)
		}
		glog.V(1).Infof("copied %s to %s", name, dst)
	}
	return nil
}

func writeImage(path string, img image.Image, f sprites.Format) error {
	var buf bytes.Buffer
	if err := sprites.Encode(&buf, img, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return skinerr.IO(err, "write %s", path)
	}
	return nil
}

// PackDir is the inverse of ExtractToDir. Each sheet directory is composed
// back into a BMP and written to w as a skin archive together with the
// regular files found at the top of dir.
//
// A sheet whose sprites cannot be read is left out of the archive; the
// archive is still written and the collected failures are returned
// afterwards.
func PackDir(dir string, w io.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return skinerr.IO(err, "read %s", dir)
	}

	var errs error
	out := archive.Archive{}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if !e.IsDir() {
			data, err := os.ReadFile(path)
			if err != nil {
				return skinerr.IO(err, "read %s", path)
			}
			out[e.Name()] = data
			continue
		}

		sheet, err := sprites.ParseSheet(e.Name())
		if err != nil {
			glog.Warningf("skipping %s: %v", path, err)
			continue
		}
		data, err := packSheet(path, sheet)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if data != nil {
			out[sheet.FileName()] = data
		}
	}

	if err := archive.Write(w, out); err != nil {
		return multierr.Append(err, errs)
	}
	return errs
}

// packSheet composes the sprites in dir into a BMP. It returns nil data
// when the directory has no sprites of the sheet.
func packSheet(dir string, sheet sprites.Sheet) ([]byte, error) {
	cat := sprites.Default()
	imgs := map[string]*image.RGBA{}
	var errs error
	for _, r := range cat.Rects(sheet) {
		path := filepath.Join(dir, r.Name+".png")
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			errs = multierr.Append(errs, skinerr.IO(err, "read %s", path))
			continue
		}
		img, err := sprites.Decode(data)
		if err != nil {
			errs = multierr.Append(errs, skinerr.Codec(err, "%s", path))
			continue
		}
		imgs[r.Name] = img
	}
	if errs != nil {
		return nil, errs
	}
	warnUnknown(dir, sheet)

	composed, err := cat.ComposeSheet(sheet, imgs)
	if err != nil {
		return nil, err
	}
	if composed.Bounds().Empty() {
		glog.V(1).Infof("%s has no sprites of %s", dir, sheet)
		return nil, nil
	}
	var buf bytes.Buffer
	if err := sprites.Encode(&buf, composed, sprites.BMP); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func warnUnknown(dir string, sheet sprites.Sheet) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".png")
		if r, ok := sprites.Default().Lookup(name); !ok || r.Sheet != sheet {
			glog.Warningf("%s: %s is not a sprite of %s, ignoring", dir, e.Name(), sheet)
		}
	}
}
