// Command wsz extracts, repacks and renders classic Winamp skins.
//
//	wsz -extract base.wsz -out base/
//	wsz -pack base/ -out base.wsz
//	wsz -screenshot base.wsz -out shot.png -scale 2 -layout tweaks.yaml
//	wsz -screenshot base.wsz -sheet CBUTTONS -print
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"github.com/brian-armstrong/wsz"
	"github.com/brian-armstrong/wsz/archive"
	"github.com/brian-armstrong/wsz/compositor"
	"github.com/brian-armstrong/wsz/imageprint"
	"github.com/brian-armstrong/wsz/paths"
	"github.com/brian-armstrong/wsz/sprites"
)

var (
	extract    = flag.String("extract", "", "skin to unpack into a directory of sprite PNGs")
	pack       = flag.String("pack", "", "directory created by -extract to pack into a skin")
	screenshot = flag.String("screenshot", "", "skin to render")
	outPath    = flag.String("out", "", "output file or directory; defaults are derived from the input")
	format     = flag.String("format", "png", "image format for -screenshot: png, bmp or gif")
	scale      = flag.Float64("scale", 1, "scale factor for -screenshot output")
	layout     = flag.String("layout", "", "YAML file with layout overrides for -screenshot")
	shaped     = flag.Bool("shaped", false, "cut windows to the skin's region.txt")
	sheet      = flag.String("sheet", "", "with -screenshot, output this re-composed sheet instead")
	sprite     = flag.String("sprite", "", "with -screenshot, output this single sprite instead")

	printImg = flag.Bool("print", false, "print the image on the terminal instead of writing a file")
	mode     = flag.String("print_mode", "truecolor", "terminal output: truecolor, color, nocolor, iterm or rasterm")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to shrink printed images to the terminal size")
)

func main() {
	flag.Set("logtostderr", "true")
	flagutil.Parse()

	var err error
	switch {
	case *extract != "":
		err = runExtract(*extract)
	case *pack != "":
		err = runPack(*pack)
	case *screenshot != "":
		err = runScreenshot(*screenshot)
	default:
		fmt.Fprintln(os.Stderr, figure.NewFigure("wsz", "", true).String())
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		glog.Exit(err)
	}
}

// openSkin reads the skin archive at name, or, if there is no such file,
// the one of that name in the skin directories.
func openSkin(name string) (archive.Archive, error) {
	if _, err := os.Stat(name); err == nil {
		return archive.Open(name)
	}
	f, err := paths.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return archive.Read(data)
}

// outputName is the file -screenshot writes when -out is not given.
func outputName(skin, what string, f sprites.Format) string {
	return withoutExt(filepath.Base(skin)) + "-" + what + f.Extension()
}

func withoutExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func runExtract(path string) error {
	a, err := openSkin(path)
	if err != nil {
		return err
	}
	dir := *outPath
	if dir == "" {
		dir = withoutExt(filepath.Base(path))
	}
	if err := wsz.ExtractToDir(a, dir); err != nil {
		return err
	}
	glog.Infof("extracted %s to %s", path, dir)
	return nil
}

func runPack(dir string) error {
	dst := *outPath
	if dst == "" {
		dst = filepath.Clean(dir) + ".wsz"
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	packErr := wsz.PackDir(dir, f)
	if err := f.Close(); err != nil && packErr == nil {
		packErr = err
	}
	if packErr != nil {
		return packErr
	}
	glog.Infof("packed %s into %s", dir, dst)
	return nil
}

func runScreenshot(path string) error {
	a, err := openSkin(path)
	if err != nil {
		return err
	}
	s, err := wsz.FromArchive(a)
	if err != nil {
		return err
	}
	img, name, err := selectImage(s)
	if err != nil {
		return err
	}
	if *scale != 1 && *scale > 0 {
		w := uint(float64(img.Bounds().Dx()) * *scale)
		img = resize.Resize(w, 0, img, resize.NearestNeighbor)
	}

	if *printImg {
		m, err := imageprint.ParseMode(*mode)
		if err != nil {
			return err
		}
		return out(img, m)
	}

	f, err := sprites.ParseFormat(*format)
	if err != nil {
		return err
	}
	dst := *outPath
	if dst == "" {
		dst = outputName(path, name, f)
	}
	file, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := sprites.Encode(file, img, f); err != nil {
		file.Close()
		return err
	}
	glog.Infof("wrote %s", dst)
	return file.Close()
}

// selectImage renders what the flags ask for and names it for the default
// output file.
func selectImage(s *wsz.Skin) (image.Image, string, error) {
	switch {
	case *sprite != "":
		img, ok := s.Sprite(*sprite)
		if !ok || img.Bounds().Empty() {
			return nil, "", fmt.Errorf("skin has no sprite %s", *sprite)
		}
		return img, *sprite, nil
	case *sheet != "":
		sh, err := sprites.ParseSheet(*sheet)
		if err != nil {
			return nil, "", err
		}
		img, err := sprites.Default().ComposeSheet(sh, s.Sprites())
		if err != nil {
			return nil, "", err
		}
		if img.Bounds().Empty() {
			return nil, "", fmt.Errorf("skin has no %s", sh.FileName())
		}
		return img, sh.String(), nil
	}

	c := s.Layout()
	if *layout != "" {
		f, err := os.Open(*layout)
		if err != nil {
			return nil, "", err
		}
		err = c.LoadOverrides(f)
		f.Close()
		if err != nil {
			return nil, "", err
		}
	}
	img, err := s.RenderWith(c)
	if err != nil {
		return nil, "", err
	}
	if *shaped {
		img = compositor.Shape(img, s.Regions())
	}
	return img, "screenshot", nil
}
