// Package pledit parses pledit.txt, the playlist editor settings.
//
// Only the [Text] section has a defined meaning. Its color keys take
// 6-digit hex RGB values with an optional leading '#'. Everything else is
// kept as plain strings so that newer skins round-trip unchanged.
package pledit

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/brian-armstrong/wsz/archive"
	"github.com/brian-armstrong/wsz/text"
)

// FileName is the name of the settings file inside a skin archive.
const FileName = "pledit.txt"

const textSection = "Text"

var dialect = text.Dialect{CommentPrefixes: []string{";"}}

// Settings holds the playlist editor colors and font. Nil colors and an
// empty Font mean the skin does not set them.
type Settings struct {
	Normal     *color.RGBA
	Current    *color.RGBA
	NormalBG   *color.RGBA
	SelectedBG *color.RGBA
	// MbBG and MbFG color the minibrowser in later player versions.
	MbBG *color.RGBA
	MbFG *color.RGBA
	Font string

	// Custom holds every unrecognized key as "Section.Key" -> value.
	Custom map[string]string
}

// FromArchive finds and parses pledit.txt. A skin without one yields a not
// found error.
func FromArchive(a archive.Archive) (*Settings, error) {
	data, err := a.Lookup(FileName)
	if err != nil {
		return nil, err
	}
	return Parse(strings.ToValidUTF8(string(data), "\uFFFD"))
}

// Parse parses the contents of a pledit.txt file.
func Parse(content string) (*Settings, error) {
	s := &Settings{Custom: map[string]string{}}
	section := ""

	sc := text.NewScanner(content, dialect)
	for sc.Scan() {
		l := sc.Line()
		switch l.Kind {
		case text.Blank, text.Comment:
			continue
		case text.Section:
			section = l.Name
			continue
		case text.Other:
			return nil, l.InvalidLine()
		}

		if section == "" {
			return nil, l.Errorf("key-value pair outside of any section")
		}
		if !strings.EqualFold(section, textSection) {
			s.Custom[section+"."+l.Key] = l.Value
			continue
		}

		var dst **color.RGBA
		switch strings.ToLower(l.Key) {
		case "normal":
			dst = &s.Normal
		case "current":
			dst = &s.Current
		case "normalbg":
			dst = &s.NormalBG
		case "selectedbg":
			dst = &s.SelectedBG
		case "mbbg":
			dst = &s.MbBG
		case "mbfg":
			dst = &s.MbFG
		case "font":
			s.Font = l.Value
			continue
		default:
			s.Custom[section+"."+l.Key] = l.Value
			continue
		}
		c, err := parseHexColor(l)
		if err != nil {
			return nil, err
		}
		*dst = &c
	}
	return s, nil
}

func parseHexColor(l text.Line) (color.RGBA, error) {
	hex := strings.TrimPrefix(l.Value, "#")
	if len(hex) != 6 {
		return color.RGBA{}, l.Errorf("invalid hex color format: '%s'", l.Value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, l.Errorf("invalid hex color value: '%s'", l.Value)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xFF}, nil
}
