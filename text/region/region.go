// Package region parses region.txt, which gives the windows non
// rectangular shapes.
//
// Each section names a window and carries two keys: NumPoints lists how
// many vertices each polygon has, PointList lists the flattened x,y
// vertex coordinates of all the polygons. Values are separated by commas,
// whitespace, or both.
package region

import (
	"image"
	"strconv"
	"strings"
	"unicode"

	"github.com/brian-armstrong/wsz/archive"
	"github.com/brian-armstrong/wsz/text"
)

// FileName is the name of the region file inside a skin archive.
const FileName = "region.txt"

var dialect = text.Dialect{CommentPrefixes: []string{";"}}

// Polygon is an ordered list of vertices.
type Polygon []image.Point

// Regions holds the polygons for each window. A window without polygons
// keeps its rectangular shape.
type Regions struct {
	Main           []Polygon
	MainShade      []Polygon
	Equalizer      []Polygon
	EqualizerShade []Polygon
}

// Empty reports whether no window has a region.
func (r *Regions) Empty() bool {
	return r == nil || len(r.Main)+len(r.MainShade)+len(r.Equalizer)+len(r.EqualizerShade) == 0
}

func (r *Regions) section(name string) *[]Polygon {
	switch strings.ToLower(name) {
	case "normal":
		return &r.Main
	case "windowshade":
		return &r.MainShade
	case "equalizer":
		return &r.Equalizer
	case "equalizerws":
		return &r.EqualizerShade
	}
	return nil
}

// FromArchive finds and parses region.txt.
func FromArchive(a archive.Archive) (*Regions, error) {
	data, err := a.Lookup(FileName)
	if err != nil {
		return nil, err
	}
	return Parse(strings.ToValidUTF8(string(data), "\uFFFD"))
}

// Parse parses the contents of a region.txt file.
//
// A section is stored once both of its keys have been seen; keys that
// follow in the same section are errors.
func Parse(content string) (*Regions, error) {
	r := &Regions{}
	var (
		dst       *[]Polygon
		numPoints []int
		pointList []int
	)

	sc := text.NewScanner(content, dialect)
	for sc.Scan() {
		l := sc.Line()
		switch l.Kind {
		case text.Blank, text.Comment:
			continue
		case text.Other:
			return nil, l.InvalidLine()
		case text.Section:
			dst = r.section(l.Name)
			if dst == nil {
				return nil, l.Errorf("unknown section: '%s'", l.Name)
			}
			numPoints, pointList = nil, nil
			continue
		}

		if dst == nil {
			return nil, l.Errorf("key-value pair outside of any section")
		}
		key := strings.ToLower(l.Key)
		if key != "numpoints" && key != "pointlist" {
			return nil, l.Errorf("invalid key: '%s'", l.Key)
		}
		vals, err := parseInts(l)
		if err != nil {
			return nil, err
		}
		if key == "numpoints" {
			for _, n := range vals {
				if n < 0 {
					return nil, l.Errorf("negative point count: %d", n)
				}
			}
			numPoints = vals
		} else {
			pointList = vals
		}
		if numPoints == nil || pointList == nil {
			continue
		}

		polys, ok := build(numPoints, pointList)
		if !ok {
			return nil, l.Errorf("number of points does not match number of points in the region")
		}
		*dst = polys
		dst, numPoints, pointList = nil, nil, nil
	}
	return r, nil
}

// build splits pointList into polygons sized by numPoints. A trailing odd
// coordinate is ignored.
func build(numPoints, pointList []int) ([]Polygon, bool) {
	pairs := len(pointList) / 2
	total := 0
	for _, n := range numPoints {
		if n > pairs-total {
			return nil, false
		}
		total += n
	}
	if total != pairs {
		return nil, false
	}

	polys := make([]Polygon, 0, len(numPoints))
	i := 0
	for _, n := range numPoints {
		p := make(Polygon, n)
		for j := range p {
			p[j] = image.Pt(pointList[i], pointList[i+1])
			i += 2
		}
		polys = append(polys, p)
	}
	return polys, true
}

func parseInts(l text.Line) ([]int, error) {
	fields := strings.FieldsFunc(l.Value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, l.Errorf("invalid number '%s' in %s", f, l.Key)
		}
		vals = append(vals, n)
	}
	return vals, nil
}
