package sprites

import (
	"fmt"
	"path"
	"strings"

	"github.com/brian-armstrong/wsz/skinerr"
)

// Sheet identifies one of the bitmaps of a classic skin.
type Sheet int

const (
	Balance Sheet = iota
	CButtons
	Main
	MonoSter
	Numbers
	NumsEx
	PlayPaus
	Pledit
	EqEx
	EqMain
	PosBar
	ShufRep
	Text
	TitleBar
	Volume
	Gen

	sheetCount
)

var sheetNames = [sheetCount]string{
	Balance:  "BALANCE",
	CButtons: "CBUTTONS",
	Main:     "MAIN",
	MonoSter: "MONOSTER",
	Numbers:  "NUMBERS",
	NumsEx:   "NUMS_EX",
	PlayPaus: "PLAYPAUS",
	Pledit:   "PLEDIT",
	EqEx:     "EQ_EX",
	EqMain:   "EQMAIN",
	PosBar:   "POSBAR",
	ShufRep:  "SHUFREP",
	Text:     "TEXT",
	TitleBar: "TITLEBAR",
	Volume:   "VOLUME",
	Gen:      "GEN",
}

func (s Sheet) valid() bool {
	return s >= 0 && s < sheetCount
}

// String returns the upper case base name of the sheet, e.g. "NUMS_EX".
func (s Sheet) String() string {
	if !s.valid() {
		return fmt.Sprintf("Sheet(%d)", int(s))
	}
	return sheetNames[s]
}

// FileName returns the name the sheet has inside a skin archive.
func (s Sheet) FileName() string {
	if !s.valid() {
		return ""
	}
	return sheetNames[s] + ".BMP"
}

// AllSheets returns every known sheet in a stable order.
func AllSheets() []Sheet {
	sheets := make([]Sheet, 0, sheetCount)
	for s := Sheet(0); s < sheetCount; s++ {
		sheets = append(sheets, s)
	}
	return sheets
}

// ParseSheet accepts "MAIN", "main.bmp" or "Skins/Foo/MAIN.BMP".
func ParseSheet(name string) (Sheet, error) {
	base := strings.ToUpper(path.Base(strings.ReplaceAll(name, "\\", "/")))
	base = strings.TrimSuffix(base, ".BMP")
	for s, n := range sheetNames {
		if n == base {
			return Sheet(s), nil
		}
	}
	return 0, skinerr.Argument("%s not a known sprite sheet", name)
}
