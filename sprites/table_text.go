package sprites

import "fmt"

const (
	charWidth  = 5
	charHeight = 6
)

// textGlyphs maps a character to its (row, column) cell on TEXT.BMP.
// Several brackets share the square bracket glyphs.
var textGlyphs = map[rune][2]int{
	'a': {0, 0}, 'b': {0, 1}, 'c': {0, 2}, 'd': {0, 3}, 'e': {0, 4},
	'f': {0, 5}, 'g': {0, 6}, 'h': {0, 7}, 'i': {0, 8}, 'j': {0, 9},
	'k': {0, 10}, 'l': {0, 11}, 'm': {0, 12}, 'n': {0, 13}, 'o': {0, 14},
	'p': {0, 15}, 'q': {0, 16}, 'r': {0, 17}, 's': {0, 18}, 't': {0, 19},
	'u': {0, 20}, 'v': {0, 21}, 'w': {0, 22}, 'x': {0, 23}, 'y': {0, 24},
	'z': {0, 25}, '"': {0, 26}, '@': {0, 27}, ' ': {0, 30},

	'0': {1, 0}, '1': {1, 1}, '2': {1, 2}, '3': {1, 3}, '4': {1, 4},
	'5': {1, 5}, '6': {1, 6}, '7': {1, 7}, '8': {1, 8}, '9': {1, 9},
	'…': {1, 10}, '.': {1, 11}, ':': {1, 12}, '(': {1, 13}, ')': {1, 14},
	'-': {1, 15}, '\'': {1, 16}, '!': {1, 17}, '_': {1, 18}, '+': {1, 19},
	'\\': {1, 20}, '/': {1, 21}, '[': {1, 22}, ']': {1, 23}, '^': {1, 24},
	'&': {1, 25}, '%': {1, 26}, ',': {1, 27}, '=': {1, 28}, '$': {1, 29},
	'#': {1, 30},

	'Å': {2, 0}, 'Ö': {2, 1}, 'Ä': {2, 2}, '?': {2, 3}, '*': {2, 4},

	'<': {1, 22}, '>': {1, 23}, '{': {1, 22}, '}': {1, 23},
}

// CharacterSprite returns the name of the TEXT.BMP sprite for r. Upper case
// ASCII letters use the lower case glyphs.
func CharacterSprite(r rune) (string, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if _, ok := textGlyphs[r]; !ok {
		return "", false
	}
	return fmt.Sprintf("CHARACTER_%d", r), true
}

func textRects() []Rect {
	rects := make([]Rect, 0, len(textGlyphs))
	for ch, cell := range textGlyphs {
		rects = append(rects, Rect{
			Name:   fmt.Sprintf("CHARACTER_%d", ch),
			Sheet:  Text,
			X:      cell[1] * charWidth,
			Y:      cell[0] * charHeight,
			Width:  charWidth,
			Height: charHeight,
		})
	}
	return rects
}
