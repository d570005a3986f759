package sprites

import "fmt"

const (
	digitWidth  = 9
	digitHeight = 13
)

func numbersRects() []Rect {
	rects := []Rect{
		{Name: "NO_MINUS_SIGN", Sheet: Numbers, X: 9, Y: 6, Width: 5, Height: 1},
		{Name: "MINUS_SIGN", Sheet: Numbers, X: 20, Y: 6, Width: 5, Height: 1},
	}
	for d := 0; d < 10; d++ {
		rects = append(rects, Rect{
			Name:   fmt.Sprintf("DIGIT_%d", d),
			Sheet:  Numbers,
			X:      d * digitWidth,
			Width:  digitWidth,
			Height: digitHeight,
		})
	}
	return rects
}

// NUMS_EX.BMP is the extended digit sheet with real minus signs. The
// catalog keeps both sheets; choosing between them is up to the renderer.
func numsExRects() []Rect {
	rects := []Rect{
		{Name: "NO_MINUS_SIGN_EX", Sheet: NumsEx, X: 90, Y: 0, Width: 9, Height: 13},
		{Name: "MINUS_SIGN_EX", Sheet: NumsEx, X: 99, Y: 0, Width: 9, Height: 13},
	}
	for d := 0; d < 10; d++ {
		rects = append(rects, Rect{
			Name:   fmt.Sprintf("DIGIT_%d_EX", d),
			Sheet:  NumsEx,
			X:      d * digitWidth,
			Width:  digitWidth,
			Height: digitHeight,
		})
	}
	return rects
}
