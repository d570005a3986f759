package sprites

// GEN.BMP frames generic windows such as the media library.
func genRects() []Rect {
	return []Rect{
		{Name: "GEN_TOP_LEFT_SELECTED", Sheet: Gen, X: 0, Y: 0, Width: 25, Height: 20},
		{Name: "GEN_TOP_LEFT_END_SELECTED", Sheet: Gen, X: 26, Y: 0, Width: 25, Height: 20},
		{Name: "GEN_TOP_CENTER_FILL_SELECTED", Sheet: Gen, X: 52, Y: 0, Width: 25, Height: 20},
		{Name: "GEN_TOP_RIGHT_END_SELECTED", Sheet: Gen, X: 78, Y: 0, Width: 25, Height: 20},
		{Name: "GEN_TOP_LEFT_RIGHT_FILL_SELECTED", Sheet: Gen, X: 104, Y: 0, Width: 25, Height: 20},
		{Name: "GEN_TOP_RIGHT_SELECTED", Sheet: Gen, X: 130, Y: 0, Width: 25, Height: 20},
		{Name: "GEN_TOP_LEFT", Sheet: Gen, X: 0, Y: 21, Width: 25, Height: 20},
		{Name: "GEN_TOP_LEFT_END", Sheet: Gen, X: 26, Y: 21, Width: 25, Height: 20},
		{Name: "GEN_TOP_CENTER_FILL", Sheet: Gen, X: 52, Y: 21, Width: 25, Height: 20},
		{Name: "GEN_TOP_RIGHT_END", Sheet: Gen, X: 78, Y: 21, Width: 25, Height: 20},
		{Name: "GEN_TOP_LEFT_RIGHT_FILL", Sheet: Gen, X: 104, Y: 21, Width: 25, Height: 20},
		{Name: "GEN_TOP_RIGHT", Sheet: Gen, X: 130, Y: 21, Width: 25, Height: 20},
		{Name: "GEN_BOTTOM_LEFT", Sheet: Gen, X: 0, Y: 42, Width: 125, Height: 14},
		{Name: "GEN_BOTTOM_RIGHT", Sheet: Gen, X: 0, Y: 57, Width: 125, Height: 14},
		{Name: "GEN_BOTTOM_FILL", Sheet: Gen, X: 127, Y: 72, Width: 25, Height: 14},
		{Name: "GEN_MIDDLE_LEFT", Sheet: Gen, X: 127, Y: 42, Width: 11, Height: 29},
		{Name: "GEN_MIDDLE_LEFT_BOTTOM", Sheet: Gen, X: 158, Y: 42, Width: 11, Height: 24},
		{Name: "GEN_MIDDLE_RIGHT", Sheet: Gen, X: 139, Y: 42, Width: 8, Height: 29},
		{Name: "GEN_MIDDLE_RIGHT_BOTTOM", Sheet: Gen, X: 170, Y: 42, Width: 8, Height: 24},
		{Name: "GEN_CLOSE_SELECTED", Sheet: Gen, X: 148, Y: 42, Width: 9, Height: 9},
	}
}
