package sprites

func eqmainRects() []Rect {
	return []Rect{
		{Name: "EQ_WINDOW_BACKGROUND", Sheet: EqMain, X: 0, Y: 0, Width: 275, Height: 116},
		{Name: "EQ_TITLE_BAR", Sheet: EqMain, X: 0, Y: 149, Width: 275, Height: 14},
		{Name: "EQ_TITLE_BAR_SELECTED", Sheet: EqMain, X: 0, Y: 134, Width: 275, Height: 14},
		{Name: "EQ_SLIDER_BACKGROUND", Sheet: EqMain, X: 13, Y: 164, Width: 209, Height: 129},
		{Name: "EQ_SLIDER_THUMB", Sheet: EqMain, X: 0, Y: 164, Width: 11, Height: 11},
		{Name: "EQ_SLIDER_THUMB_SELECTED", Sheet: EqMain, X: 0, Y: 176, Width: 11, Height: 11},
		{Name: "EQ_ON_BUTTON", Sheet: EqMain, X: 10, Y: 119, Width: 26, Height: 12},
		{Name: "EQ_ON_BUTTON_DEPRESSED", Sheet: EqMain, X: 128, Y: 119, Width: 26, Height: 12},
		{Name: "EQ_ON_BUTTON_SELECTED", Sheet: EqMain, X: 69, Y: 119, Width: 26, Height: 12},
		{Name: "EQ_ON_BUTTON_SELECTED_DEPRESSED", Sheet: EqMain, X: 187, Y: 119, Width: 26, Height: 12},
		{Name: "EQ_AUTO_BUTTON", Sheet: EqMain, X: 36, Y: 119, Width: 32, Height: 12},
		{Name: "EQ_AUTO_BUTTON_DEPRESSED", Sheet: EqMain, X: 154, Y: 119, Width: 32, Height: 12},
		{Name: "EQ_AUTO_BUTTON_SELECTED", Sheet: EqMain, X: 95, Y: 119, Width: 32, Height: 12},
		{Name: "EQ_AUTO_BUTTON_SELECTED_DEPRESSED", Sheet: EqMain, X: 213, Y: 119, Width: 32, Height: 12},
		{Name: "EQ_GRAPH_BACKGROUND", Sheet: EqMain, X: 0, Y: 294, Width: 113, Height: 19},
		{Name: "EQ_GRAPH_LINE_COLORS", Sheet: EqMain, X: 115, Y: 294, Width: 1, Height: 19},
		{Name: "EQ_PRESETS_BUTTON", Sheet: EqMain, X: 224, Y: 164, Width: 44, Height: 12},
		{Name: "EQ_PRESETS_BUTTON_SELECTED", Sheet: EqMain, X: 224, Y: 176, Width: 44, Height: 12},
		{Name: "EQ_PREAMP_LINE", Sheet: EqMain, X: 0, Y: 314, Width: 113, Height: 1},
	}
}

// EQ_EX.BMP carries the shaded (collapsed) equalizer.
func eqExRects() []Rect {
	return []Rect{
		{Name: "EQ_SHADE_BACKGROUND_SELECTED", Sheet: EqEx, X: 0, Y: 0, Width: 275, Height: 14},
		{Name: "EQ_SHADE_BACKGROUND", Sheet: EqEx, X: 0, Y: 15, Width: 275, Height: 14},
		{Name: "EQ_SHADE_VOLUME_SLIDER_LEFT", Sheet: EqEx, X: 1, Y: 30, Width: 3, Height: 7},
		{Name: "EQ_SHADE_VOLUME_SLIDER_CENTER", Sheet: EqEx, X: 4, Y: 30, Width: 3, Height: 7},
		{Name: "EQ_SHADE_VOLUME_SLIDER_RIGHT", Sheet: EqEx, X: 7, Y: 30, Width: 3, Height: 7},
		{Name: "EQ_SHADE_CLOSE_BUTTON", Sheet: EqEx, X: 11, Y: 38, Width: 9, Height: 9},
		{Name: "EQ_SHADE_CLOSE_BUTTON_ACTIVE", Sheet: EqEx, X: 11, Y: 47, Width: 9, Height: 9},
		{Name: "EQ_MAXIMIZE_BUTTON_ACTIVE", Sheet: EqEx, X: 1, Y: 38, Width: 9, Height: 9},
		{Name: "EQ_MINIMIZE_BUTTON_ACTIVE", Sheet: EqEx, X: 1, Y: 47, Width: 9, Height: 9},
	}
}
