package sprites

func titlebarRects() []Rect {
	return []Rect{
		{Name: "MAIN_TITLE_BAR", Sheet: TitleBar, X: 27, Y: 15, Width: 275, Height: 14},
		{Name: "MAIN_TITLE_BAR_SELECTED", Sheet: TitleBar, X: 27, Y: 0, Width: 275, Height: 14},
		{Name: "MAIN_EASTER_EGG_TITLE_BAR", Sheet: TitleBar, X: 27, Y: 72, Width: 275, Height: 14},
		{Name: "MAIN_EASTER_EGG_TITLE_BAR_SELECTED", Sheet: TitleBar, X: 27, Y: 57, Width: 275, Height: 14},
		{Name: "MAIN_OPTIONS_BUTTON", Sheet: TitleBar, X: 0, Y: 0, Width: 9, Height: 9},
		{Name: "MAIN_OPTIONS_BUTTON_DEPRESSED", Sheet: TitleBar, X: 0, Y: 9, Width: 9, Height: 9},
		{Name: "MAIN_MINIMIZE_BUTTON", Sheet: TitleBar, X: 9, Y: 0, Width: 9, Height: 9},
		{Name: "MAIN_MINIMIZE_BUTTON_DEPRESSED", Sheet: TitleBar, X: 9, Y: 9, Width: 9, Height: 9},
		{Name: "MAIN_SHADE_BUTTON", Sheet: TitleBar, X: 0, Y: 18, Width: 9, Height: 9},
		{Name: "MAIN_SHADE_BUTTON_DEPRESSED", Sheet: TitleBar, X: 9, Y: 18, Width: 9, Height: 9},
		{Name: "MAIN_CLOSE_BUTTON", Sheet: TitleBar, X: 18, Y: 0, Width: 9, Height: 9},
		{Name: "MAIN_CLOSE_BUTTON_DEPRESSED", Sheet: TitleBar, X: 18, Y: 9, Width: 9, Height: 9},
		{Name: "MAIN_CLUTTER_BAR_BACKGROUND", Sheet: TitleBar, X: 304, Y: 0, Width: 8, Height: 43},
		{Name: "MAIN_CLUTTER_BAR_BACKGROUND_DISABLED", Sheet: TitleBar, X: 312, Y: 0, Width: 8, Height: 43},
		{Name: "MAIN_SHADE_BACKGROUND", Sheet: TitleBar, X: 27, Y: 42, Width: 275, Height: 14},
		{Name: "MAIN_SHADE_BACKGROUND_SELECTED", Sheet: TitleBar, X: 27, Y: 29, Width: 275, Height: 14},
	}
}
