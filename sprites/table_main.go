package sprites

func mainRects() []Rect {
	return []Rect{
		{Name: "MAIN_WINDOW_BACKGROUND", Sheet: Main, X: 0, Y: 0, Width: 275, Height: 116},
	}
}
