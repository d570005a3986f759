package sprites

func playpausRects() []Rect {
	return []Rect{
		{Name: "MAIN_PLAYING_INDICATOR", Sheet: PlayPaus, X: 0, Y: 0, Width: 9, Height: 9},
		{Name: "MAIN_PAUSED_INDICATOR", Sheet: PlayPaus, X: 9, Y: 0, Width: 9, Height: 9},
		{Name: "MAIN_STOPPED_INDICATOR", Sheet: PlayPaus, X: 18, Y: 0, Width: 9, Height: 9},
		{Name: "MAIN_NOT_WORKING_INDICATOR", Sheet: PlayPaus, X: 36, Y: 0, Width: 3, Height: 9},
		{Name: "MAIN_WORKING_INDICATOR", Sheet: PlayPaus, X: 39, Y: 0, Width: 3, Height: 9},
	}
}
