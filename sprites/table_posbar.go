package sprites

func posbarRects() []Rect {
	return []Rect{
		{Name: "MAIN_POSITION_SLIDER_BACKGROUND", Sheet: PosBar, X: 0, Y: 0, Width: 248, Height: 10},
		{Name: "MAIN_POSITION_SLIDER_THUMB", Sheet: PosBar, X: 248, Y: 0, Width: 29, Height: 10},
		{Name: "MAIN_POSITION_SLIDER_THUMB_SELECTED", Sheet: PosBar, X: 278, Y: 0, Width: 29, Height: 10},
	}
}
