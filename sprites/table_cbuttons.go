package sprites

func cbuttonsRects() []Rect {
	return []Rect{
		{Name: "MAIN_PREVIOUS_BUTTON", Sheet: CButtons, X: 0, Y: 0, Width: 23, Height: 18},
		{Name: "MAIN_PREVIOUS_BUTTON_ACTIVE", Sheet: CButtons, X: 0, Y: 18, Width: 23, Height: 18},
		{Name: "MAIN_PLAY_BUTTON", Sheet: CButtons, X: 23, Y: 0, Width: 23, Height: 18},
		{Name: "MAIN_PLAY_BUTTON_ACTIVE", Sheet: CButtons, X: 23, Y: 18, Width: 23, Height: 18},
		{Name: "MAIN_PAUSE_BUTTON", Sheet: CButtons, X: 46, Y: 0, Width: 23, Height: 18},
		{Name: "MAIN_PAUSE_BUTTON_ACTIVE", Sheet: CButtons, X: 46, Y: 18, Width: 23, Height: 18},
		{Name: "MAIN_STOP_BUTTON", Sheet: CButtons, X: 69, Y: 0, Width: 23, Height: 18},
		{Name: "MAIN_STOP_BUTTON_ACTIVE", Sheet: CButtons, X: 69, Y: 18, Width: 23, Height: 18},
		{Name: "MAIN_NEXT_BUTTON", Sheet: CButtons, X: 92, Y: 0, Width: 22, Height: 18},
		{Name: "MAIN_NEXT_BUTTON_ACTIVE", Sheet: CButtons, X: 92, Y: 18, Width: 22, Height: 18},
		{Name: "MAIN_EJECT_BUTTON", Sheet: CButtons, X: 114, Y: 0, Width: 22, Height: 16},
		{Name: "MAIN_EJECT_BUTTON_ACTIVE", Sheet: CButtons, X: 114, Y: 16, Width: 22, Height: 16},
	}
}
