package sprites

func shufrepRects() []Rect {
	return []Rect{
		{Name: "MAIN_SHUFFLE_BUTTON", Sheet: ShufRep, X: 28, Y: 0, Width: 47, Height: 15},
		{Name: "MAIN_SHUFFLE_BUTTON_DEPRESSED", Sheet: ShufRep, X: 28, Y: 15, Width: 47, Height: 15},
		{Name: "MAIN_SHUFFLE_BUTTON_SELECTED", Sheet: ShufRep, X: 28, Y: 30, Width: 47, Height: 15},
		{Name: "MAIN_SHUFFLE_BUTTON_SELECTED_DEPRESSED", Sheet: ShufRep, X: 28, Y: 45, Width: 47, Height: 15},
		{Name: "MAIN_REPEAT_BUTTON", Sheet: ShufRep, X: 0, Y: 0, Width: 28, Height: 15},
		{Name: "MAIN_REPEAT_BUTTON_DEPRESSED", Sheet: ShufRep, X: 0, Y: 15, Width: 28, Height: 15},
		{Name: "MAIN_REPEAT_BUTTON_SELECTED", Sheet: ShufRep, X: 0, Y: 30, Width: 28, Height: 15},
		{Name: "MAIN_REPEAT_BUTTON_SELECTED_DEPRESSED", Sheet: ShufRep, X: 0, Y: 45, Width: 28, Height: 15},
		{Name: "MAIN_EQ_BUTTON", Sheet: ShufRep, X: 0, Y: 61, Width: 23, Height: 12},
		{Name: "MAIN_EQ_BUTTON_SELECTED", Sheet: ShufRep, X: 0, Y: 73, Width: 23, Height: 12},
		{Name: "MAIN_EQ_BUTTON_DEPRESSED", Sheet: ShufRep, X: 46, Y: 61, Width: 23, Height: 12},
		{Name: "MAIN_EQ_BUTTON_DEPRESSED_SELECTED", Sheet: ShufRep, X: 46, Y: 73, Width: 23, Height: 12},
		{Name: "MAIN_PLAYLIST_BUTTON", Sheet: ShufRep, X: 23, Y: 61, Width: 23, Height: 12},
		{Name: "MAIN_PLAYLIST_BUTTON_SELECTED", Sheet: ShufRep, X: 23, Y: 73, Width: 23, Height: 12},
		{Name: "MAIN_PLAYLIST_BUTTON_DEPRESSED", Sheet: ShufRep, X: 69, Y: 61, Width: 23, Height: 12},
		{Name: "MAIN_PLAYLIST_BUTTON_DEPRESSED_SELECTED", Sheet: ShufRep, X: 69, Y: 73, Width: 23, Height: 12},
	}
}
