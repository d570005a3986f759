package sprites

func pleditRects() []Rect {
	return []Rect{
		{Name: "PLAYLIST_TOP_TILE", Sheet: Pledit, X: 127, Y: 21, Width: 25, Height: 20},
		{Name: "PLAYLIST_TOP_LEFT_CORNER", Sheet: Pledit, X: 0, Y: 21, Width: 25, Height: 20},
		{Name: "PLAYLIST_TITLE_BAR", Sheet: Pledit, X: 26, Y: 21, Width: 100, Height: 20},
		{Name: "PLAYLIST_TOP_RIGHT_CORNER", Sheet: Pledit, X: 153, Y: 21, Width: 25, Height: 20},
		{Name: "PLAYLIST_TOP_TILE_SELECTED", Sheet: Pledit, X: 127, Y: 0, Width: 25, Height: 20},
		{Name: "PLAYLIST_TOP_LEFT_SELECTED", Sheet: Pledit, X: 0, Y: 0, Width: 25, Height: 20},
		{Name: "PLAYLIST_TITLE_BAR_SELECTED", Sheet: Pledit, X: 26, Y: 0, Width: 100, Height: 20},
		{Name: "PLAYLIST_TOP_RIGHT_CORNER_SELECTED", Sheet: Pledit, X: 153, Y: 0, Width: 25, Height: 20},
		{Name: "PLAYLIST_LEFT_TILE", Sheet: Pledit, X: 0, Y: 42, Width: 12, Height: 29},
		{Name: "PLAYLIST_RIGHT_TILE", Sheet: Pledit, X: 31, Y: 42, Width: 20, Height: 29},
		{Name: "PLAYLIST_BOTTOM_TILE", Sheet: Pledit, X: 179, Y: 0, Width: 25, Height: 38},
		{Name: "PLAYLIST_BOTTOM_LEFT_CORNER", Sheet: Pledit, X: 0, Y: 72, Width: 125, Height: 38},
		{Name: "PLAYLIST_BOTTOM_RIGHT_CORNER", Sheet: Pledit, X: 126, Y: 72, Width: 150, Height: 38},
		{Name: "PLAYLIST_VISUALIZER_BACKGROUND", Sheet: Pledit, X: 205, Y: 0, Width: 75, Height: 38},
		{Name: "PLAYLIST_SCROLL_HANDLE", Sheet: Pledit, X: 52, Y: 53, Width: 8, Height: 18},
		{Name: "PLAYLIST_SCROLL_HANDLE_SELECTED", Sheet: Pledit, X: 61, Y: 53, Width: 8, Height: 18},
		{Name: "PLAYLIST_CLOSE_SELECTED", Sheet: Pledit, X: 52, Y: 42, Width: 9, Height: 9},
		{Name: "PLAYLIST_COLLAPSE_SELECTED", Sheet: Pledit, X: 62, Y: 42, Width: 9, Height: 9},
	}
}
