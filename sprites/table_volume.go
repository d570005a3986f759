package sprites

// Like the balance sheet, the volume background is 28 frames of 68x13
// stacked 15 pixels apart.
func volumeRects() []Rect {
	return []Rect{
		{Name: "MAIN_VOLUME_BACKGROUND", Sheet: Volume, X: 0, Y: 0, Width: 68, Height: 420},
		{Name: "MAIN_VOLUME_THUMB", Sheet: Volume, X: 15, Y: 422, Width: 14, Height: 11},
		{Name: "MAIN_VOLUME_THUMB_SELECTED", Sheet: Volume, X: 0, Y: 422, Width: 14, Height: 11},
	}
}
