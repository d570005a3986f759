package sprites

// The balance sheet holds 28 stacked slider backgrounds, 15 pixels apart.
func balanceRects() []Rect {
	return []Rect{
		{Name: "MAIN_BALANCE_BACKGROUND", Sheet: Balance, X: 9, Y: 0, Width: 38, Height: 420},
		{Name: "MAIN_BALANCE_THUMB", Sheet: Balance, X: 15, Y: 422, Width: 14, Height: 11},
		{Name: "MAIN_BALANCE_THUMB_ACTIVE", Sheet: Balance, X: 0, Y: 422, Width: 14, Height: 11},
	}
}
