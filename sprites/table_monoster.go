package sprites

func monosterRects() []Rect {
	return []Rect{
		{Name: "MAIN_STEREO", Sheet: MonoSter, X: 0, Y: 12, Width: 29, Height: 12},
		{Name: "MAIN_STEREO_ACTIVE", Sheet: MonoSter, X: 0, Y: 0, Width: 29, Height: 12},
		{Name: "MAIN_MONO", Sheet: MonoSter, X: 29, Y: 12, Width: 27, Height: 12},
		{Name: "MAIN_MONO_ACTIVE", Sheet: MonoSter, X: 29, Y: 0, Width: 27, Height: 12},
	}
}
