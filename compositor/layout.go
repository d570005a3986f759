package compositor

import "fmt"

func place(name string, w Window, layer, x, y, width, height int) Placement {
	return Placement{Name: name, Sprite: name, Window: w, Layer: layer, X: x, Y: y, Width: width, Height: height}
}

func alias(name, sprite string, w Window, layer, x, y, width, height int) Placement {
	p := place(name, w, layer, x, y, width, height)
	p.Sprite = sprite
	return p
}

// defaultLayout is the layout of a stopped player with all three windows
// focused.
func defaultLayout() []Placement {
	var ps []Placement
	ps = append(ps, mainLayout()...)
	ps = append(ps, equalizerLayout()...)
	ps = append(ps, playlistLayout()...)
	return ps
}

func mainLayout() []Placement {
	ps := []Placement{
		place("MAIN_WINDOW_BACKGROUND", Main, 0, 0, 0, 275, 116),
		place("MAIN_TITLE_BAR_SELECTED", Main, 1, 0, 0, 275, 14),
		place("MAIN_OPTIONS_BUTTON", Main, 2, 6, 3, 9, 9),
		place("MAIN_MINIMIZE_BUTTON", Main, 2, 244, 3, 9, 9),
		place("MAIN_SHADE_BUTTON", Main, 2, 254, 3, 9, 9),
		place("MAIN_CLOSE_BUTTON", Main, 2, 264, 3, 9, 9),
		place("MAIN_CLUTTER_BAR_BACKGROUND", Main, 1, 10, 22, 8, 43),
		place("MAIN_STOPPED_INDICATOR", Main, 1, 26, 28, 9, 9),
		place("MAIN_MONO", Main, 1, 212, 41, 27, 12),
		place("MAIN_STEREO", Main, 1, 239, 41, 29, 12),

		place("MAIN_VOLUME_BACKGROUND", Main, 1, 107, 57, 68, 13),
		place("MAIN_VOLUME_THUMB", Main, 2, 107, 58, 14, 11),
		place("MAIN_BALANCE_BACKGROUND", Main, 1, 177, 57, 38, 13),
		place("MAIN_BALANCE_THUMB", Main, 2, 189, 58, 14, 11),
		place("MAIN_EQ_BUTTON", Main, 1, 219, 58, 23, 12),
		place("MAIN_PLAYLIST_BUTTON", Main, 1, 242, 58, 23, 12),

		place("MAIN_POSITION_SLIDER_BACKGROUND", Main, 1, 17, 72, 248, 10),
		place("MAIN_POSITION_SLIDER_THUMB", Main, 2, 17, 72, 29, 10),

		place("MAIN_PREVIOUS_BUTTON", Main, 1, 16, 88, 23, 18),
		place("MAIN_PLAY_BUTTON", Main, 1, 39, 88, 23, 18),
		place("MAIN_PAUSE_BUTTON", Main, 1, 62, 88, 23, 18),
		place("MAIN_STOP_BUTTON", Main, 1, 85, 88, 23, 18),
		place("MAIN_NEXT_BUTTON", Main, 1, 108, 88, 22, 18),
		place("MAIN_EJECT_BUTTON", Main, 1, 136, 89, 22, 16),
		place("MAIN_SHUFFLE_BUTTON", Main, 1, 164, 89, 47, 15),
		place("MAIN_REPEAT_BUTTON", Main, 1, 210, 89, 28, 15),
	}
	// mm:ss, all zero while stopped.
	for i, x := range []int{48, 60, 78, 90} {
		ps = append(ps, alias(fmt.Sprintf("MAIN_TIME_DIGIT_%d", i+1), "DIGIT_0", Main, 1, x, 26, 9, 13))
	}
	return ps
}

func equalizerLayout() []Placement {
	ps := []Placement{
		place("EQ_WINDOW_BACKGROUND", Equalizer, 0, 0, 0, 275, 116),
		place("EQ_TITLE_BAR_SELECTED", Equalizer, 1, 0, 0, 275, 14),
		place("EQ_ON_BUTTON", Equalizer, 1, 14, 18, 26, 12),
		place("EQ_AUTO_BUTTON", Equalizer, 1, 40, 18, 32, 12),
		place("EQ_GRAPH_BACKGROUND", Equalizer, 1, 86, 17, 113, 19),
		place("EQ_PRESETS_BUTTON", Equalizer, 1, 217, 18, 44, 12),
		alias("EQ_PREAMP_THUMB", "EQ_SLIDER_THUMB", Equalizer, 2, 21, 63, 11, 11),
	}
	for i := 0; i < 10; i++ {
		ps = append(ps, alias(fmt.Sprintf("EQ_BAND_THUMB_%d", i+1), "EQ_SLIDER_THUMB", Equalizer, 2, 78+18*i, 63, 11, 11))
	}
	return ps
}

func playlistLayout() []Placement {
	ps := []Placement{
		place("PLAYLIST_TOP_LEFT_SELECTED", Playlist, 1, 0, 0, 25, 20),
		place("PLAYLIST_TITLE_BAR_SELECTED", Playlist, 1, 87, 0, 100, 20),
		place("PLAYLIST_TOP_RIGHT_CORNER_SELECTED", Playlist, 1, 250, 0, 25, 20),
		place("PLAYLIST_BOTTOM_LEFT_CORNER", Playlist, 1, 0, 165, 125, 38),
		place("PLAYLIST_BOTTOM_RIGHT_CORNER", Playlist, 1, 125, 165, 150, 38),
		place("PLAYLIST_SCROLL_HANDLE", Playlist, 2, 260, 20, 8, 18),
	}
	for i, x := range []int{25, 50, 75, 150, 175, 200, 225} {
		ps = append(ps, alias(fmt.Sprintf("PLAYLIST_TOP_TILE_%d", i+1), "PLAYLIST_TOP_TILE_SELECTED", Playlist, 0, x, 0, 25, 20))
	}
	for i := 0; i < 5; i++ {
		y := 20 + 29*i
		ps = append(ps,
			alias(fmt.Sprintf("PLAYLIST_LEFT_TILE_%d", i+1), "PLAYLIST_LEFT_TILE", Playlist, 0, 0, y, 12, 29),
			alias(fmt.Sprintf("PLAYLIST_RIGHT_TILE_%d", i+1), "PLAYLIST_RIGHT_TILE", Playlist, 0, 255, y, 20, 29),
		)
	}
	return ps
}
