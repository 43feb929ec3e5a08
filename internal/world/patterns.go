package world

// AddGlider stamps a glider with its top-left corner at (x, y).
func (w *World) AddGlider(x, y int) {
	pattern := [][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
	for dy, row := range pattern {
		for dx, cell := range row {
			w.Set(x+dx, y+dy, cell == 1)
		}
	}
}

// AddBlinker stamps a horizontal blinker starting at (x, y).
func (w *World) AddBlinker(x, y int) {
	w.Set(x, y, true)
	w.Set(x+1, y, true)
	w.Set(x+2, y, true)
}
