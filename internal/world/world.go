package world

import (
	"pixlife/internal/core"
)

// World implements Conway's Game of Life on a bounded grid. Cells beyond the
// edges do not exist: there is no toroidal wrapping, so corner cells have 3
// neighbors and edge cells 5.
type World struct {
	w, h     int
	fillRate float32
	cells    []uint8
	counts   []uint8
}

// New allocates an all-dead world with the given dimensions. Non-positive
// dimensions are clamped to 1. fillRate is the probability that a cell
// starts alive on Reset.
func New(w, h int, fillRate float32) *World {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	cells := make([]uint8, w*h)
	return &World{
		w:        w,
		h:        h,
		fillRate: fillRate,
		cells:    cells,
		counts:   make([]uint8, len(cells)),
	}
}

// Width returns the grid width in cells.
func (w *World) Width() int { return w.w }

// Height returns the grid height in cells.
func (w *World) Height() int { return w.h }

// Cells exposes the backing slice so callers can read/write values directly.
func (w *World) Cells() []uint8 { return w.cells }

// Index returns the linear slice index for coordinates (x, y).
func (w *World) Index(x, y int) int { return y*w.w + x }

// Get reports whether the cell at (x, y) is alive. Coordinates outside the
// grid read as dead.
func (w *World) Get(x, y int) bool {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return false
	}
	return w.cells[y*w.w+x] != 0
}

// Set writes the cell at (x, y). Coordinates outside the grid are ignored.
func (w *World) Set(x, y int, alive bool) {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return
	}
	if alive {
		w.cells[y*w.w+x] = 1
	} else {
		w.cells[y*w.w+x] = 0
	}
}

// Population returns the number of live cells.
func (w *World) Population() int {
	n := 0
	for _, c := range w.cells {
		n += int(c)
	}
	return n
}

// Reset randomizes the board using the provided seed: each cell is an
// independent Bernoulli trial with the world's fill rate.
func (w *World) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBernoulli(rng, w.cells, w.fillRate)
}

// Step advances the simulation by one generation. Every neighbor count is
// taken from the current generation before any cell is overwritten, so the
// whole grid updates simultaneously.
func (w *World) Step() {
	width, height := w.w, w.h
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			neighbors := uint8(0)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					ny := y + dy
					if nx < 0 || ny < 0 || nx >= width || ny >= height {
						continue
					}
					neighbors += w.cells[ny*width+nx]
				}
			}
			w.counts[y*width+x] = neighbors
		}
	}
	for i, n := range w.counts {
		if n == 3 || (w.cells[i] == 1 && n == 2) {
			w.cells[i] = 1
		} else {
			w.cells[i] = 0
		}
	}
}
