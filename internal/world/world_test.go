package world

import (
	"bytes"
	"testing"
)

func TestLonelyCenterCellDies(t *testing.T) {
	w := New(3, 3, 0)
	w.Set(1, 1, true)

	w.Step()

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if w.Get(x, y) {
				t.Fatalf("cell (%d,%d) alive, expected fully dead grid", x, y)
			}
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	w := New(4, 4, 0)
	block := map[[2]int]bool{
		{1, 1}: true,
		{2, 1}: true,
		{1, 2}: true,
		{2, 2}: true,
	}
	for pos := range block {
		w.Set(pos[0], pos[1], true)
	}

	w.Step()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			alive := w.Get(x, y)
			_, shouldBeAlive := block[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	w := New(5, 5, 0)
	w.AddBlinker(1, 2)

	w.Step()

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := w.Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	w.Step()

	expects = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := w.Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

// A vertical blinker flush against the left edge. On a torus the cells at
// x=4 would count the column-0 cells as neighbors and come alive; on a hard
// edge they must stay dead and the edge cells see truncated neighborhoods.
func TestHardEdgeDoesNotWrap(t *testing.T) {
	w := New(5, 5, 0)
	w.Set(0, 0, true)
	w.Set(0, 1, true)
	w.Set(0, 2, true)

	w.Step()

	expects := map[[2]int]bool{
		{0, 1}: true,
		{1, 1}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := w.Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestStepIsDeterministic(t *testing.T) {
	a := New(8, 8, 0)
	b := New(8, 8, 0)
	a.AddGlider(2, 2)
	b.AddGlider(2, 2)

	for i := 0; i < 4; i++ {
		a.Step()
		b.Step()
		if !bytes.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("grids diverged after %d steps", i+1)
		}
	}
}

func TestBoundarySafety(t *testing.T) {
	for h := 1; h <= 10; h++ {
		for w := 1; w <= 10; w++ {
			wd := New(w, h, 1)
			wd.Reset(1)
			wd.Step()
			wd.Step()
			if len(wd.Cells()) != w*h {
				t.Fatalf("%dx%d grid has %d cells", w, h, len(wd.Cells()))
			}
		}
	}
}

func TestFillRateExtremes(t *testing.T) {
	dead := New(8, 8, 0)
	dead.Reset(7)
	if got := dead.Population(); got != 0 {
		t.Fatalf("fill rate 0: population %d, expected 0", got)
	}

	alive := New(8, 8, 1)
	alive.Reset(7)
	if got := alive.Population(); got != 64 {
		t.Fatalf("fill rate 1: population %d, expected 64", got)
	}
}

func TestResetReproducible(t *testing.T) {
	a := New(16, 16, 0.5)
	b := New(16, 16, 0.5)
	a.Reset(99)
	b.Reset(99)
	if !bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical seeds produced different grids")
	}

	b.Reset(100)
	if bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatal("different seeds produced identical 16x16 grids")
	}
}

func TestDimensionClamping(t *testing.T) {
	w := New(0, -3, 0.5)
	if w.Width() != 1 || w.Height() != 1 {
		t.Fatalf("got %dx%d, expected clamp to 1x1", w.Width(), w.Height())
	}
	w.Reset(1)
	w.Step()
}
