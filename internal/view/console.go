package view

import (
	"fmt"
	"io"

	"pixlife/internal/world"

	"github.com/logrusorgru/aurora"
)

// Console renders a world as colored character cells on a terminal.
type Console struct {
	out  io.Writer
	live string
	dead string
}

// NewConsole constructs a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:  out,
		live: aurora.Green("██").String(),
		dead: "░░",
	}
}

// Clear moves the cursor home and wipes the screen.
func (c *Console) Clear() {
	fmt.Fprint(c.out, "\x1b[H\x1b[2J")
}

// Display writes the full board, one terminal row per grid row.
func (c *Console) Display(w *world.World) {
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.Get(x, y) {
				fmt.Fprint(c.out, c.live)
			} else {
				fmt.Fprint(c.out, c.dead)
			}
		}
		fmt.Fprintln(c.out)
	}
}

// Status writes a one-line generation summary above the board.
func (c *Console) Status(generation, population int, stats *Stats) {
	fmt.Fprintf(c.out, "Gen: %v | Living: %v | %.1f gen/sec | Avg pop: %.1f\n",
		aurora.Cyan(generation), aurora.Green(population),
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
