package main

import (
	"fmt"
	"os"
	"time"

	"pixlife/internal/app"
	"pixlife/internal/view"
	"pixlife/internal/world"

	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.DefaultConfig()
	// Terminal-sized defaults; one board row per grid row.
	cfg.Width = 60
	cfg.Height = 30
	cfg.Interval = 150 * time.Millisecond

	steps := 200
	glider := false
	cfg.RegisterFlags()
	flaggy.Int(&steps, "n", "steps", "number of generations to run")
	flaggy.Bool(&glider, "g", "glider", "stamp a glider in the top-left corner")
	flaggy.Parse()

	seed := cfg.ResolveSeed()
	w := world.New(cfg.Width, cfg.Height, float32(cfg.FillRate))
	w.Reset(seed)
	if glider {
		w.AddGlider(1, 1)
	}

	console := view.NewConsole(os.Stdout)
	stats := view.NewStats()

	for gen := 1; gen <= steps; gen++ {
		start := time.Now()
		w.Step()
		stats.Update(gen, w.Population(), time.Since(start))

		console.Clear()
		console.Status(gen, w.Population(), stats)
		console.Display(w)

		if w.Population() == 0 {
			fmt.Println("Extinct, stopping early.")
			break
		}
		time.Sleep(cfg.Interval)
	}

	fmt.Printf("Finished: %d generations in %.1fs\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
}
