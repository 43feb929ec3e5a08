//go:build ebiten

package main

import (
	"errors"
	"log"

	"pixlife/internal/app"
	"pixlife/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	cfg, err := app.LoadConfig("config.json")
	if err != nil {
		log.Printf("using default configuration: %v", err)
	}
	cfg.RegisterFlags()
	flaggy.Parse()

	seed := cfg.ResolveSeed()
	w := world.New(cfg.Width, cfg.Height, float32(cfg.FillRate))
	w.Reset(seed)

	game := app.New(w, cfg, seed)

	ebiten.SetWindowTitle("pixlife — game of life")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w.Width()*cfg.Scale, w.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
