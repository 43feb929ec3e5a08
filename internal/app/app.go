//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"pixlife/internal/core"
	"pixlife/internal/render"
	"pixlife/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the world engine to the ebiten.Game interface.
type Game struct {
	world   *world.World
	painter *render.GridPainter
	cadence *core.FixedStep

	onColor  color.RGBA
	offColor color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game hosting the provided world.
func New(w *world.World, cfg *Config, seed int64) *Game {
	return &Game{
		world:    w,
		painter:  render.NewGridPainter(w.Width(), w.Height(), cfg.Scale),
		cadence:  core.NewFixedStep(cfg.Interval),
		onColor:  render.DefaultAlive,
		offColor: render.DefaultDead,
		scale:    cfg.Scale,
		seed:     seed,
	}
}

// Reset reinitializes the world state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation on its cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	} else if !g.paused && g.cadence.ShouldStep() {
		g.world.Step()
	}
	return nil
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.painter.Blit(screen, g.world.Cells(), g.onColor, g.offColor); err != nil {
		log.Printf("painter.Blit() failed: %v", err)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width() * g.scale, g.world.Height() * g.scale
}
