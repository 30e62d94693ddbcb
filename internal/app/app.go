//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"tracking/internal/config"
	"tracking/internal/core"
	"tracking/internal/input"
	"tracking/internal/render"
	"tracking/internal/scene"
	"tracking/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Game adapts the tracking loop to the ebiten.Game interface.
type Game struct {
	loop    *Loop
	painter *render.SquarePainter
	hud     *ui.HUD
	camera  render.Camera
	clear   color.Color
	tps     int
	log     zerolog.Logger
}

// New constructs a Game for the provided configuration.
func New(cfg *config.Config, source input.Source, log zerolog.Logger) *Game {
	g := &Game{
		loop:    NewLoop(cfg, source, log),
		painter: render.NewSquarePainter(),
		camera:  render.Camera{Viewport: cfg.Window},
		clear:   scene.ClearColor,
		tps:     cfg.TPS,
		log:     log,
	}
	g.hud = ui.NewHUD(g, cfg.HUD)
	return g
}

// Update handles keys and runs the tracking ticks that came due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.TogglePaused()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.hud.Toggle()
	}

	g.loop.Update()
	g.hud.Update(1 / float32(ebiten.TPS()))
	return nil
}

// Draw moves the markers to their latest points and renders them.
func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Frame()
	screen.Fill(g.clear)
	g.painter.Draw(screen, g.loop.World(), g.camera)
	g.hud.Draw(screen)
}

// Layout keeps the logical screen equal to the window so cursor positions are
// window pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{W: outsideWidth, H: outsideHeight}
	if size != g.camera.Viewport && size.Valid() {
		g.log.Debug().Int("width", size.W).Int("height", size.H).Msg("window resized")
		g.camera.Viewport = size
		g.loop.SetWindow(size)
	}
	return outsideWidth, outsideHeight
}

// Parameters reports tracking and engine state for the HUD.
func (g *Game) Parameters() core.ParameterSnapshot {
	engine := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Engine",
		Params: []core.Parameter{
			{Key: "fps", Label: "FPS", Value: fmt.Sprintf("%.1f", ebiten.ActualFPS())},
			{Key: "tps", Label: "TPS", Value: fmt.Sprintf("%.1f / %d", ebiten.ActualTPS(), g.tps)},
		},
	}}}
	return g.loop.Parameters().Append(engine)
}
