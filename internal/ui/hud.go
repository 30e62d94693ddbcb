//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"tracking/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	hudWidth      = 230
	hudLineHeight = 16
	hudPadding    = 6
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a translucent panel of runtime values in the top-left corner.
type HUD struct {
	provider   parameterProvider
	fade       *Fade
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD reading from provider.
func NewHUD(provider parameterProvider, visible bool) *HUD {
	return &HUD{provider: provider, fade: NewFade(DefaultFadeDuration, visible)}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.fade.Toggle()
}

// Visible reports whether the panel is shown or fading in.
func (h *HUD) Visible() bool { return h != nil && h.fade.Visible() }

// Update advances the fade by dt seconds and refreshes the cached values.
func (h *HUD) Update(dt float32) {
	if h == nil {
		return
	}
	h.fade.Update(dt)
	if h.fade.Alpha() <= 0 || h.provider == nil {
		return
	}
	h.lines = h.provider.Parameters().Lines()
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	alpha := h.fade.Alpha()
	if alpha <= 0 || len(h.lines) == 0 {
		return
	}
	height := len(h.lines)*hudLineHeight + 2*hudPadding
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(hudWidth, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	ebitenutil.DebugPrintAt(h.panel, strings.Join(h.lines, "\n"), hudPadding, hudPadding)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(h.panel, op)
}
