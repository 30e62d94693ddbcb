package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultFadeDuration is how long the HUD takes to appear or disappear, in
// seconds.
const DefaultFadeDuration float32 = 0.25

// Fade tweens an opacity between 0 and 1 when visibility is toggled.
type Fade struct {
	tween    *gween.Tween
	alpha    float32
	visible  bool
	duration float32
}

// NewFade returns a settled Fade, fully opaque when visible is set.
func NewFade(duration float32, visible bool) *Fade {
	f := &Fade{visible: visible, duration: duration}
	if visible {
		f.alpha = 1
	}
	return f
}

// Toggle flips the target visibility.
func (f *Fade) Toggle() { f.SetVisible(!f.visible) }

// SetVisible starts a tween towards the given visibility. Fading out starts
// from the current opacity so a toggle mid-fade does not jump.
func (f *Fade) SetVisible(visible bool) {
	if visible == f.visible {
		return
	}
	f.visible = visible
	target, fn := float32(0), ease.InQuad
	if visible {
		target, fn = 1, ease.OutQuad
	}
	if f.duration <= 0 {
		f.alpha = target
		f.tween = nil
		return
	}
	f.tween = gween.New(f.alpha, target, f.duration, fn)
}

// Update advances the tween by dt seconds.
func (f *Fade) Update(dt float32) {
	if f.tween == nil {
		return
	}
	val, done := f.tween.Update(dt)
	f.alpha = val
	if done {
		f.tween = nil
	}
}

// Alpha is the current opacity.
func (f *Fade) Alpha() float32 { return f.alpha }

// Visible reports the target visibility.
func (f *Fade) Visible() bool { return f.visible }

// Animating reports whether a tween is in progress.
func (f *Fade) Animating() bool { return f.tween != nil }
