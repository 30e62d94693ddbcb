package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFade_ShowAndHide(t *testing.T) {
	f := NewFade(0.25, false)
	assert.Zero(t, f.Alpha())

	f.Toggle()
	assert.True(t, f.Visible())
	assert.True(t, f.Animating())

	f.Update(0.1)
	mid := f.Alpha()
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(1))

	for i := 0; i < 10; i++ {
		f.Update(0.05)
	}
	assert.InDelta(t, 1, f.Alpha(), 1e-6)
	assert.False(t, f.Animating())

	f.Toggle()
	for i := 0; i < 10; i++ {
		f.Update(0.05)
	}
	assert.InDelta(t, 0, f.Alpha(), 1e-6)
	assert.False(t, f.Visible())
}

func TestFade_SetVisibleNoop(t *testing.T) {
	f := NewFade(0.25, true)
	f.SetVisible(true)
	assert.False(t, f.Animating())
	assert.Equal(t, float32(1), f.Alpha())
}

func TestFade_ZeroDurationSnaps(t *testing.T) {
	f := NewFade(0, false)
	f.Toggle()
	assert.Equal(t, float32(1), f.Alpha())
	assert.False(t, f.Animating())
}

func TestFade_ReverseMidway(t *testing.T) {
	f := NewFade(1, false)
	f.Toggle()
	f.Update(0.5)
	mid := f.Alpha()

	f.Toggle()
	f.Update(0.01)
	assert.LessOrEqual(t, f.Alpha(), mid)
}
