package scene

import (
	"testing"

	"tracking/internal/component"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestSpawnDefaultLayout(t *testing.T) {
	world := donburi.NewWorld()
	entities := Spawn(world, DefaultLayout())
	if len(entities) != 5 {
		t.Fatalf("expected 5 markers, got %d", len(entities))
	}

	want := []struct {
		color  [3]uint8
		size   float64
		origin math.Vec2
		rng    float64
		tx     float64
	}{
		{[3]uint8{128, 128, 128}, 60, math.Vec2{}, 1, 0},
		{[3]uint8{255, 255, 255}, 20, math.NewVec2(-15, 0), 5, -15},
		{[3]uint8{255, 255, 255}, 20, math.NewVec2(15, 0), 5, 15},
		{[3]uint8{0, 0, 255}, 10, math.NewVec2(-15, 0), 10, 0},
		{[3]uint8{0, 0, 255}, 10, math.NewVec2(15, 0), 10, 0},
	}

	for i, e := range entities {
		entry := world.Entry(e)
		m := component.Marker.Get(entry)
		tr := component.Transform.Get(entry)
		sp := component.Sprite.Get(entry)
		w := want[i]

		if m.Origin() != w.origin || m.Range() != w.rng || m.Point != (math.Vec2{}) {
			t.Errorf("marker %d: origin=%+v range=%v point=%+v", i, m.Origin(), m.Range(), m.Point)
		}
		if tr.ScaleX != w.size || tr.ScaleY != w.size || tr.ScaleZ != CellSize {
			t.Errorf("marker %d: scale=(%v,%v,%v)", i, tr.ScaleX, tr.ScaleY, tr.ScaleZ)
		}
		if tr.X != w.tx || tr.Y != 0 || tr.Z != 0 {
			t.Errorf("marker %d: translation=(%v,%v,%v)", i, tr.X, tr.Y, tr.Z)
		}
		if got := [3]uint8{sp.Color.R, sp.Color.G, sp.Color.B}; got != w.color || sp.Color.A != 255 {
			t.Errorf("marker %d: color=%+v", i, sp.Color)
		}
		if sp.Order != i {
			t.Errorf("marker %d: order=%d", i, sp.Order)
		}
	}
}

func TestNewWorld(t *testing.T) {
	world := NewWorld()
	if got := world.Len(); got != 5 {
		t.Fatalf("world.Len() = %d, expected 5", got)
	}
}
