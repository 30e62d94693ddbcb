// Package scene spawns the marker entities.
package scene

import (
	"image/color"

	"tracking/internal/component"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CellSize is the base unit for sprite sizes.
const CellSize = 10.0

var (
	Gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}

	// ClearColor is the window background.
	ClearColor = color.RGBA{R: 26, G: 26, B: 26, A: 255}
)

// MarkerSpec describes one marker to spawn.
type MarkerSpec struct {
	Color       color.RGBA
	Size        float64
	Origin      math.Vec2
	Range       float64
	Translation math.Vec2
}

// DefaultLayout is a face with two eyes and two pupils. Pupils move the most,
// the face barely moves.
func DefaultLayout() []MarkerSpec {
	left := math.NewVec2(-15, 0)
	right := math.NewVec2(15, 0)
	return []MarkerSpec{
		{Color: Gray, Size: CellSize * 6, Range: 1},
		{Color: White, Size: CellSize * 2, Origin: left, Range: 5, Translation: left},
		{Color: White, Size: CellSize * 2, Origin: right, Range: 5, Translation: right},
		{Color: Blue, Size: CellSize, Origin: left, Range: 10},
		{Color: Blue, Size: CellSize, Origin: right, Range: 10},
	}
}

// Spawn creates one entity per MarkerSpec, in order, and returns them.
func Spawn(world donburi.World, specs []MarkerSpec) []donburi.Entity {
	entities := make([]donburi.Entity, 0, len(specs))
	for i, spec := range specs {
		e := world.Create(component.Marker, component.Transform, component.Sprite)
		entry := world.Entry(e)
		component.Marker.SetValue(entry, component.NewMarker(spec.Origin, spec.Range))
		component.Transform.SetValue(entry, component.TransformData{
			X:      spec.Translation.X,
			Y:      spec.Translation.Y,
			ScaleX: spec.Size,
			ScaleY: spec.Size,
			ScaleZ: CellSize,
		})
		component.Sprite.SetValue(entry, component.SpriteData{Color: spec.Color, Order: i})
		entities = append(entities, e)
	}
	return entities
}

// NewWorld returns a world populated with the default layout.
func NewWorld() donburi.World {
	world := donburi.NewWorld()
	Spawn(world, DefaultLayout())
	return world
}
