//go:build ebiten

package render

import (
	"image/color"
	"sort"

	"tracking/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

type drawable struct {
	transform component.TransformData
	sprite    component.SpriteData
}

// SquarePainter draws every sprite entity as a solid square.
type SquarePainter struct {
	pixel *ebiten.Image
	query *donburi.Query
	buf   []drawable
}

// NewSquarePainter allocates the shared 1x1 source image.
func NewSquarePainter() *SquarePainter {
	p := &SquarePainter{query: donburi.NewQuery(filter.Contains(component.Transform, component.Sprite))}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Draw paints the sprites of world onto dst in Order.
func (p *SquarePainter) Draw(dst *ebiten.Image, world donburi.World, cam Camera) {
	p.buf = p.buf[:0]
	p.query.Each(world, func(entry *donburi.Entry) {
		p.buf = append(p.buf, drawable{
			transform: *component.Transform.Get(entry),
			sprite:    *component.Sprite.Get(entry),
		})
	})
	sort.SliceStable(p.buf, func(i, j int) bool { return p.buf[i].sprite.Order < p.buf[j].sprite.Order })

	for _, d := range p.buf {
		r := cam.SpriteRect(d.transform)
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.W, r.H)
		op.GeoM.Translate(r.X, r.Y)
		op.ColorScale.ScaleWithColor(d.sprite.Color)
		dst.DrawImage(p.pixel, op)
	}
}
