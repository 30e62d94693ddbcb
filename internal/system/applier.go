package system

import (
	"tracking/internal/component"
	"tracking/internal/tracking"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Applier copies marker positions into transforms. It runs once per frame.
type Applier struct {
	query *donburi.Query
}

// NewApplier constructs an Applier.
func NewApplier() *Applier {
	return &Applier{query: donburi.NewQuery(filter.Contains(component.Marker, component.Transform))}
}

// Apply updates the translation of every marker.
func (a *Applier) Apply(world donburi.World) {
	a.query.Each(world, func(entry *donburi.Entry) {
		tracking.Apply(*component.Marker.Get(entry), component.Transform.Get(entry))
	})
}
