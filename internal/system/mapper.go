// Package system holds the ECS systems that move markers.
package system

import (
	"time"

	"tracking/internal/component"
	"tracking/internal/input"
	"tracking/internal/logging"
	"tracking/internal/tracking"

	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/features/math"
)

// Mapper samples the cursor once per tick and stores the normalized point in
// every marker.
type Mapper struct {
	query   *donburi.Query
	source  input.Source
	mapping tracking.Mapping
	log     zerolog.Logger

	ticks   int
	skipped int
}

// NewMapper constructs a Mapper reading from source.
func NewMapper(source input.Source, mapping tracking.Mapping, log zerolog.Logger) *Mapper {
	return &Mapper{
		query:   donburi.NewQuery(filter.Contains(component.Marker)),
		source:  source,
		mapping: mapping,
		log:     logging.Sampled(log.With().Str("system", "mapper").Logger(), 1, time.Second),
	}
}

// Tick runs one tracking update. It returns false, leaving every point
// untouched, when the window position is unavailable.
func (m *Mapper) Tick(world donburi.World) bool {
	sample, ok := tracking.Read(m.source)
	if !ok {
		m.skipped++
		m.log.Debug().Int("tick", m.ticks).Msg("window not placed, skipping tick")
		TickSkippedEvent.Publish(world, TickSkipped{Tick: m.ticks})
		return false
	}
	m.query.Each(world, func(entry *donburi.Entry) {
		marker := component.Marker.Get(entry)
		marker.Point = m.mapping.Point(sample, marker.Origin())
	})
	m.ticks++
	return true
}

// SetWindow updates the window size used to find the window center.
func (m *Mapper) SetWindow(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.mapping.Window.W = w
	m.mapping.Window.H = h
}

// Mapping returns the active mapping.
func (m *Mapper) Mapping() tracking.Mapping { return m.mapping }

// Ticks returns the number of successful ticks.
func (m *Mapper) Ticks() int { return m.ticks }

// Skipped returns the number of ticks skipped for a missing window position.
func (m *Mapper) Skipped() int { return m.skipped }

// ResetPoints moves every marker back to the zero point.
func ResetPoints(world donburi.World) {
	donburi.NewQuery(filter.Contains(component.Marker)).Each(world, func(entry *donburi.Entry) {
		component.Marker.Get(entry).Point = math.Vec2{}
	})
}
