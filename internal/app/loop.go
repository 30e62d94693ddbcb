package app

import (
	"fmt"
	"strconv"
	"time"

	"tracking/internal/component"
	"tracking/internal/config"
	"tracking/internal/core"
	"tracking/internal/input"
	"tracking/internal/scene"
	"tracking/internal/system"
	"tracking/internal/tracking"

	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Loop owns the marker world. Update runs every tracking tick that came due
// since the previous call; Frame moves the markers and is called once per
// rendered frame, after Update.
type Loop struct {
	world   donburi.World
	step    *core.FixedStep
	mapper  *system.Mapper
	applier *system.Applier
	markers *donburi.Query
	log     zerolog.Logger

	paused  bool
	skipped int
}

// NewLoop spawns the default markers and wires the tracking systems.
func NewLoop(cfg *config.Config, source input.Source, log zerolog.Logger) *Loop {
	world := scene.NewWorld()
	mapping := tracking.Mapping{Window: cfg.Window, Reference: cfg.Reference}
	l := &Loop{
		world:   world,
		step:    core.NewFixedStep(cfg.Tick),
		mapper:  system.NewMapper(source, mapping, log),
		applier: system.NewApplier(),
		markers: donburi.NewQuery(filter.Contains(component.Marker)),
		log:     log,
	}
	system.TickSkippedEvent.Subscribe(world, l.onTickSkipped)
	return l
}

func (l *Loop) onTickSkipped(_ donburi.World, _ system.TickSkipped) {
	l.skipped++
}

// Update runs the due tracking ticks and returns how many updated the markers.
// While paused, due ticks are consumed without sampling.
func (l *Loop) Update() int {
	due := l.step.Due()
	ran := 0
	if !l.paused {
		for i := 0; i < due; i++ {
			if l.mapper.Tick(l.world) {
				ran++
			}
		}
	}
	events.ProcessAllEvents(l.world)
	return ran
}

// Frame applies marker points to transforms.
func (l *Loop) Frame() {
	l.applier.Apply(l.world)
}

// World exposes the marker world for rendering.
func (l *Loop) World() donburi.World { return l.world }

// SetWindow tells the mapper the current window size.
func (l *Loop) SetWindow(size core.Size) { l.mapper.SetWindow(size.W, size.H) }

// SetClock replaces the time source of the tick scheduler.
func (l *Loop) SetClock(now func() time.Time) { l.step.SetClock(now) }

// TogglePaused stops or resumes cursor sampling.
func (l *Loop) TogglePaused() {
	l.paused = !l.paused
	l.log.Info().Bool("paused", l.paused).Msg("tracking toggled")
}

// Paused reports whether sampling is stopped.
func (l *Loop) Paused() bool { return l.paused }

// Reset moves every marker back to the zero point.
func (l *Loop) Reset() {
	system.ResetPoints(l.world)
	l.log.Info().Msg("marker points reset")
}

// Skipped returns how many ticks were skipped for a missing window position.
func (l *Loop) Skipped() int { return l.skipped }

// Parameters reports tracking state for the HUD.
func (l *Loop) Parameters() core.ParameterSnapshot {
	mapping := l.mapper.Mapping()
	params := []core.Parameter{
		{Key: "tick", Label: "Tick", Value: l.step.Step().String()},
		{Key: "ticks", Label: "Ticks", Value: strconv.Itoa(l.mapper.Ticks())},
		{Key: "skipped", Label: "Skipped", Value: strconv.Itoa(l.skipped)},
		{Key: "paused", Label: "Paused", Value: strconv.FormatBool(l.paused)},
		{Key: "window", Label: "Window", Value: fmt.Sprintf("%dx%d", mapping.Window.W, mapping.Window.H)},
		{Key: "reference", Label: "Reference", Value: fmt.Sprintf("%dx%d", mapping.Reference.W, mapping.Reference.H)},
	}
	if entry, ok := l.markers.First(l.world); ok {
		p := component.Marker.Get(entry).Point
		params = append(params, core.Parameter{Key: "point", Label: "Point", Value: fmt.Sprintf("%.4f, %.4f", p.X, p.Y)})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "Tracking", Params: params}}}
}
