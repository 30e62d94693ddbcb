package core

import "time"

// DefaultTick is the fixed period between tracking updates.
const DefaultTick = 10 * time.Millisecond

// DefaultMaxCatchUp bounds how many ticks Due reports after a stall.
const DefaultMaxCatchUp = 10

// FixedStep helps run updates at a steady tick period regardless of how often
// the host loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller with the given tick period.
// The first poll always reports a due tick.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{maxCatchUp: DefaultMaxCatchUp, now: time.Now}
	fs.SetStep(step)
	fs.accumulator = fs.step
	return fs
}

// SetStep changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = DefaultTick
	}
	f.step = step
}

// Step returns the tick period.
func (f *FixedStep) Step() time.Duration { return f.step }

// SetMaxCatchUp limits the number of ticks a single Due call may report.
func (f *FixedStep) SetMaxCatchUp(n int) {
	if n <= 0 {
		n = DefaultMaxCatchUp
	}
	f.maxCatchUp = n
}

// SetClock replaces the time source. Tests use it to drive the controller
// deterministically.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
	f.last = time.Time{}
}

// ShouldStep reports whether at least one tick is due and consumes it.
func (f *FixedStep) ShouldStep() bool {
	f.advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Due reports how many ticks elapsed since the previous poll and consumes
// them. After a long stall the count is capped and the backlog dropped.
func (f *FixedStep) Due() int {
	f.advance()
	n := int(f.accumulator / f.step)
	if n > f.maxCatchUp {
		f.accumulator %= f.step
		return f.maxCatchUp
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

func (f *FixedStep) advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
}
