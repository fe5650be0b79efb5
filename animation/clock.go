// Package animation turns a clock signal into per-joint two-phase
// animation frames for the arm visualizer.
package animation

import (
	"math"
	"time"
)

// DefaultSegmentSeconds is how long one joint's two-phase window plays.
const DefaultSegmentSeconds = 4.0

// unitsPerWindow is the progress span of one joint window: one unit for
// the rotation phase and one for the translation phase.
const unitsPerWindow = 2.0

// Clock maps wall-clock time onto a repeating raw progress value in
// [0, units). It is the only mutable state in the animation engine.
// Timestamps are injected, so tests drive it with synthetic times.
// The host ticks it from a single frame loop; Start/Stop happen between
// ticks, never concurrently with one.
type Clock struct {
	segment time.Duration
	units   float64
	epoch   time.Time
	running bool
}

// NewClock creates a stopped clock. segmentSeconds is the duration of one
// joint window; units is the total progress span of a cycle (2 per window).
func NewClock(segmentSeconds, units float64) *Clock {
	if segmentSeconds <= 0 {
		segmentSeconds = DefaultSegmentSeconds
	}
	if units < unitsPerWindow {
		units = unitsPerWindow
	}
	return &Clock{
		segment: time.Duration(segmentSeconds * float64(time.Second)),
		units:   units,
	}
}

// SetUnits reconfigures the cycle span, e.g. when switching between
// single-joint (2), play-all planar (6) and play-all yawed (8) modes.
// The caller re-arms the clock afterwards.
func (c *Clock) SetUnits(units float64) {
	if units < unitsPerWindow {
		units = unitsPerWindow
	}
	c.units = units
}

// Units returns the configured cycle span.
func (c *Clock) Units() float64 {
	return c.units
}

// Start arms the clock at the given instant. The first Tick with the same
// timestamp reads exactly 0, so a re-enabled animation never carries
// progress over from a previous run.
func (c *Clock) Start(now time.Time) {
	c.epoch = now
	c.running = true
}

// Stop halts the clock. Subsequent ticks read 0 and no progress
// accumulates in the background.
func (c *Clock) Stop() {
	c.running = false
	c.epoch = time.Time{}
}

// Running reports whether the clock is armed.
func (c *Clock) Running() bool {
	return c.running
}

// Tick returns the raw progress in [0, units) for the given instant: a
// sawtooth over the cycle duration that repeats while the clock runs.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.running {
		return 0
	}
	cycle := c.segment.Seconds() * c.units / unitsPerWindow
	elapsed := now.Sub(c.epoch).Seconds()
	frac := math.Mod(elapsed, cycle)
	if frac < 0 {
		frac += cycle
	}
	return frac / cycle * c.units
}
