package animation

import (
	"math"
	"testing"
	"time"
)

func at(seconds float64) time.Time {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(seconds * float64(time.Second)))
}

func TestClockStartsAtZero(t *testing.T) {
	c := NewClock(4, 2)
	c.Start(at(100))
	if got := c.Tick(at(100)); got != 0 {
		t.Errorf("first tick = %v, want 0", got)
	}
}

func TestClockSawtooth(t *testing.T) {
	// Single-joint mode: 2 units over one 4s segment, so one full cycle
	// every 4 seconds.
	c := NewClock(4, 2)
	c.Start(at(0))

	tests := []struct {
		sec  float64
		want float64
	}{
		{0, 0},
		{1, 0.5},
		{2, 1.0},
		{3, 1.5},
		{4, 0}, // wrap
		{5, 0.5},
		{10, 1.0},
	}
	for _, tt := range tests {
		if got := c.Tick(at(tt.sec)); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("tick at %vs = %v, want %v", tt.sec, got, tt.want)
		}
	}
}

func TestClockPlayAllScaling(t *testing.T) {
	// Play-all planar: 6 units over 3 segments of 4s = 12s cycle.
	c := NewClock(4, TotalUnits(PlanarWindows()))
	c.Start(at(0))

	if got := c.Tick(at(6)); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("tick at 6s = %v, want 3", got)
	}
	if got := c.Tick(at(12)); math.Abs(got) > 1e-9 {
		t.Errorf("tick at 12s = %v, want 0 (wrap)", got)
	}

	// Yawed play-all: 8 units over a 16s cycle.
	c.SetUnits(TotalUnits(YawWindows()))
	c.Start(at(0))
	if got := c.Tick(at(4)); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("yawed tick at 4s = %v, want 2", got)
	}
}

func TestClockStopResetsProgress(t *testing.T) {
	c := NewClock(4, 2)
	c.Start(at(0))
	if c.Tick(at(1)) == 0 {
		t.Fatal("expected nonzero progress while running")
	}

	c.Stop()
	if got := c.Tick(at(2)); got != 0 {
		t.Errorf("tick while stopped = %v, want 0", got)
	}
	if c.Running() {
		t.Error("clock should report stopped")
	}
}

func TestClockRestartDiscardsOldEpoch(t *testing.T) {
	c := NewClock(4, 2)
	c.Start(at(0))
	_ = c.Tick(at(3))

	// Re-arming must not carry progress over from the previous run.
	c.Start(at(50))
	if got := c.Tick(at(50)); got != 0 {
		t.Errorf("tick after restart = %v, want 0", got)
	}
	if got := c.Tick(at(51)); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("tick 1s after restart = %v, want 0.5", got)
	}
}

func TestClockProgressStaysInRange(t *testing.T) {
	c := NewClock(4, TotalUnits(PlanarWindows()))
	c.Start(at(0))
	for sec := 0.0; sec < 60; sec += 0.37 {
		got := c.Tick(at(sec))
		if got < 0 || got >= c.Units() {
			t.Fatalf("tick at %vs = %v, outside [0, %v)", sec, got, c.Units())
		}
	}
}
