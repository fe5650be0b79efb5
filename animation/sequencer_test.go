package animation

import (
	"math"
	"testing"
)

func TestResolveSingleJoint(t *testing.T) {
	windows := PlanarWindows()
	for _, target := range []int{1, 2, 3} {
		sel := Selector{Target: target, Enabled: true}
		joint, local := Resolve(sel, 1.25, windows)
		if joint != target {
			t.Errorf("target %d: active joint = %d", target, joint)
		}
		if local != 1.25 {
			t.Errorf("target %d: local = %v, want 1.25", target, local)
		}
	}
}

func TestResolveSingleJointClamps(t *testing.T) {
	sel := Selector{Target: 2, Enabled: true}
	if _, local := Resolve(sel, -0.5, nil); local != 0 {
		t.Errorf("negative raw: local = %v, want 0", local)
	}
	if _, local := Resolve(sel, 7.3, nil); local != 2 {
		t.Errorf("overshoot raw: local = %v, want 2", local)
	}
}

func TestResolvePlayAllWindows(t *testing.T) {
	windows := PlanarWindows()
	sel := Selector{Target: PlayAll, Enabled: true}

	tests := []struct {
		raw       float64
		wantJoint int
		wantLocal float64
	}{
		{0, 1, 0},
		{1.0, 1, 1.0},
		{1.999, 1, 1.999},
		{2.0, 2, 0}, // boundary belongs to the later window
		{3.5, 2, 1.5},
		{4.0, 3, 0},
		{5.999, 3, 1.999},
		{6.0, 3, 2.0}, // final window accepts its upper bound
	}
	for _, tt := range tests {
		joint, local := Resolve(sel, tt.raw, windows)
		if joint != tt.wantJoint {
			t.Errorf("raw %v: joint = %d, want %d", tt.raw, joint, tt.wantJoint)
		}
		if math.Abs(local-tt.wantLocal) > 1e-12 {
			t.Errorf("raw %v: local = %v, want %v", tt.raw, local, tt.wantLocal)
		}
	}
}

func TestResolvePlayAllSweepNeverUndefined(t *testing.T) {
	windows := PlanarWindows()
	sel := Selector{Target: PlayAll, Enabled: true}

	for raw := 0.0; raw < 6.0; raw += 0.001 {
		joint, local := Resolve(sel, raw, windows)
		if joint < 1 || joint > 3 {
			t.Fatalf("raw %v: undefined joint %d", raw, joint)
		}
		if local < 0 || local > 2 {
			t.Fatalf("raw %v: local %v outside [0,2]", raw, local)
		}
		// The sweep must visit joints in increasing order.
		want := 1 + int(raw/2)
		if joint != want {
			t.Fatalf("raw %v: joint = %d, want %d", raw, joint, want)
		}
	}
}

func TestResolveYawWindows(t *testing.T) {
	windows := YawWindows()
	sel := Selector{Target: PlayAll, Enabled: true}

	if TotalUnits(windows) != 8 {
		t.Fatalf("yaw timeline spans %v units, want 8", TotalUnits(windows))
	}

	tests := []struct {
		raw       float64
		wantJoint int
	}{
		{0, 0}, // base yaw plays first
		{1.999, 0},
		{2.0, 1},
		{4.0, 2},
		{6.0, 3},
		{8.0, 3},
	}
	for _, tt := range tests {
		joint, _ := Resolve(sel, tt.raw, windows)
		if joint != tt.wantJoint {
			t.Errorf("raw %v: joint = %d, want %d", tt.raw, joint, tt.wantJoint)
		}
	}
}

func TestResolvePlayAllOutOfRange(t *testing.T) {
	windows := PlanarWindows()
	sel := Selector{Target: PlayAll, Enabled: true}

	joint, local := Resolve(sel, -1, windows)
	if joint != 1 || local != 0 {
		t.Errorf("negative raw: (%d, %v), want (1, 0)", joint, local)
	}

	joint, local = Resolve(sel, 9.5, windows)
	if joint != 3 || local != 2 {
		t.Errorf("overshoot raw: (%d, %v), want (3, 2)", joint, local)
	}
}
