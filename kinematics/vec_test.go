package kinematics

import (
	"math"
	"testing"
)

func TestFromAngleRoundtrip(t *testing.T) {
	tests := []struct {
		name      string
		angle     float64
		magnitude float64
	}{
		{"along x", 0, 5},
		{"along y", math.Pi / 2, 3},
		{"negative angle", -math.Pi / 4, 10},
		{"past pi", 2.9, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromAngle(tt.angle, tt.magnitude)
			if math.Abs(v.Length()-tt.magnitude) > 1e-12 {
				t.Errorf("length = %v, want %v", v.Length(), tt.magnitude)
			}
			if math.Abs(NormalizeAngle(v.Angle()-tt.angle)) > 1e-12 {
				t.Errorf("angle = %v, want %v", v.Angle(), tt.angle)
			}
		})
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := Vec2{X: 3, Y: -4}
	for _, angle := range []float64{0, 0.1, math.Pi / 2, math.Pi, -2.2} {
		r := v.Rotate(angle)
		if math.Abs(r.Length()-5) > 1e-12 {
			t.Errorf("rotate(%v) length = %v, want 5", angle, r.Length())
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	r := Vec2{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Y-1) > 1e-12 {
		t.Errorf("quarter turn = (%v, %v), want (0, 1)", r.X, r.Y)
	}
}

func TestDistance(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 4, Y: 6}
	if d := a.Distance(b); d != 5 {
		t.Errorf("distance = %v, want 5", d)
	}
	if d := a.Distance(a); d != 0 {
		t.Errorf("self distance = %v, want 0", d)
	}
}

func TestClampDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{179.5, 179.5},
		{180, 180},
		{181, 180},
		{-181, -180},
		{720, 180},
	}
	for _, tt := range tests {
		if got := ClampDegrees(tt.in); got != tt.want {
			t.Errorf("ClampDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
