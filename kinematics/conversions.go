package kinematics

import "math"

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ClampDegrees restricts a user-facing angle to [-180, 180] degrees.
// Sanitizing happens here at the control boundary; the solver itself
// accepts any value.
func ClampDegrees(deg float64) float64 {
	if deg < -180 {
		return -180
	}
	if deg > 180 {
		return 180
	}
	return deg
}

// NormalizeAngle wraps an angle to [-pi, pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
