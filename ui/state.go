package ui

import (
	"armviz/animation"
	"armviz/config"
	"armviz/kinematics"
)

// State is the control surface the panel mutates and the app reads.
// Angles are kept in degrees and lengths in millimeters because that is
// what the sliders show; conversion and clamping to the engine's units
// happen in the accessor methods, per the sanitize-at-the-boundary rule.
type State struct {
	ThetaBaseDeg float32
	Theta1Deg    float32
	Theta2Deg    float32
	Theta3Deg    float32

	L1    float32
	L2    float32
	L3    float32
	Scale float32

	// Step gates how many links the renderer draws (0..3).
	Step int

	// Animation selector: Target 0 = play all, 1..3 single joint.
	Target  int
	Enabled bool

	Mode3D    bool
	ShowAxes  bool
	ShowReach bool
	ShowTrace bool
	Paused    bool
}

// DefaultState builds the initial control state from configuration.
func DefaultState(cfg *config.Config) State {
	return State{
		L1:        float32(cfg.Arm.L1),
		L2:        float32(cfg.Arm.L2),
		L3:        float32(cfg.Arm.L3),
		Scale:     float32(cfg.Arm.Scale),
		Step:      3,
		Target:    animation.PlayAll,
		ShowAxes:  true,
		ShowReach: true,
	}
}

// Angles returns the engine-facing joint angles in radians, with each
// user-entered degree value clamped to [-180, 180] first.
func (s *State) Angles() kinematics.Angles {
	return kinematics.Angles{
		Base:   kinematics.Radians(kinematics.ClampDegrees(float64(s.ThetaBaseDeg))),
		Theta1: kinematics.Radians(kinematics.ClampDegrees(float64(s.Theta1Deg))),
		Theta2: kinematics.Radians(kinematics.ClampDegrees(float64(s.Theta2Deg))),
		Theta3: kinematics.Radians(kinematics.ClampDegrees(float64(s.Theta3Deg))),
	}
}

// Lengths returns the link lengths in millimeters.
func (s *State) Lengths() kinematics.LinkLengths {
	return kinematics.LinkLengths{
		L1: float64(s.L1),
		L2: float64(s.L2),
		L3: float64(s.L3),
	}
}

// Selector returns the animation selector.
func (s *State) Selector() animation.Selector {
	return animation.Selector{Target: s.Target, Enabled: s.Enabled}
}

// Windows returns the play-all timeline for the current view mode.
func (s *State) Windows() []animation.Window {
	if s.Mode3D {
		return animation.YawWindows()
	}
	return animation.PlanarWindows()
}

// ResetAngles zeroes all joint angles.
func (s *State) ResetAngles() {
	s.ThetaBaseDeg = 0
	s.Theta1Deg = 0
	s.Theta2Deg = 0
	s.Theta3Deg = 0
}
