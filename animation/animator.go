package animation

import "armviz/kinematics"

// Phase is one of the two animation sub-steps that decompose a rigid
// transform: rotate fully in place, then translate along the new heading.
type Phase int

const (
	PhaseRotating Phase = iota
	PhaseTranslating
)

// String returns the phase name for HUD and telemetry output.
func (p Phase) String() string {
	if p == PhaseTranslating {
		return "translating"
	}
	return "rotating"
}

// JointPose is the start/target state the animator interpolates between.
// Start is the previous joint's resolved position and orientation; the
// target orientation and translation length are the active joint's own.
type JointPose struct {
	Start       kinematics.Vec2
	StartAngle  float64
	TargetAngle float64
	Length      float64
}

// Frame is the instantaneous animated frame for one tick. Ephemeral:
// recomputed every tick and never stored.
type Frame struct {
	Position      kinematics.Vec2
	Angle         float64
	Phase         Phase
	PhaseProgress float64
}

// Animate interpolates the two-phase animation at local progress in
// [0, 2] (out-of-range values are clamped, never rejected).
//
// Phase 1 [0,1]: position pinned at Start, angle lerped to the target.
// Phase 2 (1,2]: angle pinned at the target, position advancing along the
// now-fixed heading. Read right-to-left against the timeline this is the
// factorization T = Rot(theta) * Trans(L, 0), which is the point of the
// visualization. The first joint of a chain follows the same contract
// with the base as its start.
func Animate(pose JointPose, local float64) Frame {
	if local < 0 {
		local = 0
	}
	if local > 2 {
		local = 2
	}

	if local <= 1 {
		return Frame{
			Position:      pose.Start,
			Angle:         pose.StartAngle + (pose.TargetAngle-pose.StartAngle)*local,
			Phase:         PhaseRotating,
			PhaseProgress: local,
		}
	}

	t := local - 1
	return Frame{
		Position:      pose.Start.Add(kinematics.FromAngle(pose.TargetAngle, pose.Length*t)),
		Angle:         pose.TargetAngle,
		Phase:         PhaseTranslating,
		PhaseProgress: t,
	}
}
