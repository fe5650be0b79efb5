package animation

import "armviz/kinematics"

// PoseFor derives the animator input for a joint from a solved chain.
// The start is the previous joint's position and cumulative orientation;
// the target is the joint's own cumulative orientation and scaled link
// length. Joint 0 is the base yaw: it pivots in place (zero translation)
// from orientation 0 to the configured yaw.
func PoseFor(res kinematics.Result, a kinematics.Angles, l kinematics.LinkLengths, scale float64, joint int) JointPose {
	switch joint {
	case 1:
		return JointPose{
			Start:       res.Base,
			StartAngle:  0,
			TargetAngle: res.Absolute1,
			Length:      l.L1 * scale,
		}
	case 2:
		return JointPose{
			Start:       res.Joint1,
			StartAngle:  res.Absolute1,
			TargetAngle: res.Absolute2,
			Length:      l.L2 * scale,
		}
	case 3:
		return JointPose{
			Start:       res.Joint2,
			StartAngle:  res.Absolute2,
			TargetAngle: res.Absolute3,
			Length:      l.L3 * scale,
		}
	}
	return JointPose{
		Start:       res.Base,
		StartAngle:  0,
		TargetAngle: a.Base,
		Length:      0,
	}
}
