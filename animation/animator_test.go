package animation

import (
	"math"
	"testing"

	"armviz/kinematics"
)

func testPose() JointPose {
	return JointPose{
		Start:       kinematics.Vec2{X: 10, Y: 20},
		StartAngle:  0.5,
		TargetAngle: 1.3,
		Length:      80,
	}
}

func TestAnimateBoundaries(t *testing.T) {
	pose := testPose()

	t.Run("start of rotation", func(t *testing.T) {
		f := Animate(pose, 0)
		if f.Position != pose.Start || f.Angle != pose.StartAngle {
			t.Errorf("frame = %+v, want start pose", f)
		}
		if f.Phase != PhaseRotating {
			t.Errorf("phase = %v, want rotating", f.Phase)
		}
	})

	t.Run("end of rotation", func(t *testing.T) {
		f := Animate(pose, 1)
		if f.Position != pose.Start {
			t.Errorf("position = %+v, want pinned at start", f.Position)
		}
		if math.Abs(f.Angle-pose.TargetAngle) > 1e-12 {
			t.Errorf("angle = %v, want target %v", f.Angle, pose.TargetAngle)
		}
	})

	t.Run("end of translation", func(t *testing.T) {
		f := Animate(pose, 2)
		want := pose.Start.Add(kinematics.FromAngle(pose.TargetAngle, pose.Length))
		if f.Position.Distance(want) > 1e-9 {
			t.Errorf("position = %+v, want %+v", f.Position, want)
		}
		if f.Angle != pose.TargetAngle {
			t.Errorf("angle = %v, want target", f.Angle)
		}
		if f.Phase != PhaseTranslating {
			t.Errorf("phase = %v, want translating", f.Phase)
		}
	})
}

func TestAnimateRotationPhase(t *testing.T) {
	pose := testPose()
	f := Animate(pose, 0.25)

	if f.Position != pose.Start {
		t.Errorf("position moved during rotation: %+v", f.Position)
	}
	wantAngle := pose.StartAngle + (pose.TargetAngle-pose.StartAngle)*0.25
	if math.Abs(f.Angle-wantAngle) > 1e-12 {
		t.Errorf("angle = %v, want %v", f.Angle, wantAngle)
	}
	if f.PhaseProgress != 0.25 {
		t.Errorf("phase progress = %v, want 0.25", f.PhaseProgress)
	}
}

func TestAnimateTranslationPhase(t *testing.T) {
	pose := testPose()
	f := Animate(pose, 1.5)

	if f.Angle != pose.TargetAngle {
		t.Errorf("angle drifted during translation: %v", f.Angle)
	}
	want := pose.Start.Add(kinematics.FromAngle(pose.TargetAngle, pose.Length*0.5))
	if f.Position.Distance(want) > 1e-9 {
		t.Errorf("position = %+v, want %+v", f.Position, want)
	}
	if math.Abs(f.PhaseProgress-0.5) > 1e-12 {
		t.Errorf("phase progress = %v, want 0.5", f.PhaseProgress)
	}
}

func TestAnimateClampsProgress(t *testing.T) {
	pose := testPose()

	low := Animate(pose, -3)
	if low != Animate(pose, 0) {
		t.Error("negative progress should clamp to the start frame")
	}

	high := Animate(pose, 99)
	if high != Animate(pose, 2) {
		t.Error("overshoot progress should clamp to the end frame")
	}
}

func TestPoseFor(t *testing.T) {
	a := kinematics.Angles{Base: 0.9, Theta1: 0.3, Theta2: 0.4, Theta3: -0.2}
	l := kinematics.DefaultLinkLengths()
	res := kinematics.Solve(a, l, kinematics.Placement{Scale: 2, BaseX: 5, BaseY: 7})

	t.Run("chain joints", func(t *testing.T) {
		for joint := 1; joint <= 3; joint++ {
			pose := PoseFor(res, a, l, 2, joint)
			if pose.Start != res.Joints[joint-1] {
				t.Errorf("joint %d start = %+v, want previous joint %+v", joint, pose.Start, res.Joints[joint-1])
			}
			if pose.StartAngle != res.Absolute(joint-1) {
				t.Errorf("joint %d start angle = %v, want %v", joint, pose.StartAngle, res.Absolute(joint-1))
			}
			if pose.TargetAngle != res.Absolute(joint) {
				t.Errorf("joint %d target angle = %v, want %v", joint, pose.TargetAngle, res.Absolute(joint))
			}
		}
		if got := PoseFor(res, a, l, 2, 2).Length; got != l.L2*2 {
			t.Errorf("joint 2 length = %v, want %v", got, l.L2*2)
		}
	})

	t.Run("base yaw pivots in place", func(t *testing.T) {
		pose := PoseFor(res, a, l, 2, 0)
		if pose.Length != 0 {
			t.Errorf("yaw length = %v, want 0", pose.Length)
		}
		if pose.StartAngle != 0 || pose.TargetAngle != a.Base {
			t.Errorf("yaw angles = (%v, %v), want (0, %v)", pose.StartAngle, pose.TargetAngle, a.Base)
		}
		// The whole two-phase contract still applies: the translation
		// phase holds position because the length is zero.
		f := Animate(pose, 1.7)
		if f.Position != res.Base {
			t.Errorf("yaw frame moved: %+v", f.Position)
		}
	})
}

func TestAnimateAgainstSolvedChain(t *testing.T) {
	// At the end of every joint's window the animated frame must land
	// exactly on the solved chain position for that joint.
	a := kinematics.Angles{Theta1: kinematics.Radians(45), Theta2: kinematics.Radians(30), Theta3: kinematics.Radians(-60)}
	l := kinematics.DefaultLinkLengths()
	res := kinematics.Solve(a, l, kinematics.Placement{Scale: 2})

	for joint := 1; joint <= 3; joint++ {
		pose := PoseFor(res, a, l, 2, joint)
		f := Animate(pose, 2)
		if f.Position.Distance(res.Joints[joint]) > 1e-9 {
			t.Errorf("joint %d end frame = %+v, want solved %+v", joint, f.Position, res.Joints[joint])
		}
	}
}
