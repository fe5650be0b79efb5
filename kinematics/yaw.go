package kinematics

import "gonum.org/v1/gonum/spatial/r3"

// Result3 holds a forward-kinematics solution for the base-yawed variant.
// The planar chain lives in a vertical plane through the yaw axis; the
// whole chain is rigidly rotated about that axis by Angles.Base.
type Result3 struct {
	Base   r3.Vec
	Joint1 r3.Vec
	Joint2 r3.Vec
	Joint3 r3.Vec

	// Joints lists base, joint1, joint2, joint3 in chain order.
	Joints [4]r3.Vec

	// Cumulative in-plane orientations, identical to the planar solve.
	Absolute1 float64
	Absolute2 float64
	Absolute3 float64

	// Reach is the base-to-joint3 distance. Rigid rotation preserves it,
	// so it matches the planar reach.
	Reach float64
}

// SolveYaw solves the planar chain at the origin and rotates it about the
// vertical (+Y) axis by the base yaw. The yaw composes outside the chain:
// it rotates the whole base frame rather than adding a link.
func SolveYaw(a Angles, l LinkLengths, scale float64) Result3 {
	planar := Solve(a, l, Placement{Scale: scale})
	rot := r3.NewRotation(a.Base, r3.Vec{Y: 1})

	var joints [4]r3.Vec
	for i, p := range planar.Joints {
		joints[i] = rot.Rotate(r3.Vec{X: p.X, Y: p.Y})
	}

	return Result3{
		Base:      joints[0],
		Joint1:    joints[1],
		Joint2:    joints[2],
		Joint3:    joints[3],
		Joints:    joints,
		Absolute1: planar.Absolute1,
		Absolute2: planar.Absolute2,
		Absolute3: planar.Absolute3,
		Reach:     r3.Norm(r3.Sub(joints[3], joints[0])),
	}
}
