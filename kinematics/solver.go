package kinematics

// Angles holds the joint angles of the arm in radians. Base is the yaw of
// the whole chain about the vertical axis and only participates in SolveYaw;
// the planar solve ignores it.
type Angles struct {
	Base   float64
	Theta1 float64
	Theta2 float64
	Theta3 float64
}

// LinkLengths holds the physical link lengths in millimeters.
// Zero or negative lengths are not rejected; they produce degenerate
// duplicate joints that callers can detect through the realized lengths.
type LinkLengths struct {
	L1 float64
	L2 float64
	L3 float64
}

// DefaultLinkLengths returns the standard arm geometry in millimeters.
func DefaultLinkLengths() LinkLengths {
	return LinkLengths{L1: 40, L2: 70, L3: 50}
}

// Placement converts physical units to view units: Scale is px/mm and
// BaseX/BaseY position the arm base in view pixels.
type Placement struct {
	Scale float64
	BaseX float64
	BaseY float64
}

// Result holds one forward-kinematics solution. It is recomputed fresh on
// every Solve call and never mutated afterwards; the caller owns it.
type Result struct {
	Base   Vec2
	Joint1 Vec2
	Joint2 Vec2
	Joint3 Vec2

	// Joints lists base, joint1, joint2, joint3 in chain order.
	Joints [4]Vec2

	// Cumulative frame orientations relative to the base frame.
	Absolute1 float64
	Absolute2 float64
	Absolute3 float64

	// LinkLengths holds the realized link lengths in view pixels, measured
	// between consecutive joints. Equals Li*Scale up to float tolerance.
	LinkLengths [3]float64

	// Reach is the distance from the base to joint3 in view pixels.
	Reach float64
}

// Absolute returns the cumulative orientation of the given joint frame
// (1..3). Joint 0 is the base frame, orientation 0.
func (r Result) Absolute(joint int) float64 {
	switch joint {
	case 1:
		return r.Absolute1
	case 2:
		return r.Absolute2
	case 3:
		return r.Absolute3
	}
	return 0
}

// Solve computes the planar chain. Each joint frame is the previous frame
// rotated by its relative angle and translated along the rotated x axis by
// the scaled link length. Pure function: identical inputs give bit-identical
// outputs, and non-finite inputs propagate without sanitizing.
func Solve(a Angles, l LinkLengths, p Placement) Result {
	base := Vec2{X: p.BaseX, Y: p.BaseY}

	abs1 := a.Theta1
	joint1 := base.Add(FromAngle(abs1, l.L1*p.Scale))

	abs2 := a.Theta1 + a.Theta2
	joint2 := joint1.Add(FromAngle(abs2, l.L2*p.Scale))

	abs3 := a.Theta1 + a.Theta2 + a.Theta3
	joint3 := joint2.Add(FromAngle(abs3, l.L3*p.Scale))

	return Result{
		Base:      base,
		Joint1:    joint1,
		Joint2:    joint2,
		Joint3:    joint3,
		Joints:    [4]Vec2{base, joint1, joint2, joint3},
		Absolute1: abs1,
		Absolute2: abs2,
		Absolute3: abs3,
		LinkLengths: [3]float64{
			base.Distance(joint1),
			joint1.Distance(joint2),
			joint2.Distance(joint3),
		},
		Reach: base.Distance(joint3),
	}
}
