package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"armviz/animation"
	"armviz/kinematics"
)

// worldPerPixel shrinks view pixels to 3D world units so the default arm
// fits comfortably in the orbital camera's view.
const worldPerPixel = 0.02

func toWorld3(p r3.Vec) rl.Vector3 {
	return rl.Vector3{
		X: float32(p.X * worldPerPixel),
		Y: float32(p.Y * worldPerPixel),
		Z: float32(p.Z * worldPerPixel),
	}
}

// DrawChain3D renders the base-yawed chain inside an active 3D mode.
// step gates link visibility exactly like the 2D view.
func (r *ArmRenderer) DrawChain3D(res kinematics.Result3, step int) {
	if step < 0 {
		step = 0
	}
	if step > 3 {
		step = 3
	}

	rl.DrawGrid(20, 1)

	// Base pedestal.
	base := toWorld3(res.Base)
	rl.DrawCylinder(base, 0.25, 0.35, 0.2, 12, linkColors[0])

	for i := 1; i <= step; i++ {
		from := toWorld3(res.Joints[i-1])
		to := toWorld3(res.Joints[i])
		rl.DrawCylinderEx(from, to, 0.08, 0.08, 10, linkColors[i])
		rl.DrawSphere(to, 0.12, jointFill)
	}
}

// DrawAnimatedFrame3D draws the animated frame's ghost link embedded in
// the plane the chain currently occupies, yawed about the vertical axis.
// During the base-yaw window the planar frame is interpolated by the
// animated yaw angle instead.
func (r *ArmRenderer) DrawAnimatedFrame3D(frame animation.Frame, yaw float64, ghostLength float64) {
	rot := r3.NewRotation(yaw, r3.Vec{Y: 1})

	start := rot.Rotate(r3.Vec{X: frame.Position.X, Y: frame.Position.Y})
	tip2 := frame.Position.Add(kinematics.FromAngle(frame.Angle, ghostLength))
	tip := rot.Rotate(r3.Vec{X: tip2.X, Y: tip2.Y})

	rl.DrawCylinderEx(toWorld3(start), toWorld3(tip), 0.05, 0.05, 8, ghostColor)
	rl.DrawSphere(toWorld3(start), 0.1, ghostColor)
}
