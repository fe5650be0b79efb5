// Package renderer draws the arm, its joint frames and the animated
// transform decomposition. It consumes solver results and animation
// frames; all math stays in the kinematics and animation packages.
package renderer

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"armviz/animation"
	"armviz/camera"
	"armviz/kinematics"
)

// Link colors, indexed by link number (1..3). Index 0 is the base.
var linkColors = [4]rl.Color{
	{R: 130, G: 130, B: 140, A: 255},
	{R: 230, G: 120, B: 60, A: 255},
	{R: 90, G: 180, B: 90, A: 255},
	{R: 90, G: 140, B: 220, A: 255},
}

var (
	jointFill  = rl.Color{R: 235, G: 235, B: 235, A: 255}
	jointRing  = rl.Color{R: 40, G: 45, B: 50, A: 255}
	ghostColor = rl.Color{R: 250, G: 220, B: 80, A: 200}
	reachColor = rl.Color{R: 110, G: 110, B: 130, A: 120}
	axisXColor = rl.Color{R: 220, G: 80, B: 80, A: 255}
	axisYColor = rl.Color{R: 80, G: 200, B: 120, A: 255}
)

// ArmRenderer draws the 2D arm view through a camera.
type ArmRenderer struct {
	LinkThickness float32
	JointRadius   float32
	AxisLength    float32
}

// NewArmRenderer creates a renderer with default stroke sizes.
func NewArmRenderer() *ArmRenderer {
	return &ArmRenderer{
		LinkThickness: 6,
		JointRadius:   7,
		AxisLength:    26,
	}
}

// toScreen converts a solver point (y up) to screen space through the
// camera. The y flip happens here and only here.
func toScreen(cam *camera.Camera, p kinematics.Vec2) rl.Vector2 {
	sx, sy := cam.WorldToScreen(float32(p.X), float32(-p.Y))
	return rl.Vector2{X: sx, Y: sy}
}

// DrawChain renders the solved chain. step gates how many links are
// visible (0 = base only, 3 = full arm); the solver always computes the
// full chain regardless.
func (r *ArmRenderer) DrawChain(cam *camera.Camera, res kinematics.Result, step int) {
	if step < 0 {
		step = 0
	}
	if step > 3 {
		step = 3
	}

	// Links first so joints draw on top.
	for i := 1; i <= step; i++ {
		from := toScreen(cam, res.Joints[i-1])
		to := toScreen(cam, res.Joints[i])
		rl.DrawLineEx(from, to, r.LinkThickness*cam.Zoom, linkColors[i])
	}

	// Base mount.
	base := toScreen(cam, res.Base)
	half := 10 * cam.Zoom
	rl.DrawRectangleV(rl.Vector2{X: base.X - half, Y: base.Y - half},
		rl.Vector2{X: half * 2, Y: half * 2}, linkColors[0])

	for i := 1; i <= step; i++ {
		p := toScreen(cam, res.Joints[i])
		rl.DrawCircleV(p, r.JointRadius*cam.Zoom, jointFill)
		rl.DrawCircleLinesV(p, r.JointRadius*cam.Zoom, jointRing)
	}
}

// DrawFrameAxes draws each visible joint frame's local x/y axes rotated
// by its cumulative orientation, showing how orientations compose along
// the chain.
func (r *ArmRenderer) DrawFrameAxes(cam *camera.Camera, res kinematics.Result, step int) {
	if step > 3 {
		step = 3
	}
	for i := 0; i <= step && i <= 3; i++ {
		r.drawAxes(cam, res.Joints[i], res.Absolute(i))
	}
}

func (r *ArmRenderer) drawAxes(cam *camera.Camera, origin kinematics.Vec2, angle float64) {
	length := float64(r.AxisLength)
	o := toScreen(cam, origin)
	x := toScreen(cam, origin.Add(kinematics.FromAngle(angle, length)))
	y := toScreen(cam, origin.Add(kinematics.FromAngle(angle+math.Pi/2, length)))
	rl.DrawLineEx(o, x, 2*cam.Zoom, axisXColor)
	rl.DrawLineEx(o, y, 2*cam.Zoom, axisYColor)
}

// DrawReach draws the circle of the current reach around the base.
func (r *ArmRenderer) DrawReach(cam *camera.Camera, res kinematics.Result) {
	base := toScreen(cam, res.Base)
	rl.DrawCircleLinesV(base, float32(res.Reach)*cam.Zoom, reachColor)
}

// DrawAnimatedFrame draws the instantaneous animated frame: the moving
// joint frame's axes plus a ghost of the active link along the frame's
// heading. ghostLength is the active link's scaled length.
func (r *ArmRenderer) DrawAnimatedFrame(cam *camera.Camera, frame animation.Frame, ghostLength float64) {
	from := toScreen(cam, frame.Position)
	to := toScreen(cam, frame.Position.Add(kinematics.FromAngle(frame.Angle, ghostLength)))
	rl.DrawLineEx(from, to, 3*cam.Zoom, ghostColor)
	rl.DrawCircleV(from, 5*cam.Zoom, ghostColor)
	r.drawAxes(cam, frame.Position, frame.Angle)
}

// DrawPhaseLabel prints the active joint, phase name and phase progress
// near the animated frame.
func (r *ArmRenderer) DrawPhaseLabel(cam *camera.Camera, frame animation.Frame, joint int) {
	p := toScreen(cam, frame.Position)
	label := fmt.Sprintf("joint %d: %s %3.0f%%", joint, frame.Phase, frame.PhaseProgress*100)
	if joint == 0 {
		label = fmt.Sprintf("base yaw: %s %3.0f%%", frame.Phase, frame.PhaseProgress*100)
	}
	rl.DrawText(label, int32(p.X)+12, int32(p.Y)-24, 14, ghostColor)
}
