package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"armviz/animation"
	"armviz/renderer"
	"armviz/telemetry"
)

var clearColor = rl.Color{R: 16, G: 18, B: 22, A: 255}

// Draw renders one frame. It only reads state produced by step; all
// solving and animation happen there.
func (a *App) Draw() {
	a.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(clearColor)

	if a.state.Mode3D {
		a.draw3D()
	} else {
		a.draw2D()
	}

	a.panel.Draw(&a.state)

	var frame *animation.Frame
	if a.moving {
		frame = &a.frame
	}
	a.hud.Draw(a.res, &a.state, frame, a.active)

	rl.EndDrawing()

	a.perf.EndTick()
	a.maybeLogStats()
}

func (a *App) draw2D() {
	renderer.DrawGrid(a.cam, 50)

	if a.state.ShowReach {
		a.arm.DrawReach(a.cam, a.res)
	}
	if a.state.ShowTrace {
		a.trace.Draw(a.cam)
	}

	a.arm.DrawChain(a.cam, a.res, a.state.Step)
	if a.state.ShowAxes {
		a.arm.DrawFrameAxes(a.cam, a.res, a.state.Step)
	}

	if a.moving {
		a.arm.DrawAnimatedFrame(a.cam, a.frame, a.ghostLength())
		a.arm.DrawPhaseLabel(a.cam, a.frame, a.active)
	}
}

func (a *App) draw3D() {
	rl.BeginMode3D(a.cam3D)

	a.arm.DrawChain3D(a.res3, a.state.Step)

	// The base yaw window needs no overlay: the whole chain rotates.
	if a.moving && a.active >= 1 {
		a.arm.DrawAnimatedFrame3D(a.frame, a.angles.Base, a.ghostLength())
	}

	rl.EndMode3D()
}
