package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and mouse input for one tick.
func (a *App) handleInput() {
	a.handleResize()

	// Pause. Resuming restarts the animation cycle: the clock has no
	// notion of suspended time, and a restarted cycle is less confusing
	// than a jump to wherever wall time landed.
	if rl.IsKeyPressed(rl.KeySpace) {
		a.state.Paused = !a.state.Paused
		if !a.state.Paused {
			a.rearm(time.Now())
		}
	}

	// Joint selector: 0 = play all, 1..3 single joint.
	switch {
	case rl.IsKeyPressed(rl.KeyZero):
		a.state.Target = 0
	case rl.IsKeyPressed(rl.KeyOne):
		a.state.Target = 1
	case rl.IsKeyPressed(rl.KeyTwo):
		a.state.Target = 2
	case rl.IsKeyPressed(rl.KeyThree):
		a.state.Target = 3
	}

	if rl.IsKeyPressed(rl.KeyEnter) {
		a.state.Enabled = !a.state.Enabled
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		a.state.Mode3D = !a.state.Mode3D
	}

	if rl.IsKeyPressed(rl.KeyR) {
		a.cam.Reset()
	}

	if a.state.Mode3D {
		rl.UpdateCamera(&a.cam3D, rl.CameraOrbital)
		return
	}

	// 2D camera: right-drag pans, wheel zooms.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.cam.Pan(-delta.X, -delta.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.cam.ZoomBy(1 + wheel*0.1)
	}
}

// handleResize propagates window resizes to the 2D camera.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	a.cam.Resize(w, h)
}
