package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"armviz/camera"
)

var (
	gridColor = rl.Color{R: 38, G: 42, B: 48, A: 255}
	axisColor = rl.Color{R: 60, G: 66, B: 74, A: 255}
)

// DrawGrid draws a view-space grid with the given spacing in pixels,
// plus emphasized lines through the origin. Only lines inside the
// viewport are drawn.
func DrawGrid(cam *camera.Camera, spacing float32) {
	if spacing <= 0 {
		return
	}

	minX, minY := cam.ScreenToWorld(0, 0)
	maxX, maxY := cam.ScreenToWorld(cam.ViewportW, cam.ViewportH)

	startX := float32(int(minX/spacing)-1) * spacing
	for x := startX; x <= maxX; x += spacing {
		sx, _ := cam.WorldToScreen(x, 0)
		color := gridColor
		if x == 0 {
			color = axisColor
		}
		rl.DrawLine(int32(sx), 0, int32(sx), int32(cam.ViewportH), color)
	}

	startY := float32(int(minY/spacing)-1) * spacing
	for y := startY; y <= maxY; y += spacing {
		_, sy := cam.WorldToScreen(0, y)
		color := gridColor
		if y == 0 {
			color = axisColor
		}
		rl.DrawLine(0, int32(sy), int32(cam.ViewportW), int32(sy), color)
	}
}
