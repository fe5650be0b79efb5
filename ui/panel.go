package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlPanel renders the right-side control panel: angle and geometry
// sliders, the animation selector and the view toggles.
type ControlPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlPanel creates a control panel anchored at (x, y).
func NewControlPanel(x, y, width int32) *ControlPanel {
	return &ControlPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the panel and applies user edits to the state.
// Returns the y coordinate below the panel.
func (c *ControlPanel) Draw(s *State) int32 {
	r := c.renderer
	padding := r.Theme.Padding

	panelHeight := int32(560)
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := c.x + padding
	y := c.y + padding
	innerW := c.width - padding*2

	y = r.DrawSectionHeader(x, y, "Joint Angles")
	if s.Mode3D {
		s.ThetaBaseDeg = c.slider(x, &y, innerW, "base yaw", s.ThetaBaseDeg, -180, 180, "%.0f deg")
	}
	s.Theta1Deg = c.slider(x, &y, innerW, "theta 1", s.Theta1Deg, -180, 180, "%.0f deg")
	s.Theta2Deg = c.slider(x, &y, innerW, "theta 2", s.Theta2Deg, -180, 180, "%.0f deg")
	s.Theta3Deg = c.slider(x, &y, innerW, "theta 3", s.Theta3Deg, -180, 180, "%.0f deg")

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 90, Height: 22}, "Reset angles") {
		s.ResetAngles()
	}
	y += 32

	y = r.DrawSectionHeader(x, y, "Geometry")
	s.L1 = c.slider(x, &y, innerW, "L1", s.L1, 1, 150, "%.0f mm")
	s.L2 = c.slider(x, &y, innerW, "L2", s.L2, 1, 150, "%.0f mm")
	s.L3 = c.slider(x, &y, innerW, "L3", s.L3, 1, 150, "%.0f mm")
	s.Scale = c.slider(x, &y, innerW, "scale", s.Scale, 0.5, 5, "%.1f px/mm")

	y = r.DrawSectionHeader(x, y, "Build-up")
	step := c.slider(x, &y, innerW, "links", float32(s.Step), 0, 3, "%.0f")
	s.Step = int(step + 0.5)

	y = r.DrawSectionHeader(x, y, "Animation")
	y = c.selectorButtons(x, y, s)

	label := "Animate"
	if s.Enabled {
		label = "Stop"
	}
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 90, Height: 22}, label) {
		s.Enabled = !s.Enabled
	}
	y += 32

	y = r.DrawSectionHeader(x, y, "View")
	s.Mode3D = gui.CheckBox(rl.Rectangle{X: float32(x), Y: float32(y), Width: 14, Height: 14}, "3D (base yaw)", s.Mode3D)
	y += 22
	s.ShowAxes = gui.CheckBox(rl.Rectangle{X: float32(x), Y: float32(y), Width: 14, Height: 14}, "frame axes", s.ShowAxes)
	y += 22
	s.ShowReach = gui.CheckBox(rl.Rectangle{X: float32(x), Y: float32(y), Width: 14, Height: 14}, "reach circle", s.ShowReach)
	y += 22
	s.ShowTrace = gui.CheckBox(rl.Rectangle{X: float32(x), Y: float32(y), Width: 14, Height: 14}, "effector trace", s.ShowTrace)
	y += 26

	return c.y + panelHeight
}

// slider draws one labeled slider row and returns the edited value.
func (c *ControlPanel) slider(x int32, y *int32, width int32, label string, value, min, max float32, format string) float32 {
	r := c.renderer
	rl.DrawText(label, x, *y, r.Theme.FontSize, r.Theme.LabelColor)
	valueText := fmt.Sprintf(format, value)
	valueWidth := rl.MeasureText(valueText, r.Theme.FontSize)
	rl.DrawText(valueText, x+width-valueWidth, *y, r.Theme.FontSize, r.Theme.ValueColor)
	*y += r.Theme.LineHeight

	next := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(*y), Width: float32(width), Height: 16},
		"", "",
		value, min, max,
	)
	*y += 24
	return next
}

// selectorButtons draws the joint selector row and returns the new y.
func (c *ControlPanel) selectorButtons(x, y int32, s *State) int32 {
	labels := []string{"All", "J1", "J2", "J3"}
	bx := float32(x)
	for target, label := range labels {
		if s.Target == target {
			label = "[" + label + "]"
		}
		if gui.Button(rl.Rectangle{X: bx, Y: float32(y), Width: 44, Height: 22}, label) {
			s.Target = target
		}
		bx += 50
	}
	return y + 30
}
