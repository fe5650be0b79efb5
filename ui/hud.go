package ui

import (
	"fmt"

	"armviz/animation"
	"armviz/kinematics"
)

// HUD renders the read-only solved-chain readout in the top-left corner.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewHUD creates a HUD anchored at (x, y).
func NewHUD(x, y, width int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the solved result and, when animating, the active frame.
func (h *HUD) Draw(res kinematics.Result, s *State, frame *animation.Frame, activeJoint int) {
	r := h.renderer
	padding := r.Theme.Padding

	height := int32(200)
	if frame != nil {
		height += r.Theme.LineHeight * 4
	}
	r.DrawPanel(h.x, h.y, h.width, height)

	x := h.x + padding
	y := h.y + padding

	y = r.DrawSectionHeader(x, y, "Forward Kinematics")
	for i := 1; i <= 3; i++ {
		label := fmt.Sprintf("abs %d", i)
		value := fmt.Sprintf("%7.2f deg", kinematics.Degrees(res.Absolute(i)))
		y = r.DrawLabelValue(x, y, label, value)
	}
	y += 4

	for i, name := range []string{"base", "joint 1", "joint 2", "joint 3"} {
		p := res.Joints[i]
		y = r.DrawLabelValue(x, y, name, fmt.Sprintf("(%7.1f, %7.1f)", p.X, p.Y))
	}
	y += 4

	y = r.DrawLabelValue(x, y, "reach", fmt.Sprintf("%.1f px", res.Reach))

	if frame != nil {
		y += 4
		y = r.DrawSectionHeader(x, y, "Animation")
		y = r.DrawLabelValue(x, y, "joint", fmt.Sprintf("%d", activeJoint))
		y = r.DrawLabelValue(x, y, "phase", frame.Phase.String())
		y = r.DrawLabelValue(x, y, "progress", fmt.Sprintf("%.0f%%", frame.PhaseProgress*100))
	}

	if s.Paused {
		r.DrawSectionHeader(x, h.y+height-r.Theme.LineHeight-padding, "PAUSED")
	}
}
