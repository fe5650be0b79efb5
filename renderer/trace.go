package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"armviz/camera"
	"armviz/kinematics"
)

var traceColor = rl.Color{R: 240, G: 200, B: 90, A: 255}

// Trace keeps a ring buffer of recent end-effector positions and draws
// them as a fading polyline. Purely visual state, never fed back into
// the engine.
type Trace struct {
	points []kinematics.Vec2
	head   int
	count  int
}

// NewTrace creates a trace retaining up to length points.
// A zero or negative length disables the trace.
func NewTrace(length int) *Trace {
	if length <= 0 {
		return &Trace{}
	}
	return &Trace{points: make([]kinematics.Vec2, length)}
}

// Push appends a point, evicting the oldest when full.
func (t *Trace) Push(p kinematics.Vec2) {
	if len(t.points) == 0 {
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % len(t.points)
	if t.count < len(t.points) {
		t.count++
	}
}

// Clear drops all retained points.
func (t *Trace) Clear() {
	t.head = 0
	t.count = 0
}

// Count returns the number of retained points.
func (t *Trace) Count() int {
	return t.count
}

// Draw renders the trace oldest-to-newest with increasing opacity.
func (t *Trace) Draw(cam *camera.Camera) {
	if t.count < 2 {
		return
	}
	oldest := t.head - t.count
	if oldest < 0 {
		oldest += len(t.points)
	}

	var prev rl.Vector2
	for i := 0; i < t.count; i++ {
		p := t.points[(oldest+i)%len(t.points)]
		cur := toScreen(cam, p)
		if i > 0 {
			c := traceColor
			c.A = uint8(40 + 215*i/t.count)
			rl.DrawLineV(prev, cur, c)
		}
		prev = cur
	}
}
