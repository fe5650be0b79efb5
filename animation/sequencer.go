package animation

// PlayAll is the Selector target that sequences every joint in turn.
const PlayAll = 0

// Selector is the animation control surface: which joint to animate
// (PlayAll or 1..3) and whether animation is enabled at all. It is owned
// by the UI layer and passed in by value.
type Selector struct {
	Target  int
	Enabled bool
}

// Window is one joint's slot on the play-all timeline. Joint 0 is the
// base yaw; 1..3 are the chain joints.
type Window struct {
	Joint int
	Size  float64
}

// PlanarWindows returns the play-all timeline for the 2D view: the three
// chain joints in order, two progress units each.
func PlanarWindows() []Window {
	return []Window{
		{Joint: 1, Size: unitsPerWindow},
		{Joint: 2, Size: unitsPerWindow},
		{Joint: 3, Size: unitsPerWindow},
	}
}

// YawWindows returns the play-all timeline for the 3D view: the base yaw
// window followed by the three chain joints. Same algorithm as the planar
// timeline, parameterized differently.
func YawWindows() []Window {
	return append([]Window{{Joint: 0, Size: unitsPerWindow}}, PlanarWindows()...)
}

// TotalUnits returns the progress span covered by a window list.
func TotalUnits(windows []Window) float64 {
	var total float64
	for _, w := range windows {
		total += w.Size
	}
	return total
}

// Resolve maps a raw clock progress to the active joint and its local
// progress in [0, 2].
//
// Single-joint mode passes the raw value through (clamped to the joint's
// own window). Play-all mode partitions the raw value into contiguous
// windows. A value exactly on a boundary belongs to the LATER window, so
// the frame drawn at a segment transition is the incoming joint's; the
// final window additionally accepts its upper bound so the wraparound
// instant never resolves to an undefined joint.
func Resolve(sel Selector, raw float64, windows []Window) (activeJoint int, local float64) {
	if sel.Target != PlayAll {
		return sel.Target, clampLocal(raw)
	}
	if len(windows) == 0 {
		return PlayAll, 0
	}

	start := 0.0
	for i, w := range windows {
		end := start + w.Size
		last := i == len(windows)-1
		if raw < end || (last && raw == end) {
			if raw < start {
				return w.Joint, 0
			}
			return w.Joint, raw - start
		}
		start = end
	}

	// Beyond the final bound: clamp into the last window.
	last := windows[len(windows)-1]
	return last.Joint, last.Size
}

func clampLocal(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > unitsPerWindow {
		return unitsPerWindow
	}
	return v
}
