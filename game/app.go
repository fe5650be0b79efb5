// Package game wires the visualizer together: UI state, the kinematics
// solver, the animation engine, rendering and telemetry, advanced one
// tick at a time.
package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"armviz/animation"
	"armviz/camera"
	"armviz/config"
	"armviz/kinematics"
	"armviz/renderer"
	"armviz/telemetry"
	"armviz/ui"
)

// DT is the headless tick step in seconds.
const DT = 1.0 / 60.0

// Options configures an App at startup.
type Options struct {
	// RecordDir enables CSV frame recording when non-empty.
	RecordDir string
	// Headless skips all rendering; ticks run on synthetic time.
	Headless bool
	// LogStats emits perf stats via slog once per perf window.
	LogStats bool
}

// depKey captures everything the animated frame depends on. A change in
// any field while the clock runs restarts the animation cycle, so a
// stale pose is never interpolated against fresh inputs.
type depKey struct {
	angles  kinematics.Angles
	lengths kinematics.LinkLengths
	scale   float64
	target  int
	mode3D  bool
}

// App holds the complete visualizer state.
type App struct {
	cfg   *config.Config
	state ui.State

	cam   *camera.Camera
	cam3D rl.Camera3D

	clock *animation.Clock
	panel *ui.ControlPanel
	hud   *ui.HUD
	arm   *renderer.ArmRenderer
	trace *renderer.Trace

	recorder *telemetry.Recorder
	perf     *telemetry.PerfCollector
	logStats bool
	headless bool

	tick  int64
	epoch time.Time

	// Last solved/animated state, shared between step and draw.
	angles  kinematics.Angles
	lengths kinematics.LinkLengths
	scale   float64
	res     kinematics.Result
	res3    kinematics.Result3
	frame   animation.Frame
	active  int
	moving  bool

	lastKey depKey
}

// NewApp builds an App from the global config and the given options.
func NewApp(opts Options) (*App, error) {
	cfg := config.Cfg()

	rec, err := telemetry.NewRecorder(opts.RecordDir)
	if err != nil {
		return nil, err
	}
	if err := rec.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	a := &App{
		cfg:      cfg,
		state:    ui.DefaultState(cfg),
		cam:      camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		clock:    animation.NewClock(cfg.Animation.SegmentSeconds, animation.TotalUnits(animation.PlanarWindows())),
		panel:    ui.NewControlPanel(int32(cfg.Screen.Width)-260, 10, 250),
		hud:      ui.NewHUD(10, 10, 250),
		arm:      renderer.NewArmRenderer(),
		trace:    renderer.NewTrace(cfg.Trace.Length),
		recorder: rec,
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats: opts.LogStats,
		headless: opts.Headless,
		epoch:    time.Now(),
	}

	a.cam3D = rl.Camera3D{
		Position:   rl.Vector3{X: 6, Y: 5, Z: 6},
		Target:     rl.Vector3{Y: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	if opts.Headless {
		// Headless runs exist to record the animation, so it starts armed.
		a.state.Enabled = true
	}

	return a, nil
}

// Tick returns the current tick count.
func (a *App) Tick() int64 {
	return a.tick
}

// Close flushes the recorder.
func (a *App) Close() error {
	return a.recorder.Close()
}

// Update runs one graphical tick: input, then the engine step.
// Drawing happens separately in Draw.
func (a *App) Update() {
	a.perf.StartTick()
	a.perf.StartPhase(telemetry.PhaseInput)
	a.handleInput()

	if a.state.Paused {
		return
	}
	a.step(time.Now())
}

// UpdateHeadless runs one tick on synthetic time, advancing DT seconds
// per call regardless of wall clock.
func (a *App) UpdateHeadless() {
	a.perf.StartTick()
	now := a.epoch.Add(time.Duration(float64(a.tick+1) * DT * float64(time.Second)))
	a.step(now)
	a.perf.EndTick()
	a.maybeLogStats()
}

// step solves the chain, advances the animation and records the frame.
func (a *App) step(now time.Time) {
	a.tick++

	a.perf.StartPhase(telemetry.PhaseSolve)
	a.angles = a.state.Angles()
	a.lengths = a.state.Lengths()
	a.scale = float64(a.state.Scale)

	key := depKey{
		angles:  a.angles,
		lengths: a.lengths,
		scale:   a.scale,
		target:  a.state.Target,
		mode3D:  a.state.Mode3D,
	}
	if key != a.lastKey {
		a.lastKey = key
		a.trace.Clear()
		a.rearm(now)
	}

	sel := a.state.Selector()
	if sel.Enabled != a.clock.Running() {
		if sel.Enabled {
			a.rearm(now)
		} else {
			a.clock.Stop()
		}
	}

	placement := kinematics.Placement{
		Scale: a.scale,
		BaseX: a.cfg.Arm.BaseX,
		BaseY: a.cfg.Arm.BaseY,
	}
	a.res = kinematics.Solve(a.angles, a.lengths, placement)

	a.perf.StartPhase(telemetry.PhaseAnimate)
	a.moving = sel.Enabled
	if a.moving {
		raw := a.clock.Tick(now)
		a.active, raw = animation.Resolve(sel, raw, a.state.Windows())
		pose := animation.PoseFor(a.res, a.angles, a.lengths, a.scale, a.active)
		a.frame = animation.Animate(pose, raw)
	}

	if a.state.Mode3D {
		yawed := a.angles
		if a.moving && a.active == 0 {
			yawed.Base = a.frame.Angle
		}
		a.res3 = kinematics.SolveYaw(yawed, a.lengths, a.scale)
	}

	if a.state.ShowTrace {
		a.trace.Push(a.res.Joint3)
	}

	a.perf.StartPhase(telemetry.PhaseRecord)
	a.record(now)
}

// rearm restarts the animation cycle sized for the current selector.
func (a *App) rearm(now time.Time) {
	if !a.state.Enabled {
		return
	}
	if a.state.Target == animation.PlayAll {
		a.clock.SetUnits(animation.TotalUnits(a.state.Windows()))
	} else {
		a.clock.SetUnits(2)
	}
	a.clock.Start(now)
}

// ghostLength returns the active link's scaled length for the animated
// frame overlay. The base yaw pivot has no link.
func (a *App) ghostLength() float64 {
	switch a.active {
	case 1:
		return a.lengths.L1 * a.scale
	case 2:
		return a.lengths.L2 * a.scale
	case 3:
		return a.lengths.L3 * a.scale
	}
	return 0
}

// record appends the current tick to the CSV output, if recording.
func (a *App) record(now time.Time) {
	rec := telemetry.FrameRecord{
		Tick:      a.tick,
		TimeSec:   now.Sub(a.epoch).Seconds(),
		EffectorX: a.res.Joint3.X,
		EffectorY: a.res.Joint3.Y,
		Reach:     a.res.Reach,
	}
	if a.moving {
		rec.ActiveJoint = a.active
		rec.Phase = a.frame.Phase.String()
		rec.PhaseProgress = a.frame.PhaseProgress
		rec.FrameX = a.frame.Position.X
		rec.FrameY = a.frame.Position.Y
		rec.FrameAngle = a.frame.Angle
	}
	if err := a.recorder.WriteFrame(rec); err != nil {
		slog.Error("failed to record frame", "tick", a.tick, "error", err)
	}
}

func (a *App) maybeLogStats() {
	if !a.logStats {
		return
	}
	window := int64(a.cfg.Telemetry.PerfWindow)
	if window > 0 && a.tick%window == 0 {
		a.perf.Stats().LogStats()
	}
}
