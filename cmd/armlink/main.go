// armlink streams joint targets to a serial servo chain (Dynamixel
// protocol 1.0), either as a single held pose or replaying the
// visualizer's joint-by-joint animation cycle.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/tarm/serial"

	"armviz/animation"
	"armviz/kinematics"
)

// Servo IDs on the bus: base yaw then the three chain joints.
var servoIDs = [4]byte{1, 2, 3, 4}

const (
	ticksPerRev = 4096
	tickCenter  = 2048
	goalPosAddr = 30
	opWriteData = 3
)

// ticksFor maps a joint angle in radians to a servo position, centered
// and clamped to the servo's travel.
func ticksFor(angle float64) uint16 {
	t := tickCenter + int(math.Round(angle/(2*math.Pi)*ticksPerRev))
	if t < 0 {
		t = 0
	}
	if t > ticksPerRev-1 {
		t = ticksPerRev - 1
	}
	return uint16(t)
}

// writePacket builds a protocol 1.0 WRITE_DATA packet for one servo's
// goal position.
func writePacket(id byte, pos uint16) []byte {
	body := []byte{id, 5, opWriteData, goalPosAddr, byte(pos & 0xFF), byte(pos >> 8)}
	var sum byte
	for _, b := range body {
		sum += b
	}
	p := append([]byte{0xFF, 0xFF}, body...)
	return append(p, ^sum)
}

func main() {
	port := flag.String("port", "/dev/ttyUSB0", "Serial port")
	baud := flag.Int("baud", 57600, "Baud rate")
	rate := flag.Float64("rate", 20, "Stream rate in Hz")
	baseDeg := flag.Float64("base", 0, "Base yaw in degrees")
	t1 := flag.Float64("t1", 0, "Joint 1 angle in degrees")
	t2 := flag.Float64("t2", 0, "Joint 2 angle in degrees")
	t3 := flag.Float64("t3", 0, "Joint 3 angle in degrees")
	animate := flag.Bool("animate", false, "Replay the joint-by-joint animation cycle")
	segment := flag.Float64("segment", 4, "Seconds per joint window when animating")
	duration := flag.Float64("duration", 0, "Stop after N seconds (0 = run until interrupted)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	angles := kinematics.Angles{
		Base:   kinematics.Radians(kinematics.ClampDegrees(*baseDeg)),
		Theta1: kinematics.Radians(kinematics.ClampDegrees(*t1)),
		Theta2: kinematics.Radians(kinematics.ClampDegrees(*t2)),
		Theta3: kinematics.Radians(kinematics.ClampDegrees(*t3)),
	}

	s, err := serial.OpenPort(&serial.Config{Name: *port, Baud: *baud})
	if err != nil {
		slog.Error("failed to open port", "port", *port, "error", err)
		os.Exit(1)
	}
	defer s.Close()

	slog.Info("streaming", "port", *port, "baud", *baud, "rate_hz", *rate, "animate", *animate)

	windows := animation.YawWindows()
	clock := animation.NewClock(*segment, animation.TotalUnits(windows))
	start := time.Now()
	clock.Start(start)

	interval := time.Duration(float64(time.Second) / *rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for now := range ticker.C {
		out := angles
		if *animate {
			raw := clock.Tick(now)
			joint, local := animation.Resolve(animation.Selector{Target: animation.PlayAll, Enabled: true}, raw, windows)
			out = streamAngles(angles, joint, local)
		}

		if err := send(s, out); err != nil {
			slog.Error("write failed", "error", err)
			os.Exit(1)
		}

		if *duration > 0 && now.Sub(start).Seconds() >= *duration {
			return
		}
		if !*animate && *duration == 0 {
			// A static pose needs only one frame.
			return
		}
	}
}

// streamAngles freezes the play-all cycle at one instant: joints whose
// window has passed hold their target, the active joint interpolates
// through its rotation phase, later joints stay at zero.
func streamAngles(target kinematics.Angles, active int, local float64) kinematics.Angles {
	factor := local
	if factor > 1 {
		factor = 1
	}

	per := [4]float64{target.Base, target.Theta1, target.Theta2, target.Theta3}
	var out [4]float64
	for j := 0; j < 4; j++ {
		switch {
		case j < active:
			out[j] = per[j]
		case j == active:
			out[j] = per[j] * factor
		}
	}
	return kinematics.Angles{Base: out[0], Theta1: out[1], Theta2: out[2], Theta3: out[3]}
}

// send writes one goal-position packet per servo.
func send(s *serial.Port, a kinematics.Angles) error {
	per := [4]float64{a.Base, a.Theta1, a.Theta2, a.Theta3}
	for i, id := range servoIDs {
		if _, err := s.Write(writePacket(id, ticksFor(per[i]))); err != nil {
			return err
		}
	}
	return nil
}
