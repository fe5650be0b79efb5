// fktable solves the forward kinematics for one configuration and prints
// the joint table. Useful for checking numbers against the visualizer or
// an external model without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"armviz/kinematics"
)

type jointRow struct {
	Joint    string  `csv:"joint"`
	AbsDeg   float64 `csv:"abs_deg"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	LengthPx float64 `csv:"length_px"`
}

func main() {
	baseDeg := flag.Float64("base", 0, "Base yaw in degrees (3D only)")
	t1 := flag.Float64("t1", 0, "Joint 1 angle in degrees")
	t2 := flag.Float64("t2", 0, "Joint 2 angle in degrees")
	t3 := flag.Float64("t3", 0, "Joint 3 angle in degrees")
	l1 := flag.Float64("l1", 40, "Link 1 length in mm")
	l2 := flag.Float64("l2", 70, "Link 2 length in mm")
	l3 := flag.Float64("l3", 50, "Link 3 length in mm")
	scale := flag.Float64("scale", 2, "View scale in px/mm")
	yaw := flag.Bool("yaw", false, "Also print the base-yawed 3D positions")
	csvOut := flag.Bool("csv", false, "Emit the planar table as CSV")

	flag.Parse()

	angles := kinematics.Angles{
		Base:   kinematics.Radians(kinematics.ClampDegrees(*baseDeg)),
		Theta1: kinematics.Radians(kinematics.ClampDegrees(*t1)),
		Theta2: kinematics.Radians(kinematics.ClampDegrees(*t2)),
		Theta3: kinematics.Radians(kinematics.ClampDegrees(*t3)),
	}
	lengths := kinematics.LinkLengths{L1: *l1, L2: *l2, L3: *l3}

	res := kinematics.Solve(angles, lengths, kinematics.Placement{Scale: *scale})

	if *csvOut {
		rows := make([]jointRow, 0, 4)
		for i := 0; i <= 3; i++ {
			row := jointRow{
				Joint:  fmt.Sprintf("joint%d", i),
				AbsDeg: kinematics.Degrees(res.Absolute(i)),
				X:      res.Joints[i].X,
				Y:      res.Joints[i].Y,
			}
			if i > 0 {
				row.LengthPx = res.LinkLengths[i-1]
			}
			rows = append(rows, row)
		}
		if err := gocsv.Marshal(rows, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "csv:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("links: %.1f / %.1f / %.1f mm at %.2f px/mm\n\n", *l1, *l2, *l3, *scale)
	fmt.Printf("%-8s %10s %12s %12s %10s\n", "joint", "abs (deg)", "x (px)", "y (px)", "link (px)")
	for i := 0; i <= 3; i++ {
		link := "-"
		if i > 0 {
			link = fmt.Sprintf("%.2f", res.LinkLengths[i-1])
		}
		fmt.Printf("%-8s %10.2f %12.3f %12.3f %10s\n",
			fmt.Sprintf("joint%d", i),
			kinematics.Degrees(res.Absolute(i)),
			res.Joints[i].X, res.Joints[i].Y, link)
	}
	fmt.Printf("\nreach: %.3f px\n", res.Reach)

	if *yaw {
		res3 := kinematics.SolveYaw(angles, lengths, *scale)
		fmt.Printf("\nyawed %.1f deg about vertical:\n", kinematics.Degrees(angles.Base))
		fmt.Printf("%-8s %12s %12s %12s\n", "joint", "x", "y", "z")
		for i := 0; i <= 3; i++ {
			p := res3.Joints[i]
			fmt.Printf("joint%-2d  %12.3f %12.3f %12.3f\n", i, p.X, p.Y, p.Z)
		}
		fmt.Printf("\nreach: %.3f px\n", res3.Reach)
	}
}
