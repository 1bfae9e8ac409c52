package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/motionkit/traject/hwsim"
	"github.com/motionkit/traject/msg"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to arm YAML config (default: built-in six-joint arm)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		points      = flag.Int("points", 50, "Waypoints in the generated trajectory")
		duration    = flag.Duration("duration", 2*time.Second, "Duration of the generated trajectory")
		verbose     = flag.Bool("v", false, "Log hardware simulation events")
	)
	flag.Parse()

	if *verbose {
		if lg, err := zap.NewDevelopment(); err == nil {
			hwsim.SetLogger(lg)
		}
	}

	cfg := hwsim.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = hwsim.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *points, *duration); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg hwsim.Config, points int, duration time.Duration) error {
	arm, err := hwsim.NewArm(cfg)
	if err != nil {
		return err
	}
	defer arm.Close()
	iface := arm.Interface()

	fmt.Printf("Arm: %s\n", cfg.Name)
	fmt.Printf("Joints: %d\n", len(cfg.Joints))
	fmt.Printf("Control rate: %d Hz\n", cfg.ControlRateHz)

	// Claiming any member grants the whole configured group.
	if err := iface.Claim(cfg.Joints[0]); err != nil {
		return fmt.Errorf("claim: %w", err)
	}
	fmt.Printf("\nClaimed: %v\n", iface.ClaimedNames())

	h, err := iface.Handle(cfg.Name)
	if err != nil {
		return fmt.Errorf("handle: %w", err)
	}

	traj := sweepTrajectory(cfg.Joints, points, duration)
	fmt.Printf("Sending %d-point sweep over %s...\n", len(traj.Points), duration)
	h.SetCommand(traj)

	select {
	case <-arm.Done():
	case <-time.After(duration + 5*time.Second):
		return errors.New("trajectory did not finish in time")
	}

	fb := arm.Feedback()
	fmt.Printf("\nFinal waypoint reached at t=%s\n", fb.Desired.TimeFromStart)
	for i, name := range fb.JointNames {
		if i < len(fb.Desired.Positions) {
			fmt.Printf("  %-14s %8.4f rad\n", name, fb.Desired.Positions[i])
		}
	}

	// One claim call grants the group; release is per name.
	for _, name := range cfg.Joints {
		if err := iface.Release(name); err != nil {
			return fmt.Errorf("release %s: %w", name, err)
		}
	}
	fmt.Printf("\nReleased all %d resources\n", len(cfg.Joints))
	return nil
}

// sweepTrajectory generates a phase-shifted sinusoidal sweep across all
// joints.
func sweepTrajectory(joints []string, points int, duration time.Duration) msg.JointTrajectory {
	if points < 2 {
		points = 2
	}
	traj := msg.JointTrajectory{JointNames: append([]string(nil), joints...)}
	for i := 1; i <= points; i++ {
		frac := float64(i) / float64(points)
		p := msg.JointPoint{
			Positions:     make([]float64, len(joints)),
			Velocities:    make([]float64, len(joints)),
			TimeFromStart: time.Duration(frac * float64(duration)),
		}
		for j := range joints {
			phase := frac*2*math.Pi + float64(j)*math.Pi/6
			p.Positions[j] = 0.5 * math.Sin(phase)
			p.Velocities[j] = math.Pi * math.Cos(phase) / duration.Seconds()
		}
		traj.Points = append(traj.Points, p)
	}
	return traj
}
