// Package traject implements the resource-claiming and command/feedback
// hand-off layer used by pass-through motion controllers, which forward whole
// trajectories to a robot for interpolation instead of streaming per-cycle
// setpoints.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	traject/             Root package: generic Handle and Interface
//	├── registry/        Per-name exclusive claim registry
//	├── msg/             Joint and Cartesian trajectory value types
//	├── errors/          Structured error types
//	├── hwsim/           Simulated hardware interface for development and tests
//	└── cmd/trajconsole/ CLI and interactive console over hwsim
//
// # Quick Start
//
// A hardware interface owns the buffers, builds a handle over them, and
// exposes an Interface configured with the joints that move together:
//
//	var cmd msg.JointTrajectory
//	var fb msg.JointTrajectoryFeedback
//
//	h, err := traject.NewHandleWithCallbacks(&cmd, &fb, hw.onNewCommand, hw.onCancel)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	iface := traject.NewJointInterface()
//	iface.SetResources([]string{"shoulder_pan", "shoulder_lift", "elbow_flex"})
//	iface.RegisterHandle("arm", h)
//
// A controller claims the whole group through any single member name, then
// pushes trajectories and polls feedback:
//
//	if err := iface.Claim("shoulder_pan"); err != nil {
//	    // some member is owned elsewhere
//	}
//	h.SetCommand(goal)       // hardware callback fires synchronously
//	progress := h.Feedback() // written by the hardware layer
//	h.CancelCommand()        // abort at the vendor controller
//
// # Claim Semantics
//
// Interface.Claim claims every configured resource in order and stops at the
// first failure without rolling back: members claimed earlier in the same
// call stay claimed. This matches the historical pass-through controller
// behavior. ClaimAtomic is the transactional variant that releases the
// partial set before reporting failure. Release always operates per name.
//
// # Thread Safety
//
// Registry operations (claim, release, registration, lookup) are safe for
// concurrent use. Handle buffer accesses are plain reads and writes on
// shared memory with no internal locking: establish a single-writer/
// single-reader discipline or synchronize externally. Claim and release are
// meant for the non-real-time activation path, not the control loop.
package traject
