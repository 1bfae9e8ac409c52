package hwsim

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/motionkit/traject"
	"github.com/motionkit/traject/msg"
)

// Arm is a simulated trajectory-forwarding hardware interface.
//
// It owns the command and feedback buffers for the lifetime of the instance,
// outliving any individual claim, and reacts to new-command and cancel
// notifications the way a driver streaming trajectories to a vendor
// controller would.
type Arm struct {
	cfg Config

	cmd    msg.JointTrajectory
	fb     msg.JointTrajectoryFeedback
	handle *traject.JointHandle
	iface  *traject.JointInterface

	// fbMu establishes the reader/writer discipline over the feedback
	// buffer that the handle itself deliberately does not provide.
	fbMu sync.RWMutex

	execMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	active bool
}

// NewArm builds an arm from the configuration, wiring its handle and
// interface. The returned arm is idle until a trajectory arrives.
func NewArm(cfg Config) (*Arm, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Arm{cfg: cfg}

	h, err := traject.NewHandleWithCallbacks(&a.cmd, &a.fb, a.onNewCommand, a.onCancel)
	if err != nil {
		return nil, err
	}
	a.handle = h

	iface := traject.NewJointInterface()
	iface.SetResources(cfg.Joints)
	if err := iface.RegisterHandle(cfg.Name, h); err != nil {
		return nil, err
	}
	a.iface = iface

	return a, nil
}

// Interface returns the trajectory interface configured over the arm's
// joints. Controllers claim through it and look up the handle by the
// configured name.
func (a *Arm) Interface() *traject.JointInterface {
	return a.iface
}

// Handle returns the arm's trajectory handle.
func (a *Arm) Handle() *traject.JointHandle {
	return a.handle
}

// Config returns the arm's configuration.
func (a *Arm) Config() Config {
	return a.cfg
}

// Feedback returns a snapshot of the latest execution feedback, synchronized
// against the executor's writes.
func (a *Arm) Feedback() msg.JointTrajectoryFeedback {
	a.fbMu.RLock()
	defer a.fbMu.RUnlock()
	return a.handle.Feedback()
}

// Active reports whether a trajectory is currently executing.
func (a *Arm) Active() bool {
	a.execMu.Lock()
	defer a.execMu.Unlock()
	return a.active
}

// Done returns a channel closed when the current trajectory finishes or is
// canceled. When nothing is executing the returned channel is already
// closed.
func (a *Arm) Done() <-chan struct{} {
	a.execMu.Lock()
	defer a.execMu.Unlock()
	if a.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return a.done
}

// Close aborts any in-flight trajectory.
func (a *Arm) Close() {
	a.onCancel()
}

// onNewCommand fires synchronously from Handle.SetCommand on the
// controller's goroutine. A new trajectory supersedes any in-flight one.
func (a *Arm) onNewCommand(t *msg.JointTrajectory) {
	traj := t.Clone()

	a.execMu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done
	a.active = true
	a.execMu.Unlock()

	Logger().Info("new trajectory",
		zap.String("arm", a.cfg.Name),
		zap.Int("points", len(traj.Points)))

	go a.execute(ctx, traj, done)
}

func (a *Arm) onCancel() {
	a.execMu.Lock()
	cancel := a.cancel
	a.execMu.Unlock()

	if cancel != nil {
		Logger().Info("trajectory canceled", zap.String("arm", a.cfg.Name))
		cancel()
	}
}

// execute walks the trajectory waypoints in real time, publishing feedback
// at the configured control rate. The simulated arm tracks the desired
// waypoints perfectly.
func (a *Arm) execute(ctx context.Context, traj msg.JointTrajectory, done chan struct{}) {
	defer func() {
		a.execMu.Lock()
		if a.done == done {
			a.active = false
		}
		a.execMu.Unlock()
		close(done)
	}()

	period := time.Second / time.Duration(a.cfg.ControlRateHz)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	start := time.Now()
	idx := 0
	for idx < len(traj.Points) {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		elapsed := time.Since(start)
		for idx < len(traj.Points) && traj.Points[idx].TimeFromStart <= elapsed {
			a.publish(traj, traj.Points[idx])
			idx++
		}
	}

	Logger().Info("trajectory complete",
		zap.String("arm", a.cfg.Name),
		zap.Duration("elapsed", time.Since(start)))
}

func (a *Arm) publish(traj msg.JointTrajectory, p msg.JointPoint) {
	fb := msg.JointTrajectoryFeedback{
		JointNames: append([]string(nil), traj.JointNames...),
		Desired:    p.Clone(),
		Actual:     p.Clone(),
		Error:      zeroLike(p),
	}

	a.fbMu.Lock()
	a.handle.SetFeedback(fb)
	a.fbMu.Unlock()
}

// zeroLike returns a point with zeroed values of the same shape as p,
// keeping its timestamp.
func zeroLike(p msg.JointPoint) msg.JointPoint {
	out := msg.JointPoint{TimeFromStart: p.TimeFromStart}
	if p.Positions != nil {
		out.Positions = make([]float64, len(p.Positions))
	}
	if p.Velocities != nil {
		out.Velocities = make([]float64, len(p.Velocities))
	}
	if p.Accelerations != nil {
		out.Accelerations = make([]float64, len(p.Accelerations))
	}
	if p.Effort != nil {
		out.Effort = make([]float64, len(p.Effort))
	}
	return out
}
