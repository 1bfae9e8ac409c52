package msg

import "time"

// JointPoint is a single joint-space waypoint. Slices are indexed in the
// order of the owning trajectory's JointNames; empty slices mean the field
// is unspecified.
type JointPoint struct {
	Positions     []float64
	Velocities    []float64
	Accelerations []float64
	Effort        []float64
	TimeFromStart time.Duration
}

// Clone returns a deep copy of the point.
func (p JointPoint) Clone() JointPoint {
	return JointPoint{
		Positions:     cloneFloats(p.Positions),
		Velocities:    cloneFloats(p.Velocities),
		Accelerations: cloneFloats(p.Accelerations),
		Effort:        cloneFloats(p.Effort),
		TimeFromStart: p.TimeFromStart,
	}
}

// JointTrajectory is a full joint-space trajectory goal. Points are ordered
// by strictly increasing TimeFromStart.
type JointTrajectory struct {
	JointNames []string
	Points     []JointPoint
}

// Clone returns a deep copy of the trajectory.
func (t JointTrajectory) Clone() JointTrajectory {
	out := JointTrajectory{
		JointNames: append([]string(nil), t.JointNames...),
	}
	if t.Points != nil {
		out.Points = make([]JointPoint, len(t.Points))
		for i, p := range t.Points {
			out.Points[i] = p.Clone()
		}
	}
	return out
}

// JointTrajectoryFeedback reports execution progress of a joint-space
// trajectory: the currently desired waypoint, the measured state, and their
// difference.
type JointTrajectoryFeedback struct {
	JointNames []string
	Desired    JointPoint
	Actual     JointPoint
	Error      JointPoint
}

// Clone returns a deep copy of the feedback.
func (f JointTrajectoryFeedback) Clone() JointTrajectoryFeedback {
	return JointTrajectoryFeedback{
		JointNames: append([]string(nil), f.JointNames...),
		Desired:    f.Desired.Clone(),
		Actual:     f.Actual.Clone(),
		Error:      f.Error.Clone(),
	}
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	return append([]float64(nil), s...)
}
