package msg

import "time"

// Vec3 is a Cartesian vector.
type Vec3 struct {
	X, Y, Z float64
}

// Quaternion is an orientation in quaternion form.
type Quaternion struct {
	X, Y, Z, W float64
}

// Identity returns the identity orientation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// Pose is a Cartesian position and orientation.
type Pose struct {
	Position    Vec3
	Orientation Quaternion
}

// Twist is a Cartesian velocity: linear and angular components.
type Twist struct {
	Linear  Vec3
	Angular Vec3
}

// CartesianPoint is a single Cartesian-space waypoint.
type CartesianPoint struct {
	Pose          Pose
	Twist         Twist
	Acceleration  Twist
	TimeFromStart time.Duration
}

// CartesianTrajectory is a full Cartesian-space trajectory goal. Points are
// ordered by strictly increasing TimeFromStart.
type CartesianTrajectory struct {
	Points []CartesianPoint
}

// Clone returns a deep copy of the trajectory.
func (t CartesianTrajectory) Clone() CartesianTrajectory {
	var out CartesianTrajectory
	if t.Points != nil {
		out.Points = append([]CartesianPoint(nil), t.Points...)
	}
	return out
}

// CartesianTrajectoryFeedback reports execution progress of a Cartesian
// trajectory.
type CartesianTrajectoryFeedback struct {
	Desired CartesianPoint
	Actual  CartesianPoint
	Error   CartesianPoint
}
