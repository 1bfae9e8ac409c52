package traject

import (
	"github.com/motionkit/traject/msg"
)

// Concrete handle and interface types for the two supported trajectory
// representations.
type (
	// JointHandle forwards joint-space trajectories.
	JointHandle = Handle[msg.JointTrajectory, msg.JointTrajectoryFeedback]

	// CartesianHandle forwards Cartesian-space trajectories.
	CartesianHandle = Handle[msg.CartesianTrajectory, msg.CartesianTrajectoryFeedback]

	// JointInterface claims resources for joint-space trajectories.
	JointInterface = Interface[msg.JointTrajectory, msg.JointTrajectoryFeedback]

	// CartesianInterface claims resources for Cartesian-space trajectories.
	CartesianInterface = Interface[msg.CartesianTrajectory, msg.CartesianTrajectoryFeedback]
)

// NewJointInterface creates an interface for forwarding joint-space
// trajectories.
func NewJointInterface() *JointInterface {
	return NewInterface[msg.JointTrajectory, msg.JointTrajectoryFeedback]()
}

// NewCartesianInterface creates an interface for forwarding Cartesian-space
// trajectories.
func NewCartesianInterface() *CartesianInterface {
	return NewInterface[msg.CartesianTrajectory, msg.CartesianTrajectoryFeedback]()
}
