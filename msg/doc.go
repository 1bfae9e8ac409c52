// Package msg defines the trajectory goal and feedback value types forwarded
// through trajectory handles.
//
// Two interchangeable families exist: joint-space (JointTrajectory,
// JointTrajectoryFeedback) and Cartesian-space (CartesianTrajectory,
// CartesianTrajectoryFeedback). The traject core is generic over these and
// never inspects their fields; only copy and assignment are required.
//
// Go assignment copies the structs but shares slice backing arrays. Embedders
// that need an isolated copy use the Clone methods.
package msg
