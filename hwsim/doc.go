// Package hwsim provides a simulated trajectory-forwarding hardware
// interface for development and testing.
//
// An Arm owns one joint-space command buffer and one feedback buffer,
// exposes them through a traject.JointHandle, and configures a
// traject.JointInterface over its joint names. When a controller pushes a
// trajectory through the handle, the arm's executor walks the waypoints in
// real time at the configured control rate, publishing feedback the way a
// vendor controller interpolating a forwarded trajectory would. Cancel
// notifications abort the executor.
//
// Logging uses zap and is silent by default; inject a logger with SetLogger.
package hwsim
