package traject

import (
	trajerr "github.com/motionkit/traject/errors"
)

// HandleName is the fixed identifier reported by Handle.Name. Every handle
// returns the same literal regardless of which buffers or resources it is
// bound to.
const HandleName = "trajectory_handle"

// Handle provides read/write access to one command buffer and one feedback
// buffer for a trajectory-forwarding hardware interface.
//
// The handle is generic over the trajectory representation: C is the command
// (goal) type and F the feedback type. Both are treated as opaque values;
// the handle only copies and assigns them.
//
// A handle never owns its buffers. It holds references into memory owned by
// the hardware interface instance, which must outlive every handle and every
// claim referencing it. Buffer accesses perform no locking; concurrent
// correctness between writer and reader is the embedder's responsibility.
type Handle[C, F any] struct {
	cmd          *C
	feedback     *F
	onNewCommand func(*C)
	onCancel     func()
}

// NewHandle binds a command and a feedback buffer. Both references must be
// non-nil or construction fails with (construct, nil_buffer).
func NewHandle[C, F any](cmd *C, feedback *F) (*Handle[C, F], error) {
	return NewHandleWithCallbacks(cmd, feedback, nil, nil)
}

// NewHandleWithCallbacks additionally wires notification callbacks for
// precise start and cancel events in the hardware layer. Implementers of
// hardware interfaces can use this mechanism to begin streaming a trajectory
// to the vendor controller the moment it arrives, and to abort it on cancel.
//
// onNewCommand is invoked synchronously after every SetCommand with a
// reference to the just-written buffer contents. onCancel is invoked by
// CancelCommand. Either callback may be nil.
func NewHandleWithCallbacks[C, F any](cmd *C, feedback *F, onNewCommand func(*C), onCancel func()) (*Handle[C, F], error) {
	if cmd == nil {
		return nil, trajerr.NilBuffer("command")
	}
	if feedback == nil {
		return nil, trajerr.NilBuffer("feedback")
	}
	return &Handle[C, F]{
		cmd:          cmd,
		feedback:     feedback,
		onNewCommand: onNewCommand,
		onCancel:     onCancel,
	}, nil
}

// SetCommand writes a new trajectory into the command buffer and, if a
// new-command callback was supplied at construction, invokes it with the
// written value. This is the controller's push path.
func (h *Handle[C, F]) SetCommand(command C) {
	*h.cmd = command

	if h.onNewCommand != nil {
		h.onNewCommand(h.cmd)
	}
}

// Command returns a copy of the command buffer contents. No side effects.
func (h *Handle[C, F]) Command() C {
	return *h.cmd
}

// CancelCommand invokes the cancel callback if one was supplied, otherwise
// does nothing. It is a synchronous notification, not a preemption mechanism.
func (h *Handle[C, F]) CancelCommand() {
	if h.onCancel != nil {
		h.onCancel()
	}
}

// SetFeedback writes execution feedback into the feedback buffer. The
// hardware layer uses this to publish trajectory progress; no callback fires.
func (h *Handle[C, F]) SetFeedback(feedback F) {
	*h.feedback = feedback
}

// Feedback returns a copy of the feedback buffer contents.
func (h *Handle[C, F]) Feedback() F {
	return *h.feedback
}

// Name returns HandleName. The literal is shared by every handle, so it
// cannot be used to disambiguate handles within one registry.
func (h *Handle[C, F]) Name() string {
	return HandleName
}
