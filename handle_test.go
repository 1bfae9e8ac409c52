package traject

import (
	"errors"
	"testing"
	"time"

	trajerr "github.com/motionkit/traject/errors"
	"github.com/motionkit/traject/msg"
)

func constructionError() *trajerr.Error {
	return &trajerr.Error{Phase: trajerr.PhaseConstruct, Kind: trajerr.KindNilBuffer}
}

func TestNewHandle_NilBuffers(t *testing.T) {
	var cmd msg.JointTrajectory
	var fb msg.JointTrajectoryFeedback

	tests := []struct {
		name string
		cmd  *msg.JointTrajectory
		fb   *msg.JointTrajectoryFeedback
	}{
		{"nil command", nil, &fb},
		{"nil feedback", &cmd, nil},
		{"both nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHandle(tt.cmd, tt.fb)
			if !errors.Is(err, constructionError()) {
				t.Fatalf("Expected construction error, got %v", err)
			}

			_, err = NewHandleWithCallbacks(tt.cmd, tt.fb, func(*msg.JointTrajectory) {}, func() {})
			if !errors.Is(err, constructionError()) {
				t.Fatalf("Expected construction error with callbacks, got %v", err)
			}
		})
	}
}

func TestNewHandle_ValidBuffers(t *testing.T) {
	var cmd msg.JointTrajectory
	var fb msg.JointTrajectoryFeedback

	h, err := NewHandle(&cmd, &fb)
	if err != nil {
		t.Fatalf("NewHandle failed: %v", err)
	}
	if h == nil {
		t.Fatal("Expected non-nil handle")
	}
}

func TestHandle_SetCommandRoundTrip(t *testing.T) {
	var cmd msg.JointTrajectory
	var fb msg.JointTrajectoryFeedback

	h, err := NewHandle(&cmd, &fb)
	if err != nil {
		t.Fatal(err)
	}

	goal := msg.JointTrajectory{
		JointNames: []string{"j1", "j2"},
		Points: []msg.JointPoint{
			{Positions: []float64{0.5, 1.5}, TimeFromStart: time.Second},
		},
	}
	h.SetCommand(goal)

	got := h.Command()
	if len(got.JointNames) != 2 || got.JointNames[0] != "j1" {
		t.Fatalf("Command round trip lost joint names: %+v", got)
	}
	if len(got.Points) != 1 || got.Points[0].Positions[1] != 1.5 {
		t.Fatalf("Command round trip lost points: %+v", got)
	}

	// The write must land in the externally owned buffer.
	if len(cmd.Points) != 1 {
		t.Fatal("SetCommand did not write the external buffer")
	}
}

func TestHandle_SetFeedbackRoundTrip(t *testing.T) {
	var cmd msg.JointTrajectory
	var fb msg.JointTrajectoryFeedback

	h, err := NewHandle(&cmd, &fb)
	if err != nil {
		t.Fatal(err)
	}

	progress := msg.JointTrajectoryFeedback{
		JointNames: []string{"j1"},
		Desired:    msg.JointPoint{Positions: []float64{1.0}},
		Actual:     msg.JointPoint{Positions: []float64{0.9}},
		Error:      msg.JointPoint{Positions: []float64{0.1}},
	}
	h.SetFeedback(progress)

	got := h.Feedback()
	if got.Actual.Positions[0] != 0.9 {
		t.Fatalf("Feedback round trip lost data: %+v", got)
	}
	if len(fb.JointNames) != 1 {
		t.Fatal("SetFeedback did not write the external buffer")
	}
}

func TestHandle_NewCommandCallback(t *testing.T) {
	var cmd msg.JointTrajectory
	var fb msg.JointTrajectoryFeedback

	calls := 0
	var seen msg.JointTrajectory
	h, err := NewHandleWithCallbacks(&cmd, &fb,
		func(c *msg.JointTrajectory) {
			calls++
			seen = *c
		}, nil)
	if err != nil {
		t.Fatal(err)
	}

	goal := msg.JointTrajectory{JointNames: []string{"j1"}}
	h.SetCommand(goal)

	if calls != 1 {
		t.Fatalf("Expected callback invoked once, got %d", calls)
	}
	if len(seen.JointNames) != 1 || seen.JointNames[0] != "j1" {
		t.Fatalf("Callback saw wrong value: %+v", seen)
	}
	if got := h.Command(); len(got.JointNames) != 1 {
		t.Fatalf("Command after callback lost data: %+v", got)
	}
}

func TestHandle_NoCallbacksIsQuiet(t *testing.T) {
	var cmd msg.JointTrajectory
	var fb msg.JointTrajectoryFeedback

	h, err := NewHandle(&cmd, &fb)
	if err != nil {
		t.Fatal(err)
	}

	// Neither write nor cancel may panic or invoke anything.
	h.SetCommand(msg.JointTrajectory{JointNames: []string{"j1"}})
	h.CancelCommand()
}

func TestHandle_CancelCallback(t *testing.T) {
	var cmd msg.JointTrajectory
	var fb msg.JointTrajectoryFeedback

	cancels := 0
	h, err := NewHandleWithCallbacks(&cmd, &fb, nil, func() { cancels++ })
	if err != nil {
		t.Fatal(err)
	}

	h.CancelCommand()
	if cancels != 1 {
		t.Fatalf("Expected cancel callback invoked once, got %d", cancels)
	}

	h.CancelCommand()
	if cancels != 2 {
		t.Fatalf("Expected cancel callback invoked twice, got %d", cancels)
	}
}

func TestHandle_FeedbackTriggersNoCallback(t *testing.T) {
	var cmd msg.JointTrajectory
	var fb msg.JointTrajectoryFeedback

	calls := 0
	h, err := NewHandleWithCallbacks(&cmd, &fb,
		func(*msg.JointTrajectory) { calls++ },
		func() { calls++ })
	if err != nil {
		t.Fatal(err)
	}

	h.SetFeedback(msg.JointTrajectoryFeedback{})
	_ = h.Feedback()
	if calls != 0 {
		t.Fatalf("Feedback access invoked callbacks %d times", calls)
	}
}

func TestHandle_NameIsFixedLiteral(t *testing.T) {
	var jc msg.JointTrajectory
	var jf msg.JointTrajectoryFeedback
	var cc msg.CartesianTrajectory
	var cf msg.CartesianTrajectoryFeedback

	jh, err := NewHandle(&jc, &jf)
	if err != nil {
		t.Fatal(err)
	}
	ch, err := NewHandle(&cc, &cf)
	if err != nil {
		t.Fatal(err)
	}

	var jc2 msg.JointTrajectory
	var jf2 msg.JointTrajectoryFeedback
	jh2, err := NewHandle(&jc2, &jf2)
	if err != nil {
		t.Fatal(err)
	}

	// Every handle reports the same literal, regardless of binding.
	for _, name := range []string{jh.Name(), ch.Name(), jh2.Name()} {
		if name != HandleName {
			t.Fatalf("Expected %q, got %q", HandleName, name)
		}
	}
}

func TestHandle_CartesianVariant(t *testing.T) {
	var cmd msg.CartesianTrajectory
	var fb msg.CartesianTrajectoryFeedback

	h, err := NewHandle(&cmd, &fb)
	if err != nil {
		t.Fatal(err)
	}

	goal := msg.CartesianTrajectory{
		Points: []msg.CartesianPoint{
			{Pose: msg.Pose{Position: msg.Vec3{X: 0.3}, Orientation: msg.Identity()}},
		},
	}
	h.SetCommand(goal)

	got := h.Command()
	if len(got.Points) != 1 || got.Points[0].Pose.Position.X != 0.3 {
		t.Fatalf("Cartesian round trip lost data: %+v", got)
	}
}
