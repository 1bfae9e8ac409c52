package msg

import (
	"testing"
	"time"
)

func TestJointTrajectory_CloneIsDeep(t *testing.T) {
	src := JointTrajectory{
		JointNames: []string{"j1", "j2"},
		Points: []JointPoint{
			{Positions: []float64{1, 2}, Velocities: []float64{0.1, 0.2}, TimeFromStart: time.Second},
			{Positions: []float64{3, 4}, TimeFromStart: 2 * time.Second},
		},
	}

	dst := src.Clone()
	dst.JointNames[0] = "changed"
	dst.Points[0].Positions[0] = 99
	dst.Points[1].TimeFromStart = 0

	if src.JointNames[0] != "j1" {
		t.Fatal("Clone shares JointNames backing array")
	}
	if src.Points[0].Positions[0] != 1 {
		t.Fatal("Clone shares Positions backing array")
	}
	if src.Points[1].TimeFromStart != 2*time.Second {
		t.Fatal("Clone shares Points backing array")
	}
}

func TestJointTrajectory_CloneNilSlices(t *testing.T) {
	var src JointTrajectory
	dst := src.Clone()

	if dst.JointNames != nil || dst.Points != nil {
		t.Fatalf("Clone of zero value should keep nil slices, got %+v", dst)
	}
}

func TestJointPoint_CloneIsDeep(t *testing.T) {
	src := JointPoint{
		Positions: []float64{1},
		Effort:    []float64{5},
	}
	dst := src.Clone()
	dst.Positions[0] = 2
	dst.Effort[0] = 6

	if src.Positions[0] != 1 || src.Effort[0] != 5 {
		t.Fatal("JointPoint.Clone shares backing arrays")
	}
	if dst.Velocities != nil || dst.Accelerations != nil {
		t.Fatal("Clone should preserve nil slices")
	}
}

func TestJointTrajectoryFeedback_CloneIsDeep(t *testing.T) {
	src := JointTrajectoryFeedback{
		JointNames: []string{"j1"},
		Desired:    JointPoint{Positions: []float64{1}},
		Actual:     JointPoint{Positions: []float64{0.9}},
		Error:      JointPoint{Positions: []float64{0.1}},
	}
	dst := src.Clone()
	dst.Desired.Positions[0] = 7

	if src.Desired.Positions[0] != 1 {
		t.Fatal("Feedback.Clone shares Desired backing array")
	}
}

func TestCartesianTrajectory_CloneIsDeep(t *testing.T) {
	src := CartesianTrajectory{
		Points: []CartesianPoint{
			{Pose: Pose{Position: Vec3{X: 1}, Orientation: Identity()}, TimeFromStart: time.Second},
		},
	}
	dst := src.Clone()
	dst.Points[0].Pose.Position.X = 9

	if src.Points[0].Pose.Position.X != 1 {
		t.Fatal("Clone shares Points backing array")
	}
}

func TestIdentity(t *testing.T) {
	q := Identity()
	if q.W != 1 || q.X != 0 || q.Y != 0 || q.Z != 0 {
		t.Fatalf("Expected identity quaternion, got %+v", q)
	}
}
