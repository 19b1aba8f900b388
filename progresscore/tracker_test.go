package progresscore

import (
	"testing"
	"time"
)

func TestNewProgressTracker(t *testing.T) {
	steps := []string{"discover", "extract", "validate", "write"}
	tracker := NewProgressTracker(steps)

	if len(tracker.steps) != 4 {
		t.Fatalf("Expected 4 steps, got %d", len(tracker.steps))
	}
	for i, step := range tracker.steps {
		if step.Status != StepPending {
			t.Errorf("Step %d should be pending, got %v", i, step.Status.Name())
		}
		if step.Name != steps[i] {
			t.Errorf("Step %d name mismatch: expected %s, got %s", i, steps[i], step.Name)
		}
	}
}

func TestProgressTrackerForwardOnly(t *testing.T) {
	tracker := NewProgressTracker([]string{"discover", "extract"})

	if !tracker.StartStep(0, "walking") {
		t.Error("Failed to start step 0")
	}
	if tracker.SetStep(0, StepPending, "") {
		t.Error("Should not be able to set running step back to pending")
	}
	if !tracker.CompleteStep(0, "2 packages") {
		t.Error("Failed to complete step 0")
	}
	if tracker.SetStep(0, StepRunning, "") {
		t.Error("Should not be able to set completed step back to running")
	}
	if tracker.CompleteStep(1, "") {
		t.Error("Pending step cannot complete without running")
	}
	if tracker.SetStep(7, StepRunning, "") {
		t.Error("Out of range index must be rejected")
	}
	if got := tracker.Steps()[0].Message; got != "2 packages" {
		t.Errorf("Expected message to be kept, got %q", got)
	}
}

func TestProgressTrackerCallbackAndFailure(t *testing.T) {
	tracker := NewProgressTracker([]string{"validate", "write"})
	seen := []string{}
	tracker.SetOnUpdate(func(step TrackedStep) {
		seen = append(seen, step.Name+":"+step.Status.Name())
	})

	tracker.StartStep(0, "")
	tracker.FailStep(0, "document invalid")
	tracker.SkipStep(1, "validation failed")

	if !tracker.HasFailed() {
		t.Error("Tracker should have failed after failing a step")
	}
	if !tracker.IsComplete() {
		t.Error("Tracker should be complete when all steps are terminal")
	}
	expected := []string{"validate:running", "validate:failed", "write:skipped"}
	if len(seen) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, seen)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("Callback %d: expected %s, got %s", i, expected[i], seen[i])
		}
	}
}

func TestTrackedStepDuration(t *testing.T) {
	step := TrackedStep{Name: "extract", Status: StepPending}
	if step.Duration() != 0 {
		t.Error("Duration should be 0 for step with no start time")
	}

	step.StartTime = time.Now().Add(-time.Second)
	if step.Duration() < time.Second {
		t.Error("Duration should be at least a second for running step")
	}

	step.EndTime = step.StartTime.Add(2 * time.Second)
	if step.Duration() != 2*time.Second {
		t.Errorf("Expected fixed duration of 2s, got %v", step.Duration())
	}
}

func TestStepStatusNames(t *testing.T) {
	Iconic = false
	defer func() { Iconic = true }()

	if StepComplete.Name() != "complete" || StepComplete.String() != "+" {
		t.Errorf("unexpected complete rendering: %s %s", StepComplete.Name(), StepComplete.String())
	}
	if StepSkipped.Name() != "skipped" || StepFailed.String() != "x" {
		t.Error("unexpected skipped/failed rendering")
	}
}
