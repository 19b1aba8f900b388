// Package progresscore tracks the stages of an inventory run so that
// the command layer can report what happened and how long it took.
package progresscore

import (
	"sync"
	"time"
)

// ProgressTracker ensures stages only move forward, never backwards.
type ProgressTracker struct {
	steps     []TrackedStep
	startTime time.Time
	mu        sync.RWMutex
	onUpdate  func(TrackedStep)
}

// TrackedStep is a single stage with timing info.
type TrackedStep struct {
	Name      string
	Status    StepStatus
	Message   string
	StartTime time.Time
	EndTime   time.Time
}

// Duration returns how long this step took (or has been running).
func (s TrackedStep) Duration() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

func NewProgressTracker(stepNames []string) *ProgressTracker {
	steps := make([]TrackedStep, len(stepNames))
	for i, name := range stepNames {
		steps[i] = TrackedStep{
			Name:   name,
			Status: StepPending,
		}
	}

	return &ProgressTracker{
		steps:     steps,
		startTime: time.Now(),
	}
}

// SetOnUpdate sets a callback invoked after every accepted transition.
func (pt *ProgressTracker) SetOnUpdate(fn func(TrackedStep)) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.onUpdate = fn
}

// Pending -> Running, Skipped; Running -> Complete, Failed; rest are terminal.
func canTransition(from, to StepStatus) bool {
	switch from {
	case StepPending:
		return to == StepRunning || to == StepSkipped
	case StepRunning:
		return to == StepComplete || to == StepFailed
	default:
		return false
	}
}

// SetStep updates a step's status with forward-only enforcement.
func (pt *ProgressTracker) SetStep(index int, status StepStatus, message string) bool {
	pt.mu.Lock()

	if index < 0 || index >= len(pt.steps) {
		pt.mu.Unlock()
		return false
	}
	if !canTransition(pt.steps[index].Status, status) {
		pt.mu.Unlock()
		return false
	}

	pt.steps[index].Status = status
	if len(message) > 0 {
		pt.steps[index].Message = message
	}

	now := time.Now()
	if status == StepRunning && pt.steps[index].StartTime.IsZero() {
		pt.steps[index].StartTime = now
	}
	if status == StepComplete || status == StepFailed || status == StepSkipped {
		pt.steps[index].EndTime = now
	}

	step, callback := pt.steps[index], pt.onUpdate
	pt.mu.Unlock()

	if callback != nil {
		callback(step)
	}
	return true
}

func (pt *ProgressTracker) StartStep(index int, message string) bool {
	return pt.SetStep(index, StepRunning, message)
}

func (pt *ProgressTracker) CompleteStep(index int, message string) bool {
	return pt.SetStep(index, StepComplete, message)
}

func (pt *ProgressTracker) FailStep(index int, reason string) bool {
	return pt.SetStep(index, StepFailed, reason)
}

func (pt *ProgressTracker) SkipStep(index int, reason string) bool {
	return pt.SetStep(index, StepSkipped, reason)
}

// Steps returns a copy of all steps.
func (pt *ProgressTracker) Steps() []TrackedStep {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	result := make([]TrackedStep, len(pt.steps))
	copy(result, pt.steps)
	return result
}

// Elapsed is the time since the tracker was created.
func (pt *ProgressTracker) Elapsed() time.Duration {
	return time.Since(pt.startTime)
}

// IsComplete returns true if all steps are in terminal states.
func (pt *ProgressTracker) IsComplete() bool {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	for _, step := range pt.steps {
		if step.Status == StepPending || step.Status == StepRunning {
			return false
		}
	}
	return true
}

func (pt *ProgressTracker) HasFailed() bool {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	for _, step := range pt.steps {
		if step.Status == StepFailed {
			return true
		}
	}
	return false
}
