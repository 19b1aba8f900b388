package progresscore

// StepStatus is the state of one tracked pipeline stage.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepFailed
	StepSkipped
)

// Iconic selects unicode markers over ASCII ones.
var Iconic = true

// String returns the visual marker of a status.
func (s StepStatus) String() string {
	if Iconic {
		switch s {
		case StepRunning:
			return "⠋"
		case StepComplete:
			return "✓"
		case StepFailed:
			return "✗"
		case StepSkipped:
			return "⊘"
		default:
			return "○"
		}
	}

	switch s {
	case StepRunning:
		return "-"
	case StepComplete:
		return "+"
	case StepFailed:
		return "x"
	case StepSkipped:
		return "/"
	default:
		return "o"
	}
}

// Name returns the lowercase word for a status.
func (s StepStatus) Name() string {
	switch s {
	case StepRunning:
		return "running"
	case StepComplete:
		return "complete"
	case StepFailed:
		return "failed"
	case StepSkipped:
		return "skipped"
	default:
		return "pending"
	}
}
