package pretty

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette used in run summaries.
type Theme struct {
	Primary lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor
	TextDim   lipgloss.AdaptiveColor

	Border lipgloss.AdaptiveColor
}

func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		Accent:  lipgloss.AdaptiveColor{Dark: "#89ddff", Light: "#007197"},

		Success: lipgloss.AdaptiveColor{Dark: "#c3e88d", Light: "#587539"},
		Warning: lipgloss.AdaptiveColor{Dark: "#ffcb6b", Light: "#8c6c3e"},
		Error:   lipgloss.AdaptiveColor{Dark: "#ff5370", Light: "#f52a65"},

		Text:      lipgloss.AdaptiveColor{Dark: "#bfc7d5", Light: "#4c505e"},
		TextMuted: lipgloss.AdaptiveColor{Dark: "#697098", Light: "#8990a3"},
		TextDim:   lipgloss.AdaptiveColor{Dark: "#4e5579", Light: "#b4b5b9"},

		Border: lipgloss.AdaptiveColor{Dark: "#5c6370", Light: "#c4c8da"},
	}
}

// Styles holds pre-computed styles for a Theme.
type Styles struct {
	Theme Theme

	Box   lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Text  lipgloss.Style

	StepPending lipgloss.Style
	StepRunning lipgloss.Style
	StepDone    lipgloss.Style
	StepFail    lipgloss.Style
	StepSkipped lipgloss.Style
}

func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	s.Label = lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(14)

	s.Text = lipgloss.NewStyle().
		Foreground(t.Text)

	s.StepPending = lipgloss.NewStyle().Foreground(t.TextDim)
	s.StepRunning = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	s.StepDone = lipgloss.NewStyle().Foreground(t.Success)
	s.StepFail = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	s.StepSkipped = lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)

	return s
}

// StepStyle picks the style for a stage status name.
func (s Styles) StepStyle(status string) lipgloss.Style {
	switch status {
	case "running":
		return s.StepRunning
	case "complete":
		return s.StepDone
	case "failed":
		return s.StepFail
	case "skipped":
		return s.StepSkipped
	default:
		return s.StepPending
	}
}
