package pretty

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const maxSummaryWidth = 100

type SummaryRow struct {
	Label string
	Value string
}

type StageRow struct {
	Name    string
	Status  string
	Elapsed string
}

func summaryWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || width > maxSummaryWidth {
		return maxSummaryWidth
	}
	return width
}

// Summary renders a run summary. Non-interactive output gets plain
// "label: value" lines so that logs stay grep friendly.
func Summary(title string, rows []SummaryRow, stages []StageRow) string {
	if !Interactive || Colorless || Disabled {
		return plainSummary(title, rows, stages)
	}
	styles := NewStyles(DefaultTheme())
	lines := []string{styles.Title.Render(title), ""}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, styles.Label.Render(row.Label), styles.Text.Render(row.Value)))
	}
	if len(stages) > 0 {
		lines = append(lines, "")
	}
	for _, stage := range stages {
		status := styles.StepStyle(stage.Status).Render(fmt.Sprintf("%-9s", stage.Status))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, styles.Label.Render(stage.Name), status, styles.Text.Render(" "+stage.Elapsed)))
	}
	box := styles.Box.MaxWidth(summaryWidth())
	return box.Render(strings.Join(lines, "\n")) + "\n"
}

func plainSummary(title string, rows []SummaryRow, stages []StageRow) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s\n", title)
	for _, row := range rows {
		fmt.Fprintf(&out, "  %s: %s\n", row.Label, row.Value)
	}
	for _, stage := range stages {
		status := stage.Status
		if color := StatusColor(status); color != "" {
			status = color + status + Reset
		}
		fmt.Fprintf(&out, "  stage %s: %s %s\n", stage.Name, status, stage.Elapsed)
	}
	return out.String()
}
