package pretty

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode is the level of color support of the terminal.
type ColorMode int

const (
	ColorModeNone ColorMode = iota
	ColorModeBasic
	ColorMode256
	ColorModeTrueColor
)

var (
	detectedColorMode ColorMode
	colorModeDetected bool
)

func csi(value string) string {
	return fmt.Sprintf("\x1b[%s", value)
}

// DetectColorMode checks NO_COLOR, COLORTERM and TERM, in that order.
func DetectColorMode() ColorMode {
	if colorModeDetected {
		return detectedColorMode
	}
	colorModeDetected = true

	term := os.Getenv("TERM")
	colorterm := os.Getenv("COLORTERM")
	switch {
	case os.Getenv("NO_COLOR") != "":
		detectedColorMode = ColorModeNone
	case colorterm == "truecolor" || colorterm == "24bit":
		detectedColorMode = ColorModeTrueColor
	case term == "" || term == "dumb":
		detectedColorMode = ColorModeNone
	case strings.Contains(term, "256color"):
		detectedColorMode = ColorMode256
	default:
		detectedColorMode = ColorModeBasic
	}
	return detectedColorMode
}

// StatusColor maps a pipeline stage status to its ANSI color.
func StatusColor(status string) string {
	if Colorless || Disabled {
		return ""
	}

	switch strings.ToLower(status) {
	case "pending":
		return Grey
	case "running":
		return Cyan
	case "complete", "done":
		return Green
	case "failed", "error":
		return Red
	case "skipped":
		return Faint
	default:
		return ""
	}
}
