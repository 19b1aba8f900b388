package pretty

import (
	"os"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Iconic      bool
	Disabled    bool
	Interactive bool
	Grey        string
	Red         string
	Green       string
	Yellow      string
	Cyan        string
	Reset       string
	Bold        string
	Faint       string
)

func Setup() {
	stdout := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	if DetectColorMode() == ColorModeNone {
		Colorless = true
	}

	Interactive = stdout && stderr
	Iconic = Interactive && !Colorless

	common.Trace("Interactive mode enabled: %v; colors enabled: %v", Interactive, !Colorless && !Disabled)
	if Interactive && !Colorless && !Disabled {
		Grey = csi("90m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
		common.WarningColor = Yellow
		common.ResetColor = Reset
	}
}
