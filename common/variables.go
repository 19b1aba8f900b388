package common

import (
	"os"
)

const (
	Product = `rpms2sbom`
)

var (
	Version        = `v0.3.0`
	LogLinenumbers bool

	silenceFlag bool
	debugFlag   bool
	traceFlag   bool
)

func init() {
	if len(os.Getenv("RPMS2SBOM_TRACE")) > 0 {
		traceFlag = true
	}
}

func Silent() bool {
	return silenceFlag
}

func DebugFlag() bool {
	return debugFlag
}

func TraceFlag() bool {
	return traceFlag
}

// DefineVerbosity sets logging levels once, at process start.
// Trace implies debug; silence wins over both.
func DefineVerbosity(silent, debug, trace bool) {
	silenceFlag = silent
	debugFlag = (debug || trace) && !silent
	traceFlag = trace && !silent
}
