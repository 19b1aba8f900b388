package common

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

var (
	logsource  = make(logwriters)
	logbarrier = sync.WaitGroup{}

	sinkMu sync.RWMutex
	errout io.Writer = os.Stderr
	stdout io.Writer = os.Stdout

	// WarningColor and ResetColor are filled by pretty.Setup when colors
	// are enabled.
	WarningColor string
	ResetColor   string
)

type logwriter func() (io.Writer, string)
type logwriters chan logwriter

type syncer interface {
	Sync() error
}

func loggerLoop(writers logwriters) {
	var stamp string
	line := uint64(0)
	for {
		line += 1
		todo, ok := <-writers
		if !ok {
			continue
		}
		out, message := todo()

		if TraceFlag() {
			stamp = time.Now().Format("02.150405.000 ")
		} else if LogLinenumbers {
			stamp = fmt.Sprintf("%3d ", line)
		} else {
			stamp = ""
		}
		fmt.Fprintf(out, "%s%s\n", stamp, message)
		if flusher, ok := out.(syncer); ok {
			flusher.Sync()
		}
		logbarrier.Done()
	}
}

func init() {
	go loggerLoop(logsource)
}

// SetLogOutput redirects log and stdout streams; nil keeps the current one.
// It returns a function restoring the previous writers.
func SetLogOutput(logs, out io.Writer) func() {
	WaitLogs()
	sinkMu.Lock()
	defer sinkMu.Unlock()
	oldLogs, oldOut := errout, stdout
	if logs != nil {
		errout = logs
	}
	if out != nil {
		stdout = out
	}
	return func() {
		WaitLogs()
		sinkMu.Lock()
		defer sinkMu.Unlock()
		errout, stdout = oldLogs, oldOut
	}
}

func logSink() io.Writer {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return errout
}

func printout(out io.Writer, message string) {
	logbarrier.Add(1)
	logsource <- func() (io.Writer, string) {
		return out, message
	}
}

func Uncritical(context string, err error) {
	if err != nil {
		Log("Warning [%s; not critical]: %v", context, err)
	}
}

// Warning is always printed, even in silent mode.
func Warning(format string, details ...interface{}) {
	message := fmt.Sprintf(format, details...)
	printout(logSink(), fmt.Sprintf("%sWARNING: %s%s", WarningColor, message, ResetColor))
}

func Log(format string, details ...interface{}) {
	if !Silent() {
		prefix := ""
		if DebugFlag() || TraceFlag() {
			prefix = "[N] "
		}
		printout(logSink(), fmt.Sprintf(prefix+format, details...))
	}
}

func Debug(format string, details ...interface{}) error {
	if DebugFlag() {
		printout(logSink(), fmt.Sprintf("[D] "+format, details...))
	}
	return nil
}

func Trace(format string, details ...interface{}) error {
	if TraceFlag() {
		printout(logSink(), fmt.Sprintf("[T] "+format, details...))
	}
	return nil
}

func Stdout(format string, details ...interface{}) {
	message := format
	if len(details) > 0 {
		message = fmt.Sprintf(format, details...)
	}
	WaitLogs()
	sinkMu.RLock()
	out := stdout
	sinkMu.RUnlock()
	fmt.Fprint(out, message)
	if flusher, ok := out.(syncer); ok {
		flusher.Sync()
	}
}

func WaitLogs() {
	runtime.Gosched()
	logbarrier.Wait()
}
