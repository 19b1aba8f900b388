package common

import (
	"fmt"
	"time"
)

type Duration time.Duration

func (it Duration) String() string {
	seconds := time.Duration(it).Seconds()
	return fmt.Sprintf("%5.3f", seconds)
}

type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	return &stopwatch{
		message: fmt.Sprintf(form, details...),
		started: time.Now(),
	}
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Log("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Debug() Duration {
	elapsed := it.Elapsed()
	Debug("%v %v", it.message, elapsed)
	return elapsed
}

func Timeline(form string, details ...interface{}) {
	Trace("timeline: "+form, details...)
}
