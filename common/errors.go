package common

import "fmt"

// ExitCode is panicked by command code to request a clean process exit.
// It is recovered by ExitProtection in main.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) Error() string {
	return fmt.Sprintf("exit %d: %s", it.Code, it.Message)
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		Log("%s", it.Message)
	}
}

func Exit(code int, format string, rest ...interface{}) {
	var message string
	if len(format) > 0 {
		message = fmt.Sprintf(format, rest...)
	}
	panic(ExitCode{
		Code:    code,
		Message: message,
	})
}
