package rpm

import (
	"fmt"
	"strings"
	"time"
)

const (
	ReaderCommand = "rpm"
	ReaderNative  = "native"
)

// NewReader picks a Reader implementation by settings name.
func NewReader(kind, command string, timeout time.Duration) (Reader, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", ReaderCommand:
		return NewCommandReader(command, timeout)
	case ReaderNative:
		return NewNativeReader(), nil
	default:
		return nil, fmt.Errorf("unknown metadata reader %q (supported: %s, %s)", kind, ReaderCommand, ReaderNative)
	}
}
