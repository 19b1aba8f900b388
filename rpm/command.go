package rpm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/joshyorko/rpms2sbom/common"
)

const (
	FieldSeparator = "||"
	fieldCount     = 7
)

// QueryFormat asks for description, summary, url, version, name, build
// time and build host, in that order.
var QueryFormat = strings.Join([]string{
	"%{DESCRIPTION}",
	"%{SUMMARY}",
	"%{URL}",
	"%{VERSION}",
	"%{NAME}",
	"%{BUILDTIME}",
	"%{BUILDHOST}",
}, FieldSeparator)

// CommandReader runs the rpm utility against each file.
type CommandReader struct {
	Command []string
	Timeout time.Duration
}

// NewCommandReader splits command with shell quoting rules, so settings may
// carry extra options like "rpm --nosignature".
func NewCommandReader(command string, timeout time.Duration) (*CommandReader, error) {
	parts, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("invalid rpm command %q: %w", command, err)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("invalid rpm command %q: %w", command, ErrToolMissing)
	}
	return &CommandReader{
		Command: parts,
		Timeout: timeout,
	}, nil
}

func (it *CommandReader) arguments(filename string) []string {
	arguments := make([]string, 0, len(it.Command)+3)
	arguments = append(arguments, it.Command[1:]...)
	return append(arguments, "-qp", "--queryformat", QueryFormat, filename)
}

func (it *CommandReader) Read(ctx context.Context, filename string) (*Metadata, error) {
	executable, err := exec.LookPath(it.Command[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolMissing, err)
	}
	if it.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, it.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, executable, it.arguments(filename)...)
	command.Stdout = &stdout
	command.Stderr = &stderr
	common.Trace("running %q %q", executable, command.Args[1:])
	err = command.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w (%v)", ctxErr, err)
		}
		return nil, &QueryError{
			Path:   filename,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	if stderr.Len() > 0 {
		common.Debug("rpm reported for %q: %s", filename, strings.TrimSpace(stderr.String()))
	}
	return ParseQueryOutput(filename, stdout.String())
}

// ParseQueryOutput turns one queryformat record into Metadata. Embedded
// newlines are flattened to spaces before splitting.
func ParseQueryOutput(filename, output string) (*Metadata, error) {
	flat := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(output)
	fields := strings.Split(flat, FieldSeparator)
	if len(fields) != fieldCount {
		return nil, &FieldCountError{
			Path: filename,
			Got:  len(fields),
			Want: fieldCount,
		}
	}
	buildtime := strings.TrimSpace(fields[5])
	epoch, err := strconv.ParseInt(buildtime, 10, 64)
	if err != nil {
		return nil, &BuildTimeError{
			Path:  filename,
			Value: buildtime,
			Err:   err,
		}
	}
	return &Metadata{
		Description: unset(fields[0]),
		Summary:     unset(fields[1]),
		URL:         unset(fields[2]),
		Version:     unset(fields[3]),
		Name:        unset(fields[4]),
		BuildTime:   epoch,
		BuildHost:   unset(strings.TrimSpace(fields[6])),
	}, nil
}
