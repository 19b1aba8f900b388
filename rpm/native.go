package rpm

import (
	"context"
	"fmt"

	rpmheader "github.com/cavaliergopher/rpm"
)

// NativeReader parses the RPM header in-process; no rpm utility needed.
type NativeReader struct{}

func NewNativeReader() *NativeReader {
	return &NativeReader{}
}

func (it *NativeReader) Read(ctx context.Context, filename string) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pkg, err := rpmheader.Open(filename)
	if err != nil {
		return nil, &QueryError{
			Path: filename,
			Err:  fmt.Errorf("reading rpm header: %w", err),
		}
	}
	return &Metadata{
		Description: unset(pkg.Description()),
		Summary:     unset(pkg.Summary()),
		URL:         unset(pkg.URL()),
		Version:     pkg.Version(),
		Name:        pkg.Name(),
		BuildTime:   pkg.BuildTime().Unix(),
		BuildHost:   unset(pkg.BuildHost()),
	}, nil
}
