package pretty

import (
	"fmt"

	"github.com/joshyorko/rpms2sbom/common"
)

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

func Warning(format string, rest ...interface{}) {
	common.Warning(format, rest...)
}

func Note(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%s%sNote: %s%s", Cyan, Bold, format, Reset)
	common.Log(niceform, rest...)
}

func Highlight(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%s%s%s", Bold, format, Reset)
	common.Log(niceform, rest...)
}

func Exit(code int, format string, rest ...interface{}) {
	var niceform string
	if code > 0 {
		niceform = fmt.Sprintf("%s%s%s", Red, format, Reset)
	} else {
		niceform = fmt.Sprintf("%s%s%s", Green, format, Reset)
	}
	common.Exit(code, niceform, rest...)
}

func Guard(truth bool, code int, format string, rest ...interface{}) {
	if !truth {
		Exit(code, format, rest...)
	}
}
