// Package except contains assertion and error reporting helpers.
package except

import (
	"fmt"
	"log/slog"
)

// Must panics with the formatted message if pred is false. It guards invariants which only a
// programming error can break.
func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

const logErrKey = "err"

// LogErrAttr wraps an error into a loggable attribute. A nil error yields an empty group, which
// slog omits.
func LogErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}
