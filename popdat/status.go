package popdat

import (
	"fmt"
	"os"
)

// StatusFunc is the diagnostic sink. The core never calls fmt/log
// directly; it always goes through a StatusFunc so hosts can redirect,
// buffer, or silence diagnostics.
type StatusFunc func(msg string)

// DefaultStatus writes to stderr.
func DefaultStatus(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func logWarnings(status StatusFunc, warnings Warnings) {
	if status == nil {
		return
	}
	for _, w := range warnings {
		status(w.String())
	}
}

// LogWarnings is logWarnings's exported form, for callers outside this
// package (cmd/popdat) that collect Warnings from a call made before an
// ExtractOptions.Status sink exists.
func LogWarnings(status StatusFunc, warnings Warnings) {
	logWarnings(status, warnings)
}
