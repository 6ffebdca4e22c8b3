package logimage

import (
	"fmt"
	"os"
	"sync/atomic"
)

var verbose atomic.Bool

// SetVerbose turns diagnostic printing to stderr on or off for the
// whole process. It is the only process-wide state this package
// exposes; races on it are benign since it only gates prints, never
// program logic.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Verbose reports the current global verbosity setting.
func Verbose() bool {
	return verbose.Load()
}

func logf(format string, args ...any) {
	if verbose.Load() {
		fmt.Fprintf(os.Stderr, "logimage: "+format+"\n", args...)
	}
}
