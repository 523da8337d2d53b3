// Package debug gates optional diagnostics behind a runtime toggle so the
// hot decode paths stay silent unless a test or a debugging session asks
// otherwise.
package debug

import (
	"log"
	"sync/atomic"
)

var enabled atomic.Bool

// Toggle turns on/off debug mode.
func Toggle(on bool) {
	enabled.Store(on)
}

// Do executes a function if debug is enabled, usually for side effects.
func Do(f func()) {
	if enabled.Load() {
		f()
	}
}

// Format formats a log line and writes it to stderr if debug is enabled.
func Format(format string, args ...interface{}) {
	if enabled.Load() {
		log.Printf(format, args...)
	}
}
