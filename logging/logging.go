// Package logging provides the advisory logging hook used across this
// module in place of the original implementation's module-level "verbose"
// flag. Every component that wants to narrate its progress takes a Logger
// through its options rather than reading process-wide state, so that two
// concurrent calls into this module can run with independent (or no)
// logging without interfering with one another.
package logging

import (
	"log"
)

// Logger receives progress narration. It must never influence results —
// implementations are purely an output sink.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything written to it. It is the default Logger
// used when none is configured.
type NopLogger struct{}

// Printf implements Logger by doing nothing.
func (NopLogger) Printf(string, ...interface{}) {}

// StdLogger adapts a *log.Logger to the Logger interface.
type StdLogger struct {
	L *log.Logger
}

// Printf implements Logger by delegating to the wrapped *log.Logger.
func (s StdLogger) Printf(format string, args ...interface{}) {
	s.L.Printf(format, args...)
}

// NewStdLogger wraps log.Default(), a convenience for CLI callers that
// want stderr narration without constructing their own *log.Logger.
func NewStdLogger() StdLogger {
	return StdLogger{L: log.Default()}
}

// Fallback returns l if non-nil, otherwise NopLogger{}. Use it at the top
// of any function accepting an optional Logger so call sites never need a
// nil check.
func Fallback(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
