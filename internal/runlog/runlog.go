// Package runlog tags progress output with a short run identifier, so
// concurrent runs can be told apart in shared logs. Every line of one run
// carries the same identifier.
package runlog

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Logger writes run-tagged progress lines to an underlying writer.
type Logger struct {
	runID string
	out   io.Writer
}

// New creates a Logger with a fresh run identifier.
func New(out io.Writer) *Logger {
	id := uuid.NewString()
	return &Logger{runID: id[:8], out: out}
}

// RunID returns the short identifier tagging this run's output.
func (l *Logger) RunID() string { return l.runID }

// Progress writes one tagged progress line, matching the original
// implementation's plain stdout progress messages (spec §7) but
// disambiguated by run.
func (l *Logger) Progress(format string, args ...any) {
	fmt.Fprintf(l.out, "[%s] "+format+"\n", append([]any{l.runID}, args...)...)
}
