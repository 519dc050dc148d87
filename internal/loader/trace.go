package loader

import (
	"fmt"
	"io"
)

// Tracer is the debug reporting channel consulted during assembly and
// validation. It emits one line per record and never influences values
// returned or control flow taken by any other component.
//
// A nil Tracer is disabled and imposes no overhead; every method is safe
// to call on it.
type Tracer struct {
	w io.Writer
}

// NewTracer creates a tracer writing to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// Enabled reports whether records will be written.
func (t *Tracer) Enabled() bool {
	return t != nil && t.w != nil
}

// Printf writes one formatted record line.
func (t *Tracer) Printf(format string, args ...any) {
	if !t.Enabled() {
		return
	}
	fmt.Fprintf(t.w, format+"\n", args...)
}
