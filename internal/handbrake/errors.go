package handbrake

import (
	"fmt"
	"strings"
)

// Markers separating the captured streams in [EncodeError.Diagnostic], so
// the two are visually separable in logs.
const (
	stderrMarker = "----- encoder stderr -----"
	stdoutMarker = "----- encoder stdout -----"
)

// EncodeError reports a non-zero encoder exit. It carries both captured
// output streams; the exit status alone determines failure, the streams are
// diagnostic only.
type EncodeError struct {
	Input  string
	Stdout string
	Stderr string
	err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Input, e.err)
}

func (e *EncodeError) Unwrap() error { return e.err }

// Diagnostic returns the captured streams as labeled blocks: a stderr block
// followed by a stdout block, each introduced by a marker line. Empty
// streams are omitted; if both are empty the result is empty.
func (e *EncodeError) Diagnostic() string {
	var b strings.Builder
	if s := strings.TrimRight(e.Stderr, "\n"); s != "" {
		b.WriteString(stderrMarker + "\n" + s + "\n")
	}
	if s := strings.TrimRight(e.Stdout, "\n"); s != "" {
		b.WriteString(stdoutMarker + "\n" + s + "\n")
	}
	return b.String()
}
