package types

import "fmt"

// DiagnosticKind classifies non-fatal conditions reported by the artifact
// assigner. Diagnostics do not stop a batch; callers log them per transition
// and continue.
type DiagnosticKind int

const (
	// DiagNone indicates a fully nominal assignment.
	DiagNone DiagnosticKind = iota

	// DiagEmptyPool indicates the artifact pool was empty; the resulting
	// assignment is empty as well.
	DiagEmptyPool

	// DiagSizeMismatch indicates the artifact pool size was outside the
	// expected {2m, 2m+1} range for m partitions. Assignment proceeded
	// best-effort, exhausting the pool in order.
	DiagSizeMismatch
)

// String returns the canonical name of the diagnostic kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagNone:
		return "none"
	case DiagEmptyPool:
		return "empty_pool"
	case DiagSizeMismatch:
		return "size_mismatch"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Diagnostic describes one non-fatal assignment condition.
type Diagnostic struct {
	// Kind classifies the condition.
	Kind DiagnosticKind

	// Expected is the nominal artifact count (2 per partition); only set for
	// DiagSizeMismatch.
	Expected int

	// Actual is the observed artifact pool size.
	Actual int
}

// OK reports whether the diagnostic carries no condition.
func (d Diagnostic) OK() bool {
	return d.Kind == DiagNone
}

// String renders the diagnostic for logging.
func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagEmptyPool:
		return "empty artifact pool"
	case DiagSizeMismatch:
		return fmt.Sprintf("artifact pool size mismatch: expected %d or %d, found %d", d.Expected, d.Expected+1, d.Actual)
	default:
		return "ok"
	}
}
