package types

import "errors"

// Sentinel errors for the failure families the library surfaces. Callers match
// them with errors.Is; every wrapped error still names the offending shapes,
// fields, or phases in its message.
var (
	// ErrShapeMismatch indicates caller-supplied data did not match a layer's
	// expected dimensions. Raised at the layer boundary that observes the
	// mismatch, never at construction time.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrMissingField indicates a metadata or label record lacks a field a
	// consumer unconditionally reads, or holds it with an unusable type.
	ErrMissingField = errors.New("missing or mistyped field")

	// ErrUnmappedPhase indicates a phase name resolved from a label record has
	// no entry in the configured phase color table.
	ErrUnmappedPhase = errors.New("unmapped phase")
)
