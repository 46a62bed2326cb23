package swift

import "errors"

// Decode error taxonomy. These are internal to the demangler: every decode
// failure, whatever its class, collapses into a Failure root before reaching
// a caller. Scanner errors count as structural mismatches.
var (
	errStructural   = errors.New("demangle: structural mismatch")
	errUnknownCode  = errors.New("demangle: unknown discriminator")
	errBadReference = errors.New("demangle: substitution index out of range")
	errTooDeep      = errors.New("demangle: recursion limit exceeded")
)
