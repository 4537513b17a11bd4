package plonk

import "errors"

var (
	// ErrConfiguration reports a malformed gate registration, e.g. a gate
	// querying a column the constraint system never allocated. It is
	// unreachable from correctly written gadgets, so it surfaces as a
	// panic value rather than an error return.
	ErrConfiguration = errors.New("malformed circuit configuration")

	// ErrAssignment reports a cell write that violates the layouter's
	// structural contract, e.g. a region offset past the end of the trace
	// or a cell assigned twice. Gadgets propagate it unchanged.
	ErrAssignment = errors.New("invalid assignment")
)
