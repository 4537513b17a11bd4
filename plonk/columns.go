// Package plonk holds the circuit-shape side of the constraint system:
// columns, selectors, gate registration and the resulting circuit
// description.
package plonk

// Rotation is a row offset relative to the row a gate is evaluated at.
type Rotation int

const (
	Prev Rotation = -1
	Cur  Rotation = 0
	Next Rotation = 1
)

// Advice is a witness-carrying column; its values are supplied by the prover
// per proving instance.
type Advice struct {
	Index int
}

// Fixed is a constant column baked into the circuit description, identical
// for every instance.
type Fixed struct {
	Index int
}

// Selector is a boolean column gating whether a constraint is active on a
// given row.
type Selector struct {
	Index int
}
