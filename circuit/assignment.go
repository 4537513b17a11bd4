// Package circuit holds the assignment side of the two-phase gadget
// lifecycle: regions, layouters and the chip contract. Configuration lives
// in package plonk.
package circuit

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zkgadgets/plonkish/plonk"
)

// Assignment is the backend concrete witnesses are written into during
// synthesis. Row indices are absolute; writes either succeed or fail
// immediately with a plonk.ErrAssignment-wrapped error.
type Assignment interface {
	AssignAdvice(col plonk.Advice, row int, v constraint.Element) error
	AssignFixed(col plonk.Fixed, row int, v constraint.Element) error
	EnableSelector(sel plonk.Selector, row int) error
	// Height returns the number of rows of the trace.
	Height() int
}

// AssignedCell is the handle to an advice cell written during synthesis.
type AssignedCell struct {
	Column plonk.Advice
	// Row is the absolute row the cell was laid out at.
	Row   int
	Value constraint.Element
}

// Circuit is a circuit description: Configure registers columns and gates on
// the constraint system and stores the resulting configs on the receiver;
// Synthesize writes the witnesses of one concrete instance. Configure runs
// exactly once per circuit shape, strictly before Synthesize.
type Circuit interface {
	Configure(cs *plonk.ConstraintSystem)
	Synthesize(l Layouter) error
}

// Chip binds a gadget's Config to its assignment logic. Chips are stateless
// beyond the Config and may be constructed repeatedly from the same Config.
type Chip[C any] interface {
	Config() C
}
