// Package gadgets provides reusable building blocks that express boolean and
// range semantics as polynomial identities over a PLONKish constraint
// system. Each gadget follows the same two-phase lifecycle: a Configure
// function registers its columns and gate once per circuit shape, and a chip
// constructed from the resulting config writes witnesses per proving
// instance.
package gadgets

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zkgadgets/plonkish/circuit"
	"github.com/zkgadgets/plonkish/expr"
	"github.com/zkgadgets/plonkish/field"
	"github.com/zkgadgets/plonkish/plonk"
)

// IsZeroConfig names the column and derived expression the IsZero gadget
// uses.
type IsZeroConfig struct {
	// ValueInv holds the witnessed inv0 of the checked value.
	ValueInv plonk.Advice
	// IsZeroExpr evaluates to 1 when the checked value is zero and to 0
	// otherwise, on rows where the gate is active. Callers may embed it
	// directly in further gates.
	IsZeroExpr expr.Expression
}

// IsZeroChip witnesses inv0(value) for the IsZero gate, where inv0(x) is 0
// when x = 0 and 1/x otherwise.
type IsZeroChip struct {
	config IsZeroConfig
	f      field.Field
}

var _ circuit.Chip[IsZeroConfig] = (*IsZeroChip)(nil)

// ConfigureIsZero registers the is_zero gate
//
//	q_enable * value * (1 - value * value_inv) == 0
//
// against the supplied value_inv advice column and returns the config,
// including the reusable is_zero expression.
//
// Truth table of the gate (ok = row accepted):
//
//	+----+-------+-----------+----------------------+
//	| ok | value | value_inv | 1 - value*value_inv  |
//	+----+-------+-----------+----------------------+
//	| V  | 0     | 0         | 1                    |
//	| V  | 0     | x         | 1                    |
//	|    | x     | 0         | 1                    |
//	| V  | x     | 1/x       | 0                    |
//	|    | x     | y         | 1 - xy               |
//	+----+-------+-----------+----------------------+
//
// The prover chooses value_inv freely. When value is zero the constraint
// holds for any witness and the expression reduces to 1; when value is
// nonzero the constraint forces value * value_inv == 1, i.e. value_inv must
// be the true field inverse, and the expression reduces to 0. One advice
// column and one degree-3 polynomial suffice.
func ConfigureIsZero(
	cs *plonk.ConstraintSystem,
	qEnable func(*plonk.VirtualCells) expr.Expression,
	value func(*plonk.VirtualCells) expr.Expression,
	valueInv plonk.Advice,
) IsZeroConfig {
	var isZero expr.Expression = expr.NewConstant(constraint.Element{})

	cs.CreateGate("is_zero", func(v *plonk.VirtualCells) []expr.Expression {
		q := qEnable(v)
		val := value(v)
		inv := v.QueryAdvice(valueInv, plonk.Cur)

		isZero = expr.Sub(expr.NewConstant(cs.Field().One()), expr.Product(val, inv))

		// value == 0 accepts any inverse witness; value != 0 forces
		// value_inv to be the true inverse
		return []expr.Expression{expr.Product(q, val, isZero)}
	})

	return IsZeroConfig{
		ValueInv:   valueInv,
		IsZeroExpr: isZero,
	}
}

// NewIsZeroChip constructs the chip for a given config.
func NewIsZeroChip(config IsZeroConfig, f field.Field) *IsZeroChip {
	return &IsZeroChip{config: config, f: f}
}

func (c *IsZeroChip) Config() IsZeroConfig {
	return c.config
}

// Assign witnesses inv0(value) into the value_inv column at the given region
// offset. Exactly one cell is written.
func (c *IsZeroChip) Assign(region *circuit.Region, offset int, value constraint.Element) error {
	_, err := region.AssignAdvice("witness inverse of value", c.config.ValueInv, offset, field.Inv0(c.f, value))
	return err
}

// AssignBatch witnesses inv0 for many offsets of one region with a single
// field inversion when the engine supports batching. The witnesses are
// bit-identical to per-offset Assign calls.
func (c *IsZeroChip) AssignBatch(region *circuit.Region, offsets []int, values []constraint.Element) error {
	if len(offsets) != len(values) {
		return fmt.Errorf("%w: %d offsets for %d values", plonk.ErrAssignment, len(offsets), len(values))
	}
	for i, inv := range c.inverses(values) {
		if _, err := region.AssignAdvice("witness inverse of value", c.config.ValueInv, offsets[i], inv); err != nil {
			return err
		}
	}
	return nil
}

func (c *IsZeroChip) inverses(values []constraint.Element) []constraint.Element {
	if b, ok := c.f.(field.BatchInverter); ok {
		return b.BatchInverse(values)
	}
	res := make([]constraint.Element, len(values))
	for i, v := range values {
		res[i] = field.Inv0(c.f, v)
	}
	return res
}
