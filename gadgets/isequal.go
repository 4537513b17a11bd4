package gadgets

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zkgadgets/plonkish/circuit"
	"github.com/zkgadgets/plonkish/expr"
	"github.com/zkgadgets/plonkish/plonk"
)

// IsEqualConfig names the columns and selector the IsEqual gadget uses.
type IsEqualConfig struct {
	A    plonk.Advice
	B    plonk.Advice
	Zero plonk.Fixed
	Sel  plonk.Selector
}

// IsEqualChip constrains two advice cells on the same row to be equal
// whenever its selector is active.
type IsEqualChip struct {
	config IsEqualConfig
}

var _ circuit.Chip[IsEqualConfig] = (*IsEqualChip)(nil)

// ConfigureIsEqual allocates advice columns a and b, a fixed zero column and
// a selector, and registers the gate
//
//	selector * (a - b - zero) == 0
//
// The comparison is anchored through the fixed zero cell rather than a bare
// a - b: the comparison identity stays linear and the zero constant can
// itself take part in cross-region equality wiring, at the cost of one extra
// column. Equality
// is enabled on a and b so composing circuits may wire arbitrary cells into
// them.
func ConfigureIsEqual(cs *plonk.ConstraintSystem) IsEqualConfig {
	sel := cs.Selector()

	a := cs.AdviceColumn()
	b := cs.AdviceColumn()
	zero := cs.FixedColumn()

	cs.EnableEquality(a)
	cs.EnableEquality(b)
	cs.EnableConstant(zero)

	cs.CreateGate("is_equal", func(v *plonk.VirtualCells) []expr.Expression {
		s := v.QuerySelector(sel)
		av := v.QueryAdvice(a, plonk.Cur)
		bv := v.QueryAdvice(b, plonk.Cur)
		zv := v.QueryFixed(zero, plonk.Cur)

		return []expr.Expression{expr.Product(s, expr.Sub(av, bv, zv))}
	})

	return IsEqualConfig{
		A:    a,
		B:    b,
		Zero: zero,
		Sel:  sel,
	}
}

// NewIsEqualChip constructs the chip for a given config.
func NewIsEqualChip(config IsEqualConfig) *IsEqualChip {
	return &IsEqualChip{config: config}
}

func (c *IsEqualChip) Config() IsEqualConfig {
	return c.config
}

// Assign writes a and b, anchors the fixed zero cell to the additive
// identity, and enables the selector at the given region offset. Layouter
// failures are propagated unchanged.
func (c *IsEqualChip) Assign(region *circuit.Region, offset int, a, b constraint.Element) error {
	if err := region.EnableSelector(c.config.Sel, offset); err != nil {
		return err
	}
	if _, err := region.AssignAdvice("a", c.config.A, offset, a); err != nil {
		return err
	}
	if _, err := region.AssignAdvice("b", c.config.B, offset, b); err != nil {
		return err
	}
	return region.AssignFixed("zero", c.config.Zero, offset, constraint.Element{})
}
