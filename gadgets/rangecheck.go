package gadgets

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zkgadgets/plonkish/circuit"
	"github.com/zkgadgets/plonkish/expr"
	"github.com/zkgadgets/plonkish/plonk"
)

// RangeCheckConfig names the column, selector and bound of the RangeCheck
// gadget.
type RangeCheckConfig struct {
	Value plonk.Advice
	Sel   plonk.Selector
	// Bound is the exclusive upper bound: accepted values are 0..Bound-1.
	Bound uint64
}

// RangeCheckChip constrains an advice cell to hold one of the integers
// 0..Bound-1.
type RangeCheckChip struct {
	config RangeCheckConfig
}

var _ circuit.Chip[RangeCheckConfig] = (*RangeCheckChip)(nil)

// RangeConstrained is the handle to a range-checked witness cell.
type RangeConstrained struct {
	Cell circuit.AssignedCell
}

// ConfigureRangeCheck registers the vanishing-product gate
//
//	selector * value * (1 - value) * (2 - value) * ... * (bound-1 - value) == 0
//
// against the supplied advice column; the leading value factor covers the
// root at 0. The gate degree grows linearly with bound, so callers must stay
// within the proving system's maximum-degree limit when choosing it.
// A zero bound is a configuration error.
func ConfigureRangeCheck(cs *plonk.ConstraintSystem, value plonk.Advice, bound uint64) RangeCheckConfig {
	if bound == 0 {
		panic(fmt.Errorf("%w: range bound must be positive", plonk.ErrConfiguration))
	}

	sel := cs.Selector()
	f := cs.Field()

	cs.CreateGate("range_check", func(v *plonk.VirtualCells) []expr.Expression {
		s := v.QuerySelector(sel)
		val := v.QueryAdvice(value, plonk.Cur)

		factors := []expr.Expression{s, val}
		for i := uint64(1); i < bound; i++ {
			factors = append(factors, expr.Sub(expr.NewConstant(f.FromInterface(i)), val))
		}
		return []expr.Expression{expr.Product(factors...)}
	})

	return RangeCheckConfig{
		Value: value,
		Sel:   sel,
		Bound: bound,
	}
}

// NewRangeCheckChip constructs the chip for a given config.
func NewRangeCheckChip(config RangeCheckConfig) *RangeCheckChip {
	return &RangeCheckChip{config: config}
}

func (c *RangeCheckChip) Config() RangeCheckConfig {
	return c.config
}

// Assign enables the gate and witnesses the checked value itself. The
// vanishing product is evaluated by the proving system from that witness;
// writing a pre-computed product instead would leave the stored cell zero
// for every input and make the check vacuous.
func (c *RangeCheckChip) Assign(region *circuit.Region, offset int, value constraint.Element) (RangeConstrained, error) {
	if err := region.EnableSelector(c.config.Sel, offset); err != nil {
		return RangeConstrained{}, err
	}
	cell, err := region.AssignAdvice("range-checked value", c.config.Value, offset, value)
	if err != nil {
		return RangeConstrained{}, err
	}
	return RangeConstrained{Cell: cell}, nil
}
