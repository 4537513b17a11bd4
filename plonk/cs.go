package plonk

import (
	"fmt"

	"github.com/zkgadgets/plonkish/expr"
	"github.com/zkgadgets/plonkish/field"
	"github.com/zkgadgets/plonkish/logger"
)

// ConstraintSystem collects the columns, selectors and gates of a circuit
// shape. It is mutated by gadget configure functions during a single
// configuration pass and read-only afterwards; gadgets must not keep a
// reference to it beyond configuration time.
type ConstraintSystem struct {
	field field.Field

	numAdvice    int
	numFixed     int
	numSelectors int

	// capability flags, keyed by column index
	equality  map[int]bool
	constants map[int]bool

	gates []Gate
}

// Gate is a named set of polynomials the proving system requires to vanish
// on every row. Selector factors are folded into the polynomials by the
// gate builder.
type Gate struct {
	Name  string
	Polys []expr.Expression
}

// Degree returns the maximum degree among the gate's polynomials.
func (g Gate) Degree() int {
	res := 0
	for _, p := range g.Polys {
		if d := p.Degree(); d > res {
			res = d
		}
	}
	return res
}

func NewConstraintSystem(f field.Field) *ConstraintSystem {
	return &ConstraintSystem{
		field:     f,
		equality:  make(map[int]bool),
		constants: make(map[int]bool),
	}
}

// Field returns the field engine the circuit is built over.
func (cs *ConstraintSystem) Field() field.Field {
	return cs.field
}

// AdviceColumn allocates a fresh advice column.
func (cs *ConstraintSystem) AdviceColumn() Advice {
	col := Advice{Index: cs.numAdvice}
	cs.numAdvice++
	return col
}

// FixedColumn allocates a fresh fixed column.
func (cs *ConstraintSystem) FixedColumn() Fixed {
	col := Fixed{Index: cs.numFixed}
	cs.numFixed++
	return col
}

// Selector allocates a fresh selector.
func (cs *ConstraintSystem) Selector() Selector {
	sel := Selector{Index: cs.numSelectors}
	cs.numSelectors++
	return sel
}

// EnableEquality opts an advice column into copy-constraint wiring so other
// regions may constrain cells against it. Idempotent.
func (cs *ConstraintSystem) EnableEquality(col Advice) {
	cs.equality[col.Index] = true
}

// EnableConstant marks a fixed column as usable as a constant anchor.
// Idempotent.
func (cs *ConstraintSystem) EnableConstant(col Fixed) {
	cs.constants[col.Index] = true
}

// CreateGate runs build with a fresh VirtualCells view of the system and
// registers the returned polynomials as a gate. A gate referencing a column
// or selector the system never allocated fails the circuit build by
// panicking with an ErrConfiguration-wrapped error.
func (cs *ConstraintSystem) CreateGate(name string, build func(*VirtualCells) []expr.Expression) {
	v := &VirtualCells{cs: cs}
	polys := build(v)
	for i, p := range polys {
		cs.validate(name, i, p)
	}
	gate := Gate{Name: name, Polys: polys}
	log := logger.Logger()
	log.Debug().
		Str("gate", name).
		Int("polys", len(polys)).
		Int("degree", gate.Degree()).
		Msg("gate registered")
	cs.gates = append(cs.gates, gate)
}

func (cs *ConstraintSystem) validate(gate string, poly int, p expr.Expression) {
	p.Visit(func(q expr.Query) {
		switch q.Kind {
		case expr.QueryAdvice:
			if q.Index < 0 || q.Index >= cs.numAdvice {
				panic(fmt.Errorf("%w: gate %q polynomial %d queries unbound advice column %d", ErrConfiguration, gate, poly, q.Index))
			}
		case expr.QueryFixed:
			if q.Index < 0 || q.Index >= cs.numFixed {
				panic(fmt.Errorf("%w: gate %q polynomial %d queries unbound fixed column %d", ErrConfiguration, gate, poly, q.Index))
			}
		case expr.QuerySelector:
			if q.Index < 0 || q.Index >= cs.numSelectors {
				panic(fmt.Errorf("%w: gate %q polynomial %d queries unbound selector %d", ErrConfiguration, gate, poly, q.Index))
			}
		}
	})
}

// Gates returns the registered gates.
func (cs *ConstraintSystem) Gates() []Gate {
	return cs.gates
}

// NumAdvice returns the number of allocated advice columns.
func (cs *ConstraintSystem) NumAdvice() int { return cs.numAdvice }

// NumFixed returns the number of allocated fixed columns.
func (cs *ConstraintSystem) NumFixed() int { return cs.numFixed }

// NumSelectors returns the number of allocated selectors.
func (cs *ConstraintSystem) NumSelectors() int { return cs.numSelectors }

// EqualityEnabled reports whether the advice column was opted into
// copy-constraint wiring.
func (cs *ConstraintSystem) EqualityEnabled(col Advice) bool {
	return cs.equality[col.Index]
}

// ConstantEnabled reports whether the fixed column was marked as a constant
// anchor.
func (cs *ConstraintSystem) ConstantEnabled(col Fixed) bool {
	return cs.constants[col.Index]
}

// VirtualCells gives gate builders query access to the columns of the
// allocating constraint system, mirroring the cells a gate polynomial may
// reference.
type VirtualCells struct {
	cs *ConstraintSystem
}

// QueryAdvice references an advice column at the given rotation.
func (v *VirtualCells) QueryAdvice(col Advice, at Rotation) expr.Expression {
	return expr.AdviceQuery{Column: col.Index, Shift: int(at)}
}

// QueryFixed references a fixed column at the given rotation.
func (v *VirtualCells) QueryFixed(col Fixed, at Rotation) expr.Expression {
	return expr.FixedQuery{Column: col.Index, Shift: int(at)}
}

// QuerySelector references a selector on the gate's own row.
func (v *VirtualCells) QuerySelector(sel Selector) expr.Expression {
	return expr.SelectorQuery{Selector: sel.Index}
}
