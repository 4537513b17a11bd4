// Package dev provides an in-memory mock execution backend: it synthesizes a
// circuit into a trace and checks every registered gate on every row,
// without running a real prover.
package dev

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark/constraint"

	"github.com/zkgadgets/plonkish/circuit"
	"github.com/zkgadgets/plonkish/field"
	"github.com/zkgadgets/plonkish/logger"
	"github.com/zkgadgets/plonkish/plonk"
)

// MockProver holds a fully synthesized 2^k-row trace together with the
// constraint system it was built against. It implements circuit.Assignment
// for the synthesis pass and expr.Trace for gate evaluation. Unassigned
// cells read as zero.
type MockProver struct {
	f  field.Field
	cs *plonk.ConstraintSystem
	n  int

	advice [][]constraint.Element
	fixed  [][]constraint.Element

	selectors      []*bitset.BitSet
	adviceAssigned []*bitset.BitSet
	fixedAssigned  []*bitset.BitSet
}

// Run configures c on a fresh constraint system over f, then synthesizes it
// into a trace of 2^k rows. Assignment failures from synthesis are returned
// unchanged.
func Run(k int, c circuit.Circuit, f field.Field) (*MockProver, error) {
	cs := plonk.NewConstraintSystem(f)
	c.Configure(cs)

	n := 1 << k
	p := &MockProver{f: f, cs: cs, n: n}
	p.advice = make([][]constraint.Element, cs.NumAdvice())
	p.adviceAssigned = make([]*bitset.BitSet, cs.NumAdvice())
	for i := range p.advice {
		p.advice[i] = make([]constraint.Element, n)
		p.adviceAssigned[i] = bitset.New(uint(n))
	}
	p.fixed = make([][]constraint.Element, cs.NumFixed())
	p.fixedAssigned = make([]*bitset.BitSet, cs.NumFixed())
	for i := range p.fixed {
		p.fixed[i] = make([]constraint.Element, n)
		p.fixedAssigned[i] = bitset.New(uint(n))
	}
	p.selectors = make([]*bitset.BitSet, cs.NumSelectors())
	for i := range p.selectors {
		p.selectors[i] = bitset.New(uint(n))
	}

	log := logger.Logger()
	log.Debug().
		Int("rows", n).
		Int("advice", cs.NumAdvice()).
		Int("fixed", cs.NumFixed()).
		Int("selectors", cs.NumSelectors()).
		Int("gates", len(cs.Gates())).
		Msg("mock synthesis")

	l := circuit.NewSingleChipLayouter(p)
	if err := c.Synthesize(l); err != nil {
		return nil, err
	}
	return p, nil
}

// ConstraintSystem returns the system the circuit was configured on.
func (p *MockProver) ConstraintSystem() *plonk.ConstraintSystem {
	return p.cs
}

func (p *MockProver) checkRow(row int) error {
	if row < 0 || row >= p.n {
		return fmt.Errorf("%w: row %d out of range (trace height %d)", plonk.ErrAssignment, row, p.n)
	}
	return nil
}

// AssignAdvice implements circuit.Assignment. Each advice cell may be
// assigned at most once.
func (p *MockProver) AssignAdvice(col plonk.Advice, row int, v constraint.Element) error {
	if col.Index < 0 || col.Index >= len(p.advice) {
		return fmt.Errorf("%w: advice column %d out of range", plonk.ErrAssignment, col.Index)
	}
	if err := p.checkRow(row); err != nil {
		return err
	}
	if p.adviceAssigned[col.Index].Test(uint(row)) {
		return fmt.Errorf("%w: advice cell (column %d, row %d) assigned twice", plonk.ErrAssignment, col.Index, row)
	}
	p.adviceAssigned[col.Index].Set(uint(row))
	p.advice[col.Index][row] = v
	return nil
}

// AssignFixed implements circuit.Assignment. Each fixed cell may be assigned
// at most once.
func (p *MockProver) AssignFixed(col plonk.Fixed, row int, v constraint.Element) error {
	if col.Index < 0 || col.Index >= len(p.fixed) {
		return fmt.Errorf("%w: fixed column %d out of range", plonk.ErrAssignment, col.Index)
	}
	if err := p.checkRow(row); err != nil {
		return err
	}
	if p.fixedAssigned[col.Index].Test(uint(row)) {
		return fmt.Errorf("%w: fixed cell (column %d, row %d) assigned twice", plonk.ErrAssignment, col.Index, row)
	}
	p.fixedAssigned[col.Index].Set(uint(row))
	p.fixed[col.Index][row] = v
	return nil
}

// EnableSelector implements circuit.Assignment. Re-enabling an already
// enabled selector is a no-op.
func (p *MockProver) EnableSelector(sel plonk.Selector, row int) error {
	if sel.Index < 0 || sel.Index >= len(p.selectors) {
		return fmt.Errorf("%w: selector %d out of range", plonk.ErrAssignment, sel.Index)
	}
	if err := p.checkRow(row); err != nil {
		return err
	}
	p.selectors[sel.Index].Set(uint(row))
	return nil
}

// Height implements circuit.Assignment and expr.Trace.
func (p *MockProver) Height() int { return p.n }

// Advice implements expr.Trace.
func (p *MockProver) Advice(column, row int) constraint.Element {
	return p.advice[column][row]
}

// Fixed implements expr.Trace.
func (p *MockProver) Fixed(column, row int) constraint.Element {
	return p.fixed[column][row]
}

// SelectorOn implements expr.Trace.
func (p *MockProver) SelectorOn(selector, row int) bool {
	return p.selectors[selector].Test(uint(row))
}

// Field implements expr.Trace.
func (p *MockProver) Field() constraint.Field { return p.f }

// VerifyFailure pinpoints one gate polynomial that did not vanish.
type VerifyFailure struct {
	Gate string
	// Poly is the index of the polynomial within the gate.
	Poly int
	Row  int
}

func (f VerifyFailure) String() string {
	return fmt.Sprintf("gate %q polynomial %d does not vanish on row %d", f.Gate, f.Poly, f.Row)
}

// Failures evaluates every gate polynomial on every row and returns the
// evaluation points that did not vanish.
func (p *MockProver) Failures() []VerifyFailure {
	var failures []VerifyFailure
	for _, gate := range p.cs.Gates() {
		for i, poly := range gate.Polys {
			for row := 0; row < p.n; row++ {
				if v := poly.EvalAt(row, p); !v.IsZero() {
					failures = append(failures, VerifyFailure{Gate: gate.Name, Poly: i, Row: row})
				}
			}
		}
	}
	return failures
}

// Verify returns nil when every gate vanishes on every row, and an error
// listing all failures otherwise.
func (p *MockProver) Verify() error {
	failures := p.Failures()
	if len(failures) == 0 {
		return nil
	}
	msgs := make([]string, len(failures))
	for i, f := range failures {
		msgs[i] = f.String()
	}
	return errors.New(strings.Join(msgs, "; "))
}

// AssertSatisfied panics if any gate fails to vanish.
func (p *MockProver) AssertSatisfied() {
	if err := p.Verify(); err != nil {
		panic(err)
	}
}
