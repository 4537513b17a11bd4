package circuit

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zkgadgets/plonkish/logger"
	"github.com/zkgadgets/plonkish/plonk"
)

// Region is a contiguous span of rows a gadget instance is laid out at.
// All offsets are region-local; the region tracks how many rows it used so
// the layouter can finalize it.
type Region struct {
	name    string
	start   int
	rows    int
	backend Assignment
}

func (r *Region) rowFor(offset int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("%w: negative offset %d in region %q", plonk.ErrAssignment, offset, r.name)
	}
	row := r.start + offset
	if row >= r.backend.Height() {
		return 0, fmt.Errorf("%w: region %q overflows the trace at offset %d (row %d of %d)",
			plonk.ErrAssignment, r.name, offset, row, r.backend.Height())
	}
	if offset+1 > r.rows {
		r.rows = offset + 1
	}
	return row, nil
}

// AssignAdvice writes a witness value to an advice cell at the given offset.
func (r *Region) AssignAdvice(annotation string, col plonk.Advice, offset int, v constraint.Element) (AssignedCell, error) {
	row, err := r.rowFor(offset)
	if err != nil {
		return AssignedCell{}, err
	}
	if err := r.backend.AssignAdvice(col, row, v); err != nil {
		return AssignedCell{}, fmt.Errorf("%s: %w", annotation, err)
	}
	return AssignedCell{Column: col, Row: row, Value: v}, nil
}

// AssignFixed writes a constant to a fixed cell at the given offset.
func (r *Region) AssignFixed(annotation string, col plonk.Fixed, offset int, v constraint.Element) error {
	row, err := r.rowFor(offset)
	if err != nil {
		return err
	}
	if err := r.backend.AssignFixed(col, row, v); err != nil {
		return fmt.Errorf("%s: %w", annotation, err)
	}
	return nil
}

// EnableSelector activates a selector at the given offset.
func (r *Region) EnableSelector(sel plonk.Selector, offset int) error {
	row, err := r.rowFor(offset)
	if err != nil {
		return err
	}
	return r.backend.EnableSelector(sel, row)
}

// Layouter hands out regions to synthesize into.
type Layouter interface {
	// AssignRegion acquires a fresh region, runs fn in it, and finalizes
	// the rows the region used on every exit path.
	AssignRegion(name string, fn func(*Region) error) error
}

// SingleChipLayouter lays regions out one after another in call order,
// starting at row 0.
type SingleChipLayouter struct {
	backend Assignment
	next    int
}

func NewSingleChipLayouter(backend Assignment) *SingleChipLayouter {
	return &SingleChipLayouter{backend: backend}
}

func (l *SingleChipLayouter) AssignRegion(name string, fn func(*Region) error) error {
	r := &Region{name: name, start: l.next, backend: l.backend}
	err := fn(r)
	// rows are finalized even when fn fails
	l.next += r.rows
	if err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	log := logger.Logger()
	log.Debug().Str("region", name).Int("start", r.start).Int("rows", r.rows).Msg("region assigned")
	return nil
}
