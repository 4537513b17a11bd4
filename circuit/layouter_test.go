package circuit

import (
	"errors"
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/zkgadgets/plonkish/plonk"
)

type cellKey struct {
	column int
	row    int
}

// recordingBackend is a minimal Assignment used to observe where the
// layouter places cells.
type recordingBackend struct {
	height    int
	advice    map[cellKey]constraint.Element
	fixed     map[cellKey]constraint.Element
	selectors map[cellKey]bool
}

func newRecordingBackend(height int) *recordingBackend {
	return &recordingBackend{
		height:    height,
		advice:    make(map[cellKey]constraint.Element),
		fixed:     make(map[cellKey]constraint.Element),
		selectors: make(map[cellKey]bool),
	}
}

func (b *recordingBackend) AssignAdvice(col plonk.Advice, row int, v constraint.Element) error {
	b.advice[cellKey{col.Index, row}] = v
	return nil
}

func (b *recordingBackend) AssignFixed(col plonk.Fixed, row int, v constraint.Element) error {
	b.fixed[cellKey{col.Index, row}] = v
	return nil
}

func (b *recordingBackend) EnableSelector(sel plonk.Selector, row int) error {
	b.selectors[cellKey{sel.Index, row}] = true
	return nil
}

func (b *recordingBackend) Height() int { return b.height }

func TestRegionsAreLaidOutSequentially(t *testing.T) {
	backend := newRecordingBackend(8)
	l := NewSingleChipLayouter(backend)
	col := plonk.Advice{Index: 0}
	v := constraint.Element{1}

	err := l.AssignRegion("first", func(r *Region) error {
		if _, err := r.AssignAdvice("x", col, 0, v); err != nil {
			return err
		}
		_, err := r.AssignAdvice("y", col, 1, v)
		return err
	})
	require.NoError(t, err)

	var second AssignedCell
	err = l.AssignRegion("second", func(r *Region) error {
		var err error
		second, err = r.AssignAdvice("z", col, 0, v)
		return err
	})
	require.NoError(t, err)

	// the first region used rows 0..1, so the second starts at row 2
	require.Equal(t, 2, second.Row)
	require.Equal(t, col, second.Column)
	require.Contains(t, backend.advice, cellKey{0, 2})
}

func TestRegionOverflow(t *testing.T) {
	backend := newRecordingBackend(4)
	l := NewSingleChipLayouter(backend)
	col := plonk.Advice{Index: 0}

	err := l.AssignRegion("big", func(r *Region) error {
		_, err := r.AssignAdvice("x", col, 5, constraint.Element{})
		return err
	})
	require.ErrorIs(t, err, plonk.ErrAssignment)
}

func TestNegativeOffset(t *testing.T) {
	backend := newRecordingBackend(4)
	l := NewSingleChipLayouter(backend)

	err := l.AssignRegion("neg", func(r *Region) error {
		return r.EnableSelector(plonk.Selector{Index: 0}, -1)
	})
	require.ErrorIs(t, err, plonk.ErrAssignment)
}

func TestRegionRowsFinalizedOnFailure(t *testing.T) {
	backend := newRecordingBackend(8)
	l := NewSingleChipLayouter(backend)
	col := plonk.Advice{Index: 0}
	boom := errors.New("boom")

	err := l.AssignRegion("failing", func(r *Region) error {
		if _, err := r.AssignAdvice("x", col, 0, constraint.Element{}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// the failing region still claimed its row
	var next AssignedCell
	err = l.AssignRegion("after", func(r *Region) error {
		var err error
		next, err = r.AssignAdvice("y", col, 0, constraint.Element{})
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, next.Row)
}

func TestFixedAndSelectorWrites(t *testing.T) {
	backend := newRecordingBackend(4)
	l := NewSingleChipLayouter(backend)

	err := l.AssignRegion("r", func(r *Region) error {
		if err := r.AssignFixed("zero", plonk.Fixed{Index: 0}, 0, constraint.Element{}); err != nil {
			return err
		}
		return r.EnableSelector(plonk.Selector{Index: 0}, 0)
	})
	require.NoError(t, err)
	require.Contains(t, backend.fixed, cellKey{0, 0})
	require.True(t, backend.selectors[cellKey{0, 0}])
}
