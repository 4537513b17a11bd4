package gadgets

import (
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/zkgadgets/plonkish/circuit"
	"github.com/zkgadgets/plonkish/dev"
	"github.com/zkgadgets/plonkish/plonk"
)

type rangeCheckCircuit struct {
	bound uint64
	value constraint.Element

	config  RangeCheckConfig
	checked RangeConstrained
}

func (c *rangeCheckCircuit) Configure(cs *plonk.ConstraintSystem) {
	value := cs.AdviceColumn()
	c.config = ConfigureRangeCheck(cs, value, c.bound)
}

func (c *rangeCheckCircuit) Synthesize(l circuit.Layouter) error {
	chip := NewRangeCheckChip(c.config)
	return l.AssignRegion("assign value", func(r *circuit.Region) error {
		var err error
		c.checked, err = chip.Assign(r, 0, c.value)
		return err
	})
}

func TestRangeCheckMembership(t *testing.T) {
	f := testField()
	const bound = 8

	for i := uint64(0); i < bound; i++ {
		c := &rangeCheckCircuit{bound: bound, value: f.FromInterface(i)}
		p, err := dev.Run(4, c, f)
		require.NoError(t, err)
		require.NoError(t, p.Verify(), "value %d", i)
	}

	// the boundary just outside the range must fail
	c := &rangeCheckCircuit{bound: bound, value: f.FromInterface(uint64(bound))}
	p, err := dev.Run(4, c, f)
	require.NoError(t, err)
	require.Error(t, p.Verify())
}

func TestRangeCheckWitnessIsTheInput(t *testing.T) {
	f := testField()

	// the constrained cell stores the original value, not the vanishing
	// product evaluated over it
	c := &rangeCheckCircuit{bound: 8, value: f.FromInterface(uint64(5))}
	p, err := dev.Run(4, c, f)
	require.NoError(t, err)
	require.NoError(t, p.Verify())

	require.Equal(t, f.FromInterface(uint64(5)), p.Advice(c.config.Value.Index, 0))
	require.Equal(t, f.FromInterface(uint64(5)), c.checked.Cell.Value)
	require.Equal(t, c.config.Value, c.checked.Cell.Column)
}

func TestRangeCheckBoundOne(t *testing.T) {
	f := testField()

	c := &rangeCheckCircuit{bound: 1, value: f.FromInterface(uint64(0))}
	p, err := dev.Run(4, c, f)
	require.NoError(t, err)
	require.NoError(t, p.Verify())

	c = &rangeCheckCircuit{bound: 1, value: f.FromInterface(uint64(1))}
	p, err = dev.Run(4, c, f)
	require.NoError(t, err)
	require.Error(t, p.Verify())
}

func TestRangeCheckZeroBound(t *testing.T) {
	f := testField()

	cs := plonk.NewConstraintSystem(f)
	value := cs.AdviceColumn()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, plonk.ErrConfiguration)
	}()
	ConfigureRangeCheck(cs, value, 0)
}

func TestRangeCheckGateDegree(t *testing.T) {
	f := testField()

	cs := plonk.NewConstraintSystem(f)
	value := cs.AdviceColumn()
	ConfigureRangeCheck(cs, value, 8)

	gates := cs.Gates()
	require.Len(t, gates, 1)
	// selector, the value factor, and bound-1 linear factors
	require.Equal(t, 9, gates[0].Degree())
}

func TestRangeCheckConfigureIdempotence(t *testing.T) {
	f := testField()

	shapeOf := func(bound uint64) plonk.Shape {
		cs := plonk.NewConstraintSystem(f)
		ConfigureRangeCheck(cs, cs.AdviceColumn(), bound)
		return cs.Shape()
	}

	require.True(t, shapeOf(8).Equal(shapeOf(8)))
	require.False(t, shapeOf(8).Equal(shapeOf(4)))
}
