package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkgadgets/plonkish/field/bn254"
)

func TestGetFieldFromOrder(t *testing.T) {
	f := GetFieldFromOrder(bn254.ScalarField)
	require.Equal(t, bn254.ScalarField, f.Field())

	require.Panics(t, func() {
		GetFieldFromOrder(big.NewInt(17))
	})
}

func TestInv0(t *testing.T) {
	f := GetFieldFromOrder(bn254.ScalarField)

	v := f.FromInterface(uint64(5))
	require.True(t, f.IsOne(f.Mul(v, Inv0(f, v))))

	zero := f.FromInterface(uint64(0))
	zeroInv := Inv0(f, zero)
	require.True(t, zeroInv.IsZero())
}

func TestBatchInverterCapability(t *testing.T) {
	f := GetFieldFromOrder(bn254.ScalarField)
	_, ok := f.(BatchInverter)
	require.True(t, ok)
}
