// Package field abstracts the finite-field engine the constraint system and
// gadgets compute with, based on gnark's constraint.Field.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/zkgadgets/plonkish/field/bn254"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

// BatchInverter is an optional engine capability. BatchInverse inverts all
// elements of v with a single field inversion; zero entries stay zero, so the
// result is bit-identical to an element-wise inv0.
type BatchInverter interface {
	BatchInverse(v []constraint.Element) []constraint.Element
}

// Inv0 returns the inverse of a, or the zero element when a is zero.
func Inv0(f Field, a constraint.Element) constraint.Element {
	inv, ok := f.Inverse(a)
	if !ok {
		return constraint.Element{}
	}
	return inv
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
