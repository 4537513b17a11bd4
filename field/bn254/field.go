package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"
)

var ScalarField = fr.Modulus()

type Field struct{}

// Elements store the four Montgomery limbs of an fr.Element in the first four
// slots of a constraint.Element. All conversions stay inside this package.
func toFr(a constraint.Element) fr.Element {
	return fr.Element{a[0], a[1], a[2], a[3]}
}

func fromFr(e fr.Element) constraint.Element {
	return constraint.Element{e[0], e[1], e[2], e[3]}
}

func (engine *Field) FromInterface(i interface{}) constraint.Element {
	var e fr.Element
	if _, err := e.SetInterface(i); err != nil {
		// the only non-Element inputs are compile-time constants
		panic(err)
	}
	return fromFr(e)
}

func (engine *Field) ToBigInt(a constraint.Element) *big.Int {
	e := toFr(a)
	r := new(big.Int)
	e.BigInt(r)
	return r
}

func (engine *Field) Mul(a, b constraint.Element) constraint.Element {
	ea, eb := toFr(a), toFr(b)
	ea.Mul(&ea, &eb)
	return fromFr(ea)
}

func (engine *Field) Add(a, b constraint.Element) constraint.Element {
	ea, eb := toFr(a), toFr(b)
	ea.Add(&ea, &eb)
	return fromFr(ea)
}

func (engine *Field) Sub(a, b constraint.Element) constraint.Element {
	ea, eb := toFr(a), toFr(b)
	ea.Sub(&ea, &eb)
	return fromFr(ea)
}

func (engine *Field) Neg(a constraint.Element) constraint.Element {
	ea := toFr(a)
	ea.Neg(&ea)
	return fromFr(ea)
}

func (engine *Field) Inverse(a constraint.Element) (constraint.Element, bool) {
	ea := toFr(a)
	if ea.IsZero() {
		return constraint.Element{}, false
	}
	ea.Inverse(&ea)
	return fromFr(ea), true
}

// BatchInverse inverts all elements of v with a single field inversion
// (Montgomery's trick, via fr.BatchInvert). Zero entries stay zero.
func (engine *Field) BatchInverse(v []constraint.Element) []constraint.Element {
	in := make([]fr.Element, len(v))
	for i, a := range v {
		in[i] = toFr(a)
	}
	out := fr.BatchInvert(in)
	res := make([]constraint.Element, len(out))
	for i := range out {
		res[i] = fromFr(out[i])
	}
	return res
}

func (engine *Field) One() constraint.Element {
	var e fr.Element
	e.SetOne()
	return fromFr(e)
}

func (engine *Field) IsOne(a constraint.Element) bool {
	e := toFr(a)
	return e.IsOne()
}

func (engine *Field) String(a constraint.Element) string {
	e := toFr(a)
	return e.String()
}

func (engine *Field) Uint64(a constraint.Element) (uint64, bool) {
	e := toFr(a)
	if !e.IsUint64() {
		return 0, false
	}
	return e.Uint64(), true
}

func (engine *Field) Field() *big.Int {
	return fr.Modulus()
}

func (engine *Field) FieldBitLen() int {
	return fr.Modulus().BitLen()
}
