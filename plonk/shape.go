package plonk

import (
	"io"
	"sort"

	"github.com/fxamacker/cbor/v2"

	"github.com/zkgadgets/plonkish/expr"
)

// GateShape is the structural summary of a registered gate.
type GateShape struct {
	Name    string `cbor:"name"`
	Polys   int    `cbor:"polys"`
	Degree  int    `cbor:"degree"`
	Queries int    `cbor:"queries"`
}

// Shape is a canonical description of a configured circuit: column and
// selector counts, capability flags and per-gate summaries. Two independent
// configuration passes of the same circuit produce equal shapes.
type Shape struct {
	NumAdvice    int         `cbor:"advice"`
	NumFixed     int         `cbor:"fixed"`
	NumSelectors int         `cbor:"selectors"`
	Equality     []int       `cbor:"equality"`
	Constants    []int       `cbor:"constants"`
	Gates        []GateShape `cbor:"gates"`
}

// Shape snapshots the structural description of the system.
func (cs *ConstraintSystem) Shape() Shape {
	s := Shape{
		NumAdvice:    cs.numAdvice,
		NumFixed:     cs.numFixed,
		NumSelectors: cs.numSelectors,
		Equality:     sortedKeys(cs.equality),
		Constants:    sortedKeys(cs.constants),
	}
	for _, g := range cs.gates {
		queries := 0
		for _, p := range g.Polys {
			p.Visit(func(expr.Query) { queries++ })
		}
		s.Gates = append(s.Gates, GateShape{
			Name:    g.Name,
			Polys:   len(g.Polys),
			Degree:  g.Degree(),
			Queries: queries,
		})
	}
	return s
}

func sortedKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Equal reports whether two shapes are structurally identical.
func (s Shape) Equal(o Shape) bool {
	if s.NumAdvice != o.NumAdvice || s.NumFixed != o.NumFixed || s.NumSelectors != o.NumSelectors {
		return false
	}
	if !intsEqual(s.Equality, o.Equality) || !intsEqual(s.Constants, o.Constants) {
		return false
	}
	if len(s.Gates) != len(o.Gates) {
		return false
	}
	for i := range s.Gates {
		if s.Gates[i] != o.Gates[i] {
			return false
		}
	}
	return true
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Encode writes the shape to w in CBOR.
func (s Shape) Encode(w io.Writer) error {
	return cbor.NewEncoder(w).Encode(s)
}

// Bytes returns the CBOR encoding of the shape.
func (s Shape) Bytes() ([]byte, error) {
	return cbor.Marshal(s)
}

// DecodeShape reads a CBOR-encoded shape from r.
func DecodeShape(r io.Reader) (Shape, error) {
	var s Shape
	if err := cbor.NewDecoder(r).Decode(&s); err != nil {
		return Shape{}, err
	}
	return s, nil
}
