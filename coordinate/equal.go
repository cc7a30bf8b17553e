package coordinate

import (
	"fmt"

	"github.com/hnimtadd/planar/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// DefaultTolerance is the tolerance ApproxEqual uses.
const DefaultTolerance = 1e-15

// Equal reports whether c and o denote the same point, compared exactly.
//
// Two polar coordinates match when their radii are equal and their angles
// are equal modulo τ. Any other pairing is compared on the rectangular
// forms of the normalized values, the same key Hash uses, so the result
// does not depend on which form either side stores.
func (c Coordinate) Equal(o Coordinate) bool {
	switch {
	case c.IsRectangular() && o.IsRectangular():
		return c.a == o.a && c.b == o.b
	case c.IsPolar() && o.IsPolar():
		return c.a == o.a && utils.WrapAngle(c.b) == utils.WrapAngle(o.b)
	default:
		l, r := c.Normalize().ToRect(), o.Normalize().ToRect()
		return l.a == r.a && l.b == r.b
	}
}

// Equals reports whether the distance between c and o is at most tolerance.
func (c Coordinate) Equals(o Coordinate, tolerance float64) bool {
	return c.Sub(o).Abs() <= tolerance
}

// ApproxEqual is Equals with DefaultTolerance.
func (c Coordinate) ApproxEqual(o Coordinate) bool {
	return c.Equals(o, DefaultTolerance)
}

// rectKey is the hashed shape of a coordinate.
type rectKey struct {
	X, Y float64
}

// Hash returns a hash of the rectangular form of c, so coordinates that are
// Equal hash the same whichever form they store. Polar angles are wrapped
// before conversion to match the modulo τ comparison in Equal, and signed
// zeros are folded because -0 == 0 while their bit patterns differ.
func (c Coordinate) Hash() uint64 {
	r := c.Normalize().ToRect()
	key := rectKey{X: utils.PositiveZero(r.a), Y: utils.PositiveZero(r.b)}
	hashed, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash coordinate: %v", err))
	return hashed
}
