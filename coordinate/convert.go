package coordinate

import (
	"math"

	"github.com/hnimtadd/planar/utils"
)

// rectAngle is the quadrant-correct angle of (x, y).
//
// Results lie in (-π/2, 3π/2): the atan branch is shifted by π for points
// left of the y axis, points on the y axis get τ/4 or 3τ/4, and the origin
// gets 0.
func rectAngle(x, y float64) float64 {
	switch {
	case x != 0:
		theta := math.Atan(y / x)
		if x < 0 {
			theta += math.Pi
		}
		return theta
	case y > 0:
		return utils.Tau / 4
	case y < 0:
		return utils.Tau * 3 / 4
	default:
		return 0
	}
}

// ToPolar returns c in polar form. A coordinate that is already polar comes
// back normalized.
func (c Coordinate) ToPolar() Coordinate {
	if c.IsPolar() {
		return c.Normalize()
	}
	return NewPolar(c.R(), rectAngle(c.a, c.b))
}

// ToRect returns c in rectangular form. A coordinate that is already
// rectangular is returned as is.
func (c Coordinate) ToRect() Coordinate {
	if c.IsRectangular() {
		return c
	}
	return New(c.X(), c.Y())
}

// To converts c to rep.
func (c Coordinate) To(rep Representation) Coordinate {
	if rep == Polar {
		return c.ToPolar()
	}
	return c.ToRect()
}

// Normalize returns the canonical copy of c. Rectangular coordinates are
// unchanged; polar ones get their angle wrapped into [0, τ).
func (c Coordinate) Normalize() Coordinate {
	if c.IsRectangular() {
		return c
	}
	return NewPolar(c.a, utils.WrapAngle(c.b))
}
