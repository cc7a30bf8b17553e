// Package coordinate provides Coordinate, an immutable point on a plane
// stored either in rectangular (x, y) or polar (r, θ) form.
//
// Every accessor is available regardless of the stored form: asking a polar
// coordinate for X computes it, asking a rectangular one for Theta computes
// it. Operations never modify the receiver, they return a new Coordinate.
//
// Coordinates must be compared with Equal (or Equals for a tolerance), not
// with ==: the built-in operator compares the stored pair and tag, so a
// rectangular and a polar value denoting the same point are != even though
// Equal reports true.
package coordinate

import (
	"math"

	"github.com/hnimtadd/planar/utils"
)

// Representation tells which pair a Coordinate stores.
type Representation uint8

const (
	// Rectangular stores cartesian components (x, y).
	Rectangular Representation = iota
	// Polar stores a radial distance and an angle in radians (r, θ).
	Polar
)

func (r Representation) String() string {
	switch r {
	case Rectangular:
		return "rectangular"
	case Polar:
		return "polar"
	default:
		return "unknown"
	}
}

// Coordinate is an ordered pair of reals tagged with its representation.
//
// The zero value is the rectangular origin.
type Coordinate struct {
	rep Representation

	// (x, y) when rep is Rectangular, (r, θ) when rep is Polar.
	a, b float64
}

// New returns the rectangular coordinate (x, y).
func New(x, y float64) Coordinate {
	return Coordinate{rep: Rectangular, a: x, b: y}
}

// NewPolar returns the polar coordinate (r, theta). Neither component is
// validated or normalized: a negative r or an angle outside [0, τ) is kept
// as given.
func NewPolar(r, theta float64) Coordinate {
	return Coordinate{rep: Polar, a: r, b: theta}
}

// Make returns the coordinate storing (a, b) under rep. Any rep other than
// Polar is treated as Rectangular.
func Make(a, b float64, rep Representation) Coordinate {
	if rep != Polar {
		rep = Rectangular
	}
	return Coordinate{rep: rep, a: a, b: b}
}

// FromComplex decomposes z into the rectangular coordinate (real(z), imag(z)).
func FromComplex(z complex128) Coordinate {
	return New(real(z), imag(z))
}

// FromComplex64 is FromComplex for complex64 values.
func FromComplex64(z complex64) Coordinate {
	return FromComplex(complex128(z))
}

// FromPair stores p under rep.
func FromPair(p [2]float64, rep Representation) Coordinate {
	return Make(p[0], p[1], rep)
}

// Representation returns the stored representation.
func (c Coordinate) Representation() Representation { return c.rep }

func (c Coordinate) IsRectangular() bool { return c.rep == Rectangular }

func (c Coordinate) IsPolar() bool { return c.rep == Polar }

// Pair returns the stored components as they are, (x, y) or (r, θ).
func (c Coordinate) Pair() (a, b float64) { return c.a, c.b }

// X returns the x component. A polar angle is wrapped into [0, τ) before
// the conversion, so polar values equal modulo τ give identical components.
func (c Coordinate) X() float64 {
	if c.IsRectangular() {
		return c.a
	}
	return c.a * math.Cos(utils.WrapAngle(c.b))
}

func (c Coordinate) Y() float64 {
	if c.IsRectangular() {
		return c.b
	}
	return c.a * math.Sin(utils.WrapAngle(c.b))
}

// R returns the magnitude. For a polar coordinate this is the stored r,
// which may be negative.
func (c Coordinate) R() float64 {
	if c.IsPolar() {
		return c.a
	}
	return math.Sqrt(c.a*c.a + c.b*c.b)
}

// Theta returns the angle in radians. For a polar coordinate this is the
// stored angle, unnormalized.
func (c Coordinate) Theta() float64 {
	if c.IsPolar() {
		return c.b
	}
	return rectAngle(c.a, c.b)
}
