package coordinate

import (
	"math"
	"testing"

	"github.com/hnimtadd/planar/utils"
	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func TestNew_Accessors(t *testing.T) {
	c := New(3, 4)
	assert.True(t, c.IsRectangular())
	assert.False(t, c.IsPolar())
	assert.Equal(t, Rectangular, c.Representation())
	assert.Equal(t, 3.0, c.X())
	assert.Equal(t, 4.0, c.Y())
	assert.Equal(t, 5.0, c.R())
	assert.Equal(t, math.Atan(4.0/3.0), c.Theta())
}

func TestNewPolar_Accessors(t *testing.T) {
	c := NewPolar(2, math.Pi/2)
	assert.True(t, c.IsPolar())
	assert.Equal(t, Polar, c.Representation())
	assert.Equal(t, 2.0, c.R())
	assert.Equal(t, math.Pi/2, c.Theta())
	assert.InDelta(t, 0, c.X(), delta)
	assert.InDelta(t, 2, c.Y(), delta)
}

func TestNewPolar_KeepsComponentsAsGiven(t *testing.T) {
	c := NewPolar(-1, 9)
	a, b := c.Pair()
	assert.Equal(t, -1.0, a)
	assert.Equal(t, 9.0, b)
	assert.Equal(t, -1.0, c.Abs())
}

func TestZeroValue_IsRectangularOrigin(t *testing.T) {
	var c Coordinate
	assert.True(t, c.IsRectangular())
	assert.True(t, c.Equal(New(0, 0)))
}

func TestMake(t *testing.T) {
	assert.True(t, Make(1, 2, Polar).IsPolar())
	assert.True(t, Make(1, 2, Rectangular).IsRectangular())
	assert.True(t, Make(1, 2, Representation(7)).IsRectangular())
}

func TestFromComplex(t *testing.T) {
	c := FromComplex(complex(1.5, -2))
	assert.True(t, c.IsRectangular())
	assert.Equal(t, 1.5, c.X())
	assert.Equal(t, -2.0, c.Y())

	c64 := FromComplex64(complex64(complex(0.5, 4)))
	assert.True(t, c64.Equal(New(0.5, 4)))
}

func TestFromPair(t *testing.T) {
	c := FromPair([2]float64{1, math.Pi}, Polar)
	assert.True(t, c.IsPolar())
	assert.Equal(t, 1.0, c.R())
	assert.Equal(t, math.Pi, c.Theta())
}

func TestRepresentation_String(t *testing.T) {
	assert.Equal(t, "rectangular", Rectangular.String())
	assert.Equal(t, "polar", Polar.String())
	assert.Equal(t, "unknown", Representation(9).String())
}

func TestToPolar_Quadrants(t *testing.T) {
	cases := []struct {
		name      string
		in        Coordinate
		wantR     float64
		wantTheta float64
	}{
		{"first quadrant", New(3, 4), 5, math.Atan(4.0 / 3.0)},
		{"origin", New(0, 0), 0, 0},
		{"negative x axis", New(-1, 0), 1, math.Pi},
		{"positive y axis", New(0, 3), 3, utils.Tau / 4},
		{"negative y axis", New(0, -2), 2, 3 * utils.Tau / 4},
		{"second quadrant", New(-1, 1), math.Sqrt2, 3 * math.Pi / 4},
		{"third quadrant", New(-1, -1), math.Sqrt2, 5 * math.Pi / 4},
		{"fourth quadrant", New(1, -1), math.Sqrt2, -math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in.ToPolar()
			assert.True(t, p.IsPolar())
			assert.InDelta(t, tc.wantR, p.R(), delta)
			assert.InDelta(t, tc.wantTheta, p.Theta(), delta)
		})
	}
}

func TestToPolar_ExactCases(t *testing.T) {
	assert.Equal(t, 5.0, New(3, 4).ToPolar().R())
	assert.Equal(t, 0.0, New(0, 0).ToPolar().R())
	assert.Equal(t, 0.0, New(0, 0).Theta())
	assert.Equal(t, math.Pi, New(-1, 0).Theta())
	assert.Equal(t, utils.Tau*3/4, New(0, -2).Theta())
}

func TestToPolar_NormalizesPolar(t *testing.T) {
	p := NewPolar(1, -math.Pi/2).ToPolar()
	assert.True(t, p.IsPolar())
	assert.Equal(t, 1.0, p.R())
	assert.InDelta(t, 3*math.Pi/2, p.Theta(), delta)
}

func TestToRect(t *testing.T) {
	c := New(1, 2)
	assert.Equal(t, c, c.ToRect())

	r := NewPolar(2, math.Pi).ToRect()
	assert.True(t, r.IsRectangular())
	assert.InDelta(t, -2, r.X(), delta)
	assert.InDelta(t, 0, r.Y(), delta)
}

func TestToRect_NegativeRadius(t *testing.T) {
	r := NewPolar(-1, 0).ToRect()
	assert.Equal(t, -1.0, r.X())
	assert.Equal(t, 0.0, r.Y())

	p := r.ToPolar()
	assert.Equal(t, 1.0, p.R())
	assert.Equal(t, math.Pi, p.Theta())
}

func TestTo(t *testing.T) {
	assert.True(t, New(1, 1).To(Polar).IsPolar())
	assert.True(t, NewPolar(1, 1).To(Rectangular).IsRectangular())
}

func TestConversion_RoundTrip(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {1, 0}, {0, 1}, {-1, 0}, {0, -1},
		{3, 4}, {-3, 4}, {-3, -4}, {3, -4},
		{1e-8, 2e8}, {-123.456, 0.001}, {42, -42},
	}
	for _, p := range points {
		c := New(p[0], p[1])
		back := c.ToPolar().ToRect()
		assert.InDelta(t, c.X(), back.X(), 1e-6*math.Max(1, c.R()), "x of %v", c)
		assert.InDelta(t, c.Y(), back.Y(), 1e-6*math.Max(1, c.R()), "y of %v", c)
	}

	for _, r := range []float64{0.5, 1, 2, 10} {
		for _, theta := range []float64{-7, -1, 0, 0.3, 2, 4, 6, 13} {
			c := NewPolar(r, theta)
			back := c.ToRect().ToPolar()
			assert.InDelta(t, r, back.R(), delta)
			assert.InDelta(t, utils.WrapAngle(theta), utils.WrapAngle(back.Theta()), delta)
		}
	}
}

func TestNormalize(t *testing.T) {
	c := New(-5, 7)
	assert.Equal(t, c, c.Normalize())

	p := NewPolar(2, 3*utils.Tau+1).Normalize()
	assert.True(t, p.IsPolar())
	assert.Equal(t, 2.0, p.R())
	assert.InDelta(t, 1, p.Theta(), delta)

	n := NewPolar(2, -1).Normalize()
	assert.InDelta(t, utils.Tau-1, n.Theta(), delta)
}
