package coordinate

// Add returns c + o. The sum is computed on the rectangular forms and comes
// back polar when c is polar.
func (c Coordinate) Add(o Coordinate) Coordinate {
	l, r := c.ToRect(), o.ToRect()
	return c.fromRect(l.a+r.a, l.b+r.b)
}

// Sub returns c - o, keeping the representation of c like Add does.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	l, r := c.ToRect(), o.ToRect()
	return c.fromRect(l.a-r.a, l.b-r.b)
}

// fromRect converts the rectangular result of an operation on c back into
// the representation of c.
func (c Coordinate) fromRect(x, y float64) Coordinate {
	sum := New(x, y)
	if c.IsPolar() {
		return sum.ToPolar()
	}
	return sum
}

// Mul scales c by k. A polar coordinate keeps its angle and is normalized.
func (c Coordinate) Mul(k float64) Coordinate {
	if c.IsRectangular() {
		return New(c.a*k, c.b*k)
	}
	return NewPolar(c.a*k, c.b).Normalize()
}

// Div divides c by k. Division by zero yields infinities or NaN.
func (c Coordinate) Div(k float64) Coordinate {
	if c.IsRectangular() {
		return New(c.a/k, c.b/k)
	}
	return NewPolar(c.a/k, c.b).Normalize()
}

// Scale is k * c, the scalar-on-the-left form of Mul.
func Scale(k float64, c Coordinate) Coordinate {
	return c.Mul(k)
}

// Neg negates both stored components.
//
// For a polar coordinate the result is (-r, -θ), which mirrors the point
// across the y axis. Use Mul(-1) for the point opposite c.
func (c Coordinate) Neg() Coordinate {
	return Make(-c.a, -c.b, c.rep).Normalize()
}

// Conjugate negates the second stored component, y or θ.
func (c Coordinate) Conjugate() Coordinate {
	return Make(c.a, -c.b, c.rep).Normalize()
}

// Abs is the magnitude, R.
func (c Coordinate) Abs() float64 {
	return c.R()
}

// Rotate turns c anticlockwise by angle radians around the origin. The
// result keeps the representation of c; a polar result is normalized.
func (c Coordinate) Rotate(angle float64) Coordinate {
	p := c.ToPolar()
	rotated := NewPolar(p.a, p.b+angle).Normalize()
	if c.IsRectangular() {
		return rotated.ToRect()
	}
	return rotated
}
