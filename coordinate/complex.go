package coordinate

// Complex128 returns x + yi.
func (c Coordinate) Complex128() complex128 {
	r := c.ToRect()
	return complex(r.a, r.b)
}

// Complex64 returns x + yi narrowed to complex64.
func (c Coordinate) Complex64() complex64 {
	return complex64(c.Complex128())
}

// ToComplex builds a caller-defined complex value from the rectangular
// components of c.
func ToComplex[T any](c Coordinate, ctor func(re, im float64) T) T {
	r := c.ToRect()
	return ctor(r.a, r.b)
}
