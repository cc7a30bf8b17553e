package coordinate

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotSupported is returned when an input or operand has a type the
	// requested operation cannot handle.
	ErrNotSupported = errors.New("operation not supported")

	// ErrInvalidPair is returned when a sequence input does not hold exactly
	// two elements.
	ErrInvalidPair = errors.New("coordinate pair must have exactly 2 elements")
)

// Op is a binary arithmetic operator understood by Apply.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "unknown"
	}
}

// From builds a Coordinate out of a dynamically typed input:
//
//   - a Coordinate is returned unchanged;
//   - a complex64 or complex128 becomes the rectangular (real, imag), rep
//     is ignored;
//   - an array or slice of exactly two real numbers is stored under rep.
//
// Other inputs fail with ErrNotSupported, and sequences of the wrong length
// with ErrInvalidPair.
func From(v any, rep Representation) (Coordinate, error) {
	switch t := v.(type) {
	case Coordinate:
		return t, nil
	case complex128:
		return FromComplex(t), nil
	case complex64:
		return FromComplex64(t), nil
	case [2]float64:
		return FromPair(t, rep), nil
	case []float64:
		if len(t) != 2 {
			return Coordinate{}, fmt.Errorf("%w: got %d", ErrInvalidPair, len(t))
		}
		return Make(t[0], t[1], rep), nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Coordinate{}, fmt.Errorf("%w: cannot build coordinate from nil", ErrNotSupported)
	}
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		if rv.Len() != 2 {
			return Coordinate{}, fmt.Errorf("%w: got %d", ErrInvalidPair, rv.Len())
		}
		a, okA := realValue(rv.Index(0))
		b, okB := realValue(rv.Index(1))
		if okA && okB {
			return Make(a, b, rep), nil
		}
	}
	return Coordinate{}, fmt.Errorf("%w: cannot build coordinate from %T", ErrNotSupported, v)
}

// Apply evaluates lhs op rhs for operands of arbitrary type.
//
// Coordinates add to and subtract from coordinates, and are multiplied or
// divided by real scalars. When lhs cannot take rhs the reflected form is
// tried, which only succeeds for scalar * Coordinate. Every other pairing
// fails with an error wrapping ErrNotSupported.
func Apply(lhs any, op Op, rhs any) (Coordinate, error) {
	if c, ok := lhs.(Coordinate); ok {
		if res, ok := c.apply(op, rhs); ok {
			return res, nil
		}
	}
	if c, ok := rhs.(Coordinate); ok {
		if res, ok := c.applyReflected(op, lhs); ok {
			return res, nil
		}
	}
	return Coordinate{}, fmt.Errorf("%w: %T %s %T", ErrNotSupported, lhs, op, rhs)
}

func (c Coordinate) apply(op Op, other any) (Coordinate, bool) {
	switch op {
	case OpAdd, OpSub:
		o, ok := other.(Coordinate)
		if !ok {
			return Coordinate{}, false
		}
		if op == OpAdd {
			return c.Add(o), true
		}
		return c.Sub(o), true
	case OpMul, OpDiv:
		k, ok := Real(other)
		if !ok {
			return Coordinate{}, false
		}
		if op == OpMul {
			return c.Mul(k), true
		}
		return c.Div(k), true
	}
	return Coordinate{}, false
}

// applyReflected evaluates other op c with c on the right-hand side.
func (c Coordinate) applyReflected(op Op, other any) (Coordinate, bool) {
	if op != OpMul {
		return Coordinate{}, false
	}
	k, ok := Real(other)
	if !ok {
		return Coordinate{}, false
	}
	return Scale(k, c), true
}

// Real reports whether v is a real scalar (any int, uint or float kind) and
// returns it as a float64. Complex numbers and booleans are not real.
func Real(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}
	return realValue(rv)
}

func realValue(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Interface:
		if rv.IsNil() {
			return 0, false
		}
		return realValue(rv.Elem())
	default:
		return 0, false
	}
}

// EqualAny compares c against a dynamically typed value. A Coordinate is
// compared with Equal. An array or slice of exactly two real numbers is
// compared exactly against the stored pair, so a polar coordinate matches
// its (r, θ) and not its (x, y). Anything else is not equal.
func (c Coordinate) EqualAny(v any) bool {
	if o, ok := v.(Coordinate); ok {
		return c.Equal(o)
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		if rv.Len() != 2 {
			return false
		}
		a, okA := realValue(rv.Index(0))
		b, okB := realValue(rv.Index(1))
		return okA && okB && c.a == a && c.b == b
	default:
		return false
	}
}
