package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/hnimtadd/planar/coordinate"
	"github.com/hnimtadd/planar/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const usage = `commands:
  polar a b            convert to polar
  rect a b             convert to rectangular
  add a1 b1 a2 b2      sum
  sub a1 b1 a2 b2      difference
  mul a b k            scale by k
  div a b k            divide by k
  rotate a b angle     rotate anticlockwise by angle radians
  neg a b              negate
  conj a b             conjugate
  abs a b              magnitude
  eq a1 b1 a2 b2 [tol] approximate equality, tol defaults to 1e-15
  table a1 b1 ...      tabulate x, y, r and θ of every pair`

var commands = []string{
	"polar", "rect", "add", "sub", "mul", "div",
	"rotate", "neg", "conj", "abs", "eq", "table",
}

type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

type runner struct {
	out   io.Writer
	log   logger.Logger
	polar bool
	prec  int
	lang  language.Tag
}

func (r *runner) run(args []string) error {
	if len(args) == 0 {
		return usagef("missing command")
	}
	cmd, args := args[0], args[1:]
	r.log.Debug("evaluating", "command", cmd, "args", args)
	if !slices.Contains(commands, cmd) {
		return usagef("unknown command %q", cmd)
	}

	nums, err := parseNumbers(args)
	if err != nil {
		return err
	}

	switch cmd {
	case "polar", "rect", "neg", "conj", "abs":
		if len(nums) != 2 {
			return usagef("%s takes 2 numbers, got %d", cmd, len(nums))
		}
		c := r.pair(nums[0], nums[1])
		switch cmd {
		case "polar":
			return r.print(c.ToPolar())
		case "rect":
			return r.print(c.ToRect())
		case "neg":
			return r.print(c.Neg())
		case "conj":
			return r.print(c.Conjugate())
		default:
			return r.printScalar(c.Abs())
		}

	case "add", "sub":
		if len(nums) != 4 {
			return usagef("%s takes 4 numbers, got %d", cmd, len(nums))
		}
		op := coordinate.OpAdd
		if cmd == "sub" {
			op = coordinate.OpSub
		}
		return r.apply(r.pair(nums[0], nums[1]), op, r.pair(nums[2], nums[3]))

	case "mul", "div":
		if len(nums) != 3 {
			return usagef("%s takes 3 numbers, got %d", cmd, len(nums))
		}
		op := coordinate.OpMul
		if cmd == "div" {
			op = coordinate.OpDiv
		}
		return r.apply(r.pair(nums[0], nums[1]), op, nums[2])

	case "rotate":
		if len(nums) != 3 {
			return usagef("rotate takes 3 numbers, got %d", len(nums))
		}
		return r.print(r.pair(nums[0], nums[1]).Rotate(nums[2]))

	case "eq":
		if len(nums) != 4 && len(nums) != 5 {
			return usagef("eq takes 4 or 5 numbers, got %d", len(nums))
		}
		tol := coordinate.DefaultTolerance
		if len(nums) == 5 {
			tol = nums[4]
		}
		eq := r.pair(nums[0], nums[1]).Equals(r.pair(nums[2], nums[3]), tol)
		_, err := fmt.Fprintln(r.out, eq)
		return err

	case "table":
		if len(nums) == 0 || len(nums)%2 != 0 {
			return usagef("table takes a non-empty list of pairs, got %d numbers", len(nums))
		}
		cs := make([]coordinate.Coordinate, 0, len(nums)/2)
		for i := 0; i < len(nums); i += 2 {
			cs = append(cs, r.pair(nums[i], nums[i+1]))
		}
		return coordinate.Tabulate(r.out, cs)

	default:
		return usagef("unknown command %q", cmd)
	}
}

func parseNumbers(args []string) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, usagef("invalid number %q", arg)
		}
		nums[i] = v
	}
	return nums, nil
}

func (r *runner) pair(a, b float64) coordinate.Coordinate {
	rep := coordinate.Rectangular
	if r.polar {
		rep = coordinate.Polar
	}
	return coordinate.Make(a, b, rep)
}

func (r *runner) apply(lhs coordinate.Coordinate, op coordinate.Op, rhs any) error {
	res, err := coordinate.Apply(lhs, op, rhs)
	if err != nil {
		return err
	}
	r.log.Debug("applied", "lhs", lhs, "op", op, "rhs", rhs, "result", res)
	return r.print(res)
}

func (r *runner) print(c coordinate.Coordinate) error {
	var err error
	switch {
	case r.lang != language.Und:
		_, err = fmt.Fprintln(r.out, c.Localized(r.lang, r.prec))
	case r.prec >= 0:
		_, err = fmt.Fprintf(r.out, "%.*f\n", r.prec, c)
	default:
		_, err = fmt.Fprintln(r.out, c)
	}
	return err
}

func (r *runner) printScalar(v float64) error {
	s := strconv.FormatFloat(v, 'f', r.prec, 64)
	if r.lang != language.Und {
		p := message.NewPrinter(r.lang)
		if r.prec < 0 {
			s = p.Sprintf("%v", number.Decimal(v))
		} else {
			s = p.Sprintf("%v", number.Decimal(v, number.Scale(r.prec)))
		}
	}
	_, err := fmt.Fprintln(r.out, s)
	return err
}
