package coordinate

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	dw "github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders c the way it was stored: Coordinate(x, y) or
// Coordinate(r, θ, false).
func (c Coordinate) String() string {
	if c.IsRectangular() {
		return "Coordinate(" + formatFloat(c.a) + ", " + formatFloat(c.b) + ")"
	}
	return "Coordinate(" + formatFloat(c.a) + ", " + formatFloat(c.b) + ", false)"
}

// Format implements fmt.Formatter.
//
// %v and %s print String. %+v also prints the other representation after an
// equals sign. The float verbs (%e %E %f %F %g %G) are applied to each
// stored component, honouring width, precision and flags.
func (c Coordinate) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(s, c.String())
		if verb == 'v' && s.Flag('+') {
			other := c.ToPolar()
			if c.IsPolar() {
				other = c.ToRect()
			}
			io.WriteString(s, " = "+other.String())
		}
	case 'e', 'E', 'f', 'F', 'g', 'G':
		f := fmt.FormatString(s, verb)
		fmt.Fprintf(s, "Coordinate("+f+", "+f, c.a, c.b)
		if c.IsPolar() {
			io.WriteString(s, ", false")
		}
		io.WriteString(s, ")")
	default:
		fmt.Fprintf(s, "%%!%c(coordinate.Coordinate=%s)", verb, c.String())
	}
}

// Localized renders c with the digit grouping and decimal separator of tag,
// using prec fraction digits, or the locale's default precision when prec is
// negative. Components are separated by semicolons since many locales use a
// decimal comma.
func (c Coordinate) Localized(tag language.Tag, prec int) string {
	p := message.NewPrinter(tag)
	num := func(v float64) string {
		if prec < 0 {
			return p.Sprintf("%v", number.Decimal(v))
		}
		return p.Sprintf("%v", number.Decimal(v, number.Scale(prec)))
	}

	var b strings.Builder
	b.WriteString("Coordinate(")
	b.WriteString(num(c.a))
	b.WriteString("; ")
	b.WriteString(num(c.b))
	if c.IsPolar() {
		b.WriteString("; false")
	}
	b.WriteString(")")
	return b.String()
}

var tableHeader = []string{"x", "y", "r", "θ"}

// Tabulate writes cs to w as a right-aligned text table with one row per
// coordinate and the columns x, y, r and θ.
func Tabulate(w io.Writer, cs []Coordinate) error {
	rows := make([][]string, 0, len(cs)+1)
	rows = append(rows, tableHeader)
	for _, c := range cs {
		rows = append(rows, []string{
			formatFloat(c.X()),
			formatFloat(c.Y()),
			formatFloat(c.R()),
			formatFloat(c.Theta()),
		})
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], dw.StringWidth(cell))
		}
	}

	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	rows = slices.Insert(rows, 1, rule)

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = dw.FillLeft(cell, widths[i])
		}
		if _, err := io.WriteString(w, strings.Join(cells, "  ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
