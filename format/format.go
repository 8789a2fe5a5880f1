// Package format renders scaled values as text.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calebcase/siscale/base"
	"github.com/calebcase/siscale/prefix"
	"github.com/calebcase/siscale/value"
)

// Options control how a value is rendered.
type Options struct {
	// Mantissa is the fmt verb applied to the mantissa, e.g. "%.3f" or
	// "%8.2f". Empty renders the shortest text that reads back to the
	// same float64, never in exponent notation.
	Mantissa string

	// Groupings, when not zero, separates each run of three digits,
	// e.g. '_' renders 1234.5678 as "1_234.567_8".
	Groupings rune

	// Bare renders the mantissa alone, with no prefix and no
	// separating space. Used for plain numbers that carry no unit.
	Bare bool
}

// Formatter renders values with a fixed set of options.
type Formatter struct {
	opts Options
}

// NewFormatter returns a new formatter.
func NewFormatter(opts Options) *Formatter {
	return &Formatter{
		opts: opts,
	}
}

// Format renders the value: the formatted, optionally grouped mantissa,
// a space, the prefix symbol, and the "i" infix when the base is 1024
// and the value is scaled. Unit text is the caller's to append:
//
//  format.Format(value.NewWith(16384, base.B1024, prefix.UnitAndAbove),
//      format.Options{Mantissa: "%.1f"}) + "B"
//
// renders as "16.0 kiB".
func (f *Formatter) Format(v value.Value) string {
	m := mantissa(v.Mantissa, f.opts.Mantissa)

	if f.opts.Groupings != 0 {
		m = SeparateFloat(m, f.opts.Groupings)
	}

	if f.opts.Bare {
		return m
	}

	sb := &strings.Builder{}

	sb.WriteString(m)
	sb.WriteString(" ")
	sb.WriteString(v.Prefix.Symbol)

	if v.Base == base.B1024 && v.Prefix != prefix.Unit {
		sb.WriteString("i")
	}

	return sb.String()
}

// Format renders the value with the given options.
func Format(v value.Value, opts Options) string {
	return NewFormatter(opts).Format(v)
}

func mantissa(x float64, verb string) string {
	if verb == "" {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	return fmt.Sprintf(verb, x)
}

// SeparateFloat groups the digits of a rendered number: the integer
// part from the right, the fractional part from the left. The decimal
// point stays with the fractional part and never gains an adjacent
// separator:
//
//  SeparateFloat("1234.5678", '_') == "1_234.567_8"
func SeparateFloat(s string, sep rune) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return SeparateThousandsBackward(s[:i], sep) +
			SeparateThousandsForward(s[i:], sep)
	}

	return SeparateThousandsBackward(s, sep)
}

// SeparateThousandsBackward inserts sep after every third digit,
// counting from the right. Non-digits pass through untouched and do not
// advance the count, so signs and padding survive:
//
//  SeparateThousandsBackward("-1234567", '_') == "-1_234_567"
//
// Intended for the integer part of a number.
func SeparateThousandsBackward(s string, sep rune) string {
	rs := []rune(s)
	out := make([]rune, 0, len(rs)+len(rs)/3)
	pos := 0

	for i := len(rs) - 1; i >= 0; i-- {
		ch := rs[i]
		if isDigit(ch) {
			if pos > 1 && pos%3 == 0 {
				out = append(out, sep)
			}
			pos++
		}

		out = append(out, ch)
	}

	reverse(out)

	return string(out)
}

// SeparateThousandsForward inserts sep after every third digit,
// counting from the left. Intended for the fractional part of a number:
//
//  SeparateThousandsForward(".1234567", '_') == ".123_456_7"
func SeparateThousandsForward(s string, sep rune) string {
	out := make([]rune, 0, len(s)+len(s)/3)
	pos := 0

	for _, ch := range s {
		if isDigit(ch) {
			if pos > 1 && pos%3 == 0 {
				out = append(out, sep)
			}
			pos++
		}

		out = append(out, ch)
	}

	return string(out)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func reverse(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
