// Package value builds scaled values: a mantissa paired with the
// prefix and base that reconstruct the original number.
package value

import (
	"math"
	"strconv"

	"github.com/calebcase/siscale/base"
	"github.com/calebcase/siscale/prefix"
)

// Value is a number scaled to a prefix. Multiplying the mantissa by the
// base's factor for the prefix reconstructs the original number.
type Value struct {
	Mantissa float64
	Prefix   prefix.Prefix
	Base     base.Base
}

// New returns the value of x scaled with base 1000 over the full
// prefix grid.
func New(x float64) Value {
	return NewWith(x, base.B1000, prefix.Unconstrained)
}

// NewWith returns the value of x scaled with the given base to the
// nearest prefix the constraint permits.
//
// Callers holding 64-bit integers convert to float64 first; magnitudes
// beyond 2^53 lose precision in that conversion.
func NewWith(x float64, b base.Base, c prefix.Constraint) Value {
	p := c.Resolve(b.ExponentFor(x))

	return Value{
		Mantissa: x / b.Pow(p.Exponent),
		Prefix:   p,
		Base:     b,
	}
}

// Float64 returns the number the value represents. It inverts NewWith
// up to float64 rounding.
func (v Value) Float64() float64 {
	return v.Mantissa * v.Base.Pow(v.Prefix.Exponent)
}

// Signum returns 1 for a positive mantissa, -1 for a negative one, and
// NaN for a NaN mantissa. The zeros are signed: Signum of negative zero
// is -1.
func (v Value) Signum() float64 {
	if math.IsNaN(v.Mantissa) {
		return math.NaN()
	}
	if math.Signbit(v.Mantissa) {
		return -1
	}

	return 1
}

// String returns a compact form: the shortest mantissa text, followed
// by the prefix symbol when the value is scaled ("530 k", "2.5"). The
// format package gives full control over precision, grouping, and the
// binary infix.
func (v Value) String() string {
	m := strconv.FormatFloat(v.Mantissa, 'f', -1, 64)
	if v.Prefix == prefix.Unit {
		return m
	}

	return m + " " + v.Prefix.Symbol
}
