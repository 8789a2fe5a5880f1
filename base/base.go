// Package base provides the multiplicative radix of the scale grid.
//
// The equation for a scaled number is:
//
//  number = mantissa * radix ^ (exponent / 3)
//
// Where radix is 1000 for decimal SI scaling or 1024 for binary IEC
// scaling, and exponent is a multiple of 3 drawn from the prefix grid.
package base

import "math"

// Base selects the radix used to scale a number.
type Base int

const (
	// B1000 scales by powers of 1000 (SI, decimal). It is the zero
	// value and the default wherever a base is not given.
	B1000 Base = iota

	// B1024 scales by powers of 1024 (IEC, binary).
	B1024
)

// maxSteps bounds the grid exponent well outside any finite float64
// magnitude (|log10| < 309 for all finite values).
const maxSteps = 1 << 20

// Float returns the radix as a float64.
func (b Base) Float() float64 {
	if b == B1024 {
		return 1024
	}

	return 1000
}

// ExponentFor returns the grid exponent of x: the largest multiple of 3
// such that radix^(exponent/3) <= |x|. Zero of either sign is reported
// at exponent 0 directly; its logarithm must not be taken.
//
// The computation is a plain floored float logarithm. Values sitting on
// an exact power boundary may land one step off due to rounding in the
// logarithm; no compensation is applied.
func (b Base) ExponentFor(x float64) int {
	if x == 0 {
		return 0
	}

	var steps float64
	if b == B1024 {
		steps = math.Floor(math.Log2(math.Abs(x)) / 10)
	} else {
		steps = math.Floor(math.Log10(math.Abs(x)) / 3)
	}

	// Converting an out-of-range float64 to int is undefined, so
	// saturate first. Only NaN and the infinities reach these arms.
	switch {
	case math.IsNaN(steps):
		return 0
	case steps > maxSteps:
		return 3 * maxSteps
	case steps < -maxSteps:
		return -3 * maxSteps
	}

	return 3 * int(steps)
}

// pow10 holds the decimal scaling factors across the prefix grid. They
// are spelled as literals: math.Pow(1000, -8) comes out one ulp above
// 1e-24, while every other grid power matches its literal. The binary
// powers have no such defect and are computed directly.
var pow10 = [...]float64{
	1e-24, 1e-21, 1e-18, 1e-15, 1e-12, 1e-9, 1e-6, 1e-3,
	1,
	1e3, 1e6, 1e9, 1e12, 1e15, 1e18, 1e21, 1e24,
}

// Pow returns the scaling factor radix^(exponent/3).
func (b Base) Pow(exponent int) float64 {
	if b == B1000 && exponent >= -24 && exponent <= 24 && exponent%3 == 0 {
		return pow10[(exponent+24)/3]
	}

	return math.Pow(b.Float(), float64(exponent/3))
}
