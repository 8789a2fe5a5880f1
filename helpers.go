package siscale

import (
	"github.com/calebcase/siscale/base"
	"github.com/calebcase/siscale/format"
	"github.com/calebcase/siscale/prefix"
	"github.com/calebcase/siscale/value"
)

// FormatFunc returns a function rendering numbers with a fixed base,
// constraint, options, and unit. Every helper in this package is built
// with it; bring-your-own-unit callers compose the same way:
//
//  bitrate := siscale.FormatFunc(
//      base.B1024,
//      prefix.UnitAndAbove,
//      format.Options{Mantissa: "%.2f"},
//      "bit/s",
//  )
//  bitrate(2.1 * 1024) // "2.10 kibit/s"
func FormatFunc(b base.Base, c prefix.Constraint, opts format.Options, unit string) func(float64) string {
	f := format.NewFormatter(opts)

	return func(x float64) string {
		return f.Format(value.NewWith(x, b, c)) + unit
	}
}

var (
	numberFn       = FormatFunc(base.B1000, prefix.UnitOnly, format.Options{Groupings: '_', Bare: true}, "")
	secondsFn      = FormatFunc(base.B1000, prefix.UnitAndBelow, format.Options{}, "s")
	seconds3Fn     = FormatFunc(base.B1000, prefix.UnitAndBelow, format.Options{Mantissa: "%.3f"}, "s")
	bytesFn        = FormatFunc(base.B1000, prefix.UnitAndAbove, format.Options{}, "B")
	bytesGroupedFn = FormatFunc(base.B1000, prefix.UnitOnly, format.Options{Groupings: '_'}, "B")
	bytes1Fn       = FormatFunc(base.B1000, prefix.UnitAndAbove, format.Options{Mantissa: "%.1f"}, "B")
	bytes2Fn       = FormatFunc(base.B1000, prefix.UnitAndAbove, format.Options{Mantissa: "%.2f"}, "B")
	bibytesFn      = FormatFunc(base.B1024, prefix.UnitAndAbove, format.Options{}, "B")
	bibytes1Fn     = FormatFunc(base.B1024, prefix.UnitAndAbove, format.Options{Mantissa: "%.1f"}, "B")
	bibytes2Fn     = FormatFunc(base.B1024, prefix.UnitAndAbove, format.Options{Mantissa: "%.2f"}, "B")
)

// Number renders a bare grouped number with no scaling and no unit:
// Number(1234.5678) == "1_234.567_8".
func Number(x float64) string {
	return numberFn(x)
}

// Seconds renders seconds scaled at or below the unit:
// Seconds(1.3e-5) == "13 µs".
func Seconds(x float64) string {
	return secondsFn(x)
}

// Seconds3 renders seconds with three decimals:
// Seconds3(1234.5678) == "1234.568 s".
func Seconds3(x float64) string {
	return seconds3Fn(x)
}

// Bytes renders bytes scaled at or above the unit:
// Bytes(1234567) == "1.234567 MB".
func Bytes(x float64) string {
	return bytesFn(x)
}

// BytesGrouped renders an unscaled grouped byte count:
// BytesGrouped(1234567) == "1_234_567 B".
func BytesGrouped(x float64) string {
	return bytesGroupedFn(x)
}

// Bytes1 renders bytes with one decimal:
// Bytes1(12345678) == "12.3 MB".
func Bytes1(x float64) string {
	return bytes1Fn(x)
}

// Bytes2 renders bytes with two decimals:
// Bytes2(2.3e12) == "2.30 TB".
func Bytes2(x float64) string {
	return bytes2Fn(x)
}

// Bibytes renders bytes against base 1024 scales:
// Bibytes(16 * 1024) == "16 kiB".
func Bibytes(x float64) string {
	return bibytesFn(x)
}

// Bibytes1 renders base 1024 bytes with one decimal:
// Bibytes1(12345678) == "11.8 MiB".
func Bibytes1(x float64) string {
	return bibytes1Fn(x)
}

// Bibytes2 renders base 1024 bytes with two decimals:
// Bibytes2(1.25 * 1024 * 1024) == "1.25 MiB".
func Bibytes2(x float64) string {
	return bibytes2Fn(x)
}
