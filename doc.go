// Package siscale renders numbers with their SI or binary scale
// prefix.
//
// A number is scaled to a mantissa and a prefix so that the text stays
// short and the magnitude stays obvious:
//
//  siscale.Seconds(1.3e-5)      // "13 µs"
//  siscale.Bytes1(12345678)     // "12.3 MB"
//  siscale.Bibytes1(16 * 1024)  // "16.0 kiB"
//  siscale.Number(1234.5678)    // "1_234.567_8"
//
// Helpers
//
// Each helper fixes a base, a prefix constraint, a mantissa precision,
// and a unit. A trailing digit in the name is the rendered decimal
// precision; Grouped marks thousands grouping; Number renders a bare
// grouped number with no unit at all.
//
//  | Helper       | Input      | Output         |
//  |--------------|------------|----------------|
//  | Number       | 1234.5678  | "1_234.567_8"  |
//  | Seconds      | 1.3e-5     | "13 µs"        |
//  | Seconds3     | 1234.5678  | "1234.568 s"   |
//  | Bytes        | 1234567.0  | "1.234567 MB"  |
//  | BytesGrouped | 1234567.0  | "1_234_567 B"  |
//  | Bytes1       | 12345678.0 | "12.3 MB"      |
//  | Bytes2       | 2.3e12     | "2.30 TB"      |
//  | Bibytes      | 16384.0    | "16 kiB"       |
//  | Bibytes1     | 12345678.0 | "11.8 MiB"     |
//  | Bibytes2     | 1310720.0  | "1.25 MiB"     |
//
// Time helpers scale downward only (13 µs, never 1.2 ks) and byte
// helpers scale upward only (12.3 MB, never 0.5 mB).
//
// Composition
//
// FormatFunc builds the same shape of function for any other unit:
//
//  bitrate := siscale.FormatFunc(
//      base.B1024,
//      prefix.UnitAndAbove,
//      format.Options{Mantissa: "%.2f"},
//      "bit/s",
//  )
//  bitrate(2.1 * 1024) // "2.10 kibit/s"
//  bitrate(2)          // "2.00 bit/s"
//
// The pieces compose directly when a helper shape does not fit: the
// value package scales a number to a prefix under a constraint, and the
// format package renders the result with precision and grouping
// control. The prefix package also parses prefix names and symbols
// ("k", "kilo", "Kilo") for configuration surfaces.
package siscale
