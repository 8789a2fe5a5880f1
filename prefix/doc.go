// Package prefix provides the markers of the SI scale grid and the
// constraint policies that restrict which of them a number may use.
//
// Grid
//
// Sixteen scaled markers span exponents -24 through +24 in steps of 3,
// with the unscaled Unit marker at 0. A marker names the factor
// radix^(exponent/3), so Kilo is 1000 under base 1000 and 1024 under
// base 1024.
//
//  | Exponent | Symbol | Name  || Factor (base 1000) |
//  |----------|--------|-------||--------------------|
//  | -24      | y      | yocto || 10^-24             |
//  | -21      | z      | zepto || 10^-21             |
//  | -18      | a      | atto  || 10^-18             |
//  | -15      | f      | femto || 10^-15             |
//  | -12      | p      | pico  || 10^-12             |
//  | -9       | n      | nano  || 10^-9              |
//  | -6       | µ      | micro || 10^-6              |
//  | -3       | m      | milli || 10^-3              |
//  | 0        |        | unit  || 1                  |
//  | 3        | k      | kilo  || 10^3               |
//  | 6        | M      | mega  || 10^6               |
//  | 9        | G      | giga  || 10^9               |
//  | 12       | T      | tera  || 10^12              |
//  | 15       | P      | peta  || 10^15              |
//  | 18       | E      | exa   || 10^18              |
//  | 21       | Z      | zetta || 10^21              |
//  | 24       | Y      | yotta || 10^24              |
//
// Parsing
//
// Parse accepts three surface forms per marker: the display symbol
// ("k"), the lowercase name ("kilo"), and the capitalized name ("Kilo").
// Symbols are case sensitive since the grid uses both cases ("m" is
// milli, "M" is mega). Unit has no surface form.
//
// Constraints
//
// A Constraint narrows the grid before a number is scaled:
//
//  | Constraint    | Usable exponents          |
//  |---------------|---------------------------|
//  | Unconstrained | -24 .. 24                 |
//  | UnitOnly      | 0                         |
//  | UnitAndAbove  | 0 .. 24                   |
//  | UnitAndBelow  | -24 .. 0                  |
//  | Custom        | exactly the listed subset |
//
// Resolution never fails: an exponent outside the usable set settles on
// the nearest usable prefix, so astronomically large or small numbers
// simply keep a large or small mantissa.
package prefix
