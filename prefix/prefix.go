package prefix

import "strings"

// Prefix is one marker of the scale grid: a named order of magnitude
// with a display symbol. Its exponent is a multiple of 3 and gives the
// power of the radix as exponent/3.
type Prefix struct {
	Exponent int
	Symbol   string
	Name     string
}

// String returns the display symbol.
func (p Prefix) String() string {
	return p.Symbol
}

type prefixes []Prefix

// ByExponent returns the prefix sitting exactly at the given exponent.
func (ps prefixes) ByExponent(exponent int) (p Prefix, ok bool) {
	for _, p := range ps {
		if p.Exponent == exponent {
			return p, true
		}
	}

	return p, false
}

var (
	Yocto = Prefix{-24, "y", "yocto"}
	Zepto = Prefix{-21, "z", "zepto"}
	Atto  = Prefix{-18, "a", "atto"}
	Femto = Prefix{-15, "f", "femto"}
	Pico  = Prefix{-12, "p", "pico"}
	Nano  = Prefix{-9, "n", "nano"}
	Micro = Prefix{-6, "µ", "micro"}
	Milli = Prefix{-3, "m", "milli"}
	Unit  = Prefix{0, "", "unit"}
	Kilo  = Prefix{3, "k", "kilo"}
	Mega  = Prefix{6, "M", "mega"}
	Giga  = Prefix{9, "G", "giga"}
	Tera  = Prefix{12, "T", "tera"}
	Peta  = Prefix{15, "P", "peta"}
	Exa   = Prefix{18, "E", "exa"}
	Zetta = Prefix{21, "Z", "zetta"}
	Yotta = Prefix{24, "Y", "yotta"}

	// Prefixes lists every marker in ascending exponent order.
	Prefixes = prefixes{
		Yocto,
		Zepto,
		Atto,
		Femto,
		Pico,
		Nano,
		Micro,
		Milli,
		Unit,
		Kilo,
		Mega,
		Giga,
		Tera,
		Peta,
		Exa,
		Zetta,
		Yotta,
	}
)

// Parse returns the prefix named by s. A prefix is recognized by its
// display symbol ("k"), its lowercase name ("kilo"), or its capitalized
// name ("Kilo"). Symbols are case sensitive: "m" is milli while "M" is
// mega. Unit has no surface form and is never returned.
func Parse(s string) (Prefix, error) {
	for _, p := range Prefixes {
		if p == Unit {
			continue
		}

		if s == p.Symbol || s == p.Name || s == capitalized(p.Name) {
			return p, nil
		}
	}

	return Prefix{}, Error.Wrap(&ParseError{Input: s})
}

// FromExponent returns the prefix whose exponent is exactly the given
// value.
func FromExponent(exponent int) (Prefix, error) {
	if p, ok := Prefixes.ByExponent(exponent); ok {
		return p, nil
	}

	return Prefix{}, Error.New(
		"exponent must be a multiple of 3 in [-24, 24], got %d",
		exponent,
	)
}

func capitalized(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}
