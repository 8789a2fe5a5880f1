package prefix

import (
	"fmt"

	"github.com/calebcase/oops"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Constraint restricts which prefixes a number may be scaled to. The
// zero value permits the full grid.
type Constraint struct {
	kind    constraintKind
	allowed prefixes
}

type constraintKind int

const (
	unconstrained constraintKind = iota
	unitOnly
	unitAndAbove
	unitAndBelow
	custom
)

var (
	// Unconstrained permits the full prefix grid.
	Unconstrained = Constraint{}

	// UnitOnly never scales: every exponent resolves to Unit.
	UnitOnly = Constraint{kind: unitOnly}

	// UnitAndAbove permits Unit and the enlarging prefixes. Fractional
	// scales make no sense for discrete quantities like bytes.
	UnitAndAbove = Constraint{kind: unitAndAbove}

	// UnitAndBelow permits Unit and the diminishing prefixes. Enlarging
	// scales make no sense for quantities like seconds, where the next
	// customary unit is the minute, not the kilosecond.
	UnitAndBelow = Constraint{kind: unitAndBelow}
)

// Custom returns a Constraint permitting exactly the given prefixes.
// The list must not be empty and must be strictly ascending by
// exponent. The list is copied.
func Custom(allowed ...Prefix) (Constraint, error) {
	if len(allowed) == 0 {
		return Constraint{}, oops.Trace(ErrNoPrefixAllowed)
	}

	err := validation.Validate(allowed, validation.By(ascending))
	if err != nil {
		return Constraint{}, Error.Wrap(err)
	}

	return Constraint{
		kind:    custom,
		allowed: append(prefixes(nil), allowed...),
	}, nil
}

// MustCustom is like Custom but panics when the list is invalid. An
// invalid list is a defect at the call site, so sites with literal
// lists need not handle the error.
func MustCustom(allowed ...Prefix) Constraint {
	c, err := Custom(allowed...)
	if err != nil {
		panic(err)
	}

	return c
}

func ascending(value interface{}) error {
	ps := value.([]Prefix)

	for i := 1; i < len(ps); i++ {
		if ps[i-1].Exponent >= ps[i].Exponent {
			return fmt.Errorf(
				"prefixes must be strictly ascending by exponent: %s then %s",
				ps[i-1].Name, ps[i].Name,
			)
		}
	}

	return nil
}

// Resolve maps a raw grid exponent to the nearest prefix the constraint
// permits. It is total: exponents beyond the permitted range settle on
// the closest permitted prefix.
func (c Constraint) Resolve(exponent int) Prefix {
	switch c.kind {
	case unitOnly:
		return Unit
	case unitAndAbove:
		return clamped(exponent, Unit, Yotta)
	case unitAndBelow:
		return clamped(exponent, Yocto, Unit)
	case custom:
		return c.allowed.floor(exponent)
	default:
		return clamped(exponent, Yocto, Yotta)
	}
}

// clamped clamps exponent into [lo.Exponent, hi.Exponent] and returns
// the matching prefix. A clamped grid exponent always matches exactly;
// anything off grid settles on Unit.
func clamped(exponent int, lo, hi Prefix) Prefix {
	if exponent < lo.Exponent {
		exponent = lo.Exponent
	}
	if exponent > hi.Exponent {
		exponent = hi.Exponent
	}

	p, ok := Prefixes.ByExponent(exponent)
	if !ok {
		return Unit
	}

	return p
}

// floor returns the largest listed prefix at or below exponent, or the
// smallest listed prefix when exponent is below every entry.
func (ps prefixes) floor(exponent int) Prefix {
	best := ps[0]
	for _, p := range ps {
		if p.Exponent > exponent {
			break
		}

		best = p
	}

	return best
}
