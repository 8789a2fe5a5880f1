package value_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
	"github.com/calebcase/siscale/base"
	"github.com/calebcase/siscale/prefix"
	"github.com/calebcase/siscale/value"
)

func TestRoundtrip(t *testing.T) {
	xs := []float64{
		0, 1, -1, 0.001, 0.1, 0.12345, 0.5, 2, 16,
		1234, 1234.5678, 123456, 5.3e5, 12345678, 123456000,
		1.3e-5, -4.3e-5, 7.1e-9, 3.4e-12, 98.76543e-15,
		2.3e12, 1e24, 1e-24, -1.5e28, 1e-28,
		6.62607015e-34, 2.99792458e8, 1e300, 1e-300,
		0x1p20, 0x1p-20, 1024, 1025,
	}

	bases := []base.Base{base.B1000, base.B1024}

	constraints := []struct {
		Name string
		C    prefix.Constraint
	}{
		{Name: "unconstrained", C: prefix.Unconstrained},
		{Name: "unit only", C: prefix.UnitOnly},
		{Name: "unit and above", C: prefix.UnitAndAbove},
		{Name: "unit and below", C: prefix.UnitAndBelow},
		{Name: "custom", C: prefix.MustCustom(prefix.Nano, prefix.Unit, prefix.Kilo, prefix.Giga)},
	}

	for _, b := range bases {
		for _, c := range constraints {
			t.Run(fmt.Sprintf("%.0f/%s", b.Float(), c.Name), func(t *testing.T) {
				mark := oops.New("unexpected")

				for _, x := range xs {
					v := value.NewWith(x, b, c.C)

					t.Logf("value: %s", spew.Sdump(v))

					// The prefix always lands on the grid, whatever
					// the raw exponent was.
					require.Equal(t, 0, v.Prefix.Exponent%3, mark)
					require.GreaterOrEqual(t, v.Prefix.Exponent, prefix.Yocto.Exponent, mark)
					require.LessOrEqual(t, v.Prefix.Exponent, prefix.Yotta.Exponent, mark)

					back := v.Float64()
					if x == 0 {
						require.Equal(t, 0.0, back, mark)

						continue
					}

					// Scaling divides and unscaling multiplies, so the
					// round trip can pick up an ulp of error.
					require.InEpsilon(t, x, back, 1e-12, mark)
				}
			})
		}
	}
}
