//go:build property
// +build property

package rounding

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/msto63/autonum/foundation/utils/mathx"
	"github.com/msto63/autonum/pkg/autonum/normalize"
)

// rawGen produces raw numeric strings that fit a 19 digit coefficient
var rawGen = gen.RegexMatch(`^-?(0|[1-9][0-9]{0,7})(\.[0-9]{1,8})?$`)

// TestRoundingProperties checks the digit-string rounding against an
// independent decimal implementation
func TestRoundingProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	oracle := map[Method]func(decimal.Decimal, int) decimal.Decimal{
		HalfEven: decimal.Decimal.Round,
		Down:     decimal.Decimal.Trunc,
		Ceiling:  decimal.Decimal.Ceil,
		Floor:    decimal.Decimal.Floor,
	}

	for method, ref := range oracle {
		method, ref := method, ref
		properties.Property("method "+string(method)+" matches decimal oracle", prop.ForAll(
			func(raw string, places int) bool {
				got, err := Round(raw, places, method)
				if err != nil {
					return false
				}
				want := ref(decimal.MustParse(raw), places).String()
				return got == normalize.Unsigned(want)
			},
			rawGen,
			gen.IntRange(0, 6),
		))
	}

	// Property: rounding an already rounded value changes nothing
	properties.Property("rounding is idempotent", prop.ForAll(
		func(raw string, places int, idx int) bool {
			method := allMethods[idx]
			once, err := Round(raw, places, method)
			if err != nil {
				return false
			}
			twice, err := Round(once, places, method)
			return err == nil && once == twice
		},
		rawGen,
		gen.IntRange(0, 6),
		gen.IntRange(0, len(allMethods)-1),
	))

	// Property: the result always has the requested precision
	properties.Property("result precision", prop.ForAll(
		func(raw string, places int) bool {
			got, err := Round(raw, places, HalfUpSymmetric)
			return err == nil && normalize.IsRaw(got) && normalize.DecimalLength(got) == places
		},
		rawGen,
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}

// TestRangeProperties checks that the limits behave like a closed interval
func TestRangeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: a value rejected by [min, max] is accepted by any wider
	// interval that contains it
	properties.Property("range monotonicity", prop.ForAll(
		func(raw, a, b, slackLo, slackHi string) bool {
			v := mathx.MustNewDecimal(raw)
			lo, hi := mathx.MustNewDecimal(a), mathx.MustNewDecimal(b)
			if lo.GreaterThan(hi) {
				lo, hi = hi, lo
			}
			if _, err := CheckRange(raw, lo.String(), hi.String(), LimitStrict); err == nil {
				return true
			}
			wideLo := lo.Min(v).Subtract(mathx.MustNewDecimal(slackLo).Abs())
			wideHi := hi.Max(v).Add(mathx.MustNewDecimal(slackHi).Abs())
			got, err := CheckRange(raw, wideLo.String(), wideHi.String(), LimitStrict)
			return err == nil && got == raw
		},
		rawGen, rawGen, rawGen, rawGen, rawGen,
	))

	// Property: both bounds belong to the interval
	properties.Property("bounds are accepted", prop.ForAll(
		func(a, b string) bool {
			lo, hi := mathx.MustNewDecimal(a), mathx.MustNewDecimal(b)
			if lo.GreaterThan(hi) {
				lo, hi = hi, lo
			}
			min, max := lo.String(), hi.String()
			_, errMin := CheckRange(min, min, max, LimitStrict)
			_, errMax := CheckRange(max, min, max, LimitStrict)
			return errMin == nil && errMax == nil
		},
		rawGen, rawGen,
	))

	properties.TestingRun(t)
}
