package rounding

import (
	"strings"

	"github.com/msto63/autonum/foundation/core/errors"
	"github.com/msto63/autonum/foundation/utils/mathx"
	"github.com/msto63/autonum/pkg/autonum/normalize"
)

// remainder classifies the digits dropped by rounding
type remainder int

const (
	remExact remainder = iota
	remBelowHalf
	remHalf
	remAboveHalf
)

func classify(rest string) remainder {
	if strings.Trim(rest, "0") == "" {
		return remExact
	}
	switch {
	case rest[0] > '5':
		return remAboveHalf
	case rest[0] < '5':
		return remBelowHalf
	case strings.Trim(rest[1:], "0") != "":
		return remAboveHalf
	}
	return remHalf
}

// awayFromZero decides whether the kept magnitude is incremented
func awayFromZero(m Method, neg bool, lastKept byte, rem remainder) bool {
	if rem == remExact {
		return false
	}
	switch m {
	case Up:
		return true
	case Down:
		return false
	case Ceiling:
		return !neg
	case Floor:
		return neg
	}

	switch rem {
	case remAboveHalf:
		return true
	case remBelowHalf:
		return false
	}

	switch m {
	case HalfUpSymmetric:
		return true
	case HalfUpAsymmetric:
		return !neg
	case HalfDownSymmetric:
		return false
	case HalfDownAsymmetric:
		return neg
	case HalfEven:
		return (lastKept-'0')%2 == 1
	}
	return false
}

// Round rounds a raw numeric string to places fraction digits. The result
// carries exactly places fraction digits, or FiveCentPlaces for the 0.05
// methods, and never a negative zero.
func Round(raw string, places int, m Method) (string, error) {
	if !normalize.IsRaw(raw) {
		return "", errors.Parse(errors.ModuleRounding, raw, "not a raw numeric string")
	}
	if !m.IsValid() {
		return "", errors.InvalidInput(errors.ModuleRounding, "Round", string(m), "a known rounding method")
	}
	if m.IsFiveCent() {
		return roundFiveCent(raw, m)
	}
	return roundDigits(raw, places, m), nil
}

func roundDigits(raw string, places int, m Method) string {
	if places < 0 {
		places = 0
	}
	neg, intPart, frac := normalize.Split(raw)
	if len(frac) < places {
		frac += strings.Repeat("0", places-len(frac))
	}

	kept := []byte(intPart + frac[:places])
	rest := frac[places:]
	if awayFromZero(m, neg, kept[len(kept)-1], classify(rest)) {
		kept = increment(kept)
	}

	intLen := len(kept) - places
	out := string(kept[:intLen])
	if places > 0 {
		out += "." + string(kept[intLen:])
	}
	if neg && !normalize.IsZero(out) {
		out = "-" + out
	}
	return out
}

// increment adds one unit in the last place and propagates the carry
func increment(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}

var twenty = mathx.NewDecimalFromInt(20)

// roundFiveCent rounds value*20 to an integer and divides back
func roundFiveCent(raw string, m Method) (string, error) {
	d, err := mathx.NewDecimal(raw)
	if err != nil {
		return "", err
	}

	inner := HalfUpAsymmetric
	switch m {
	case UpFive:
		inner = Ceiling
	case DownFive:
		inner = Floor
	}
	steps := roundDigits(d.Multiply(twenty).String(), 0, inner)

	q, err := mathx.MustNewDecimal(steps).Divide(twenty)
	if err != nil {
		return "", err
	}
	out, _ := q.TruncString(FiveCentPlaces)
	return normalize.Unsigned(out), nil
}

// RoundDecimal rounds an exact rational, which may have a non-terminating
// expansion. A sticky digit keeps the half classification correct.
func RoundDecimal(d mathx.Decimal, places int, m Method) (string, error) {
	if places < 0 {
		places = 0
	}
	digits := places + 1
	if m.IsFiveCent() {
		digits = FiveCentPlaces + 3
	}
	s, exact := d.TruncString(digits)
	if !exact {
		s += "1"
	}
	return Round(s, places, m)
}

// EffectiveDecimalPlaces returns override when set, otherwise the larger
// fraction length of min and max
func EffectiveDecimalPlaces(override *int, min, max string) int {
	if override != nil {
		return *override
	}
	return ImpliedDecimalPlaces(min, max)
}

// ImpliedDecimalPlaces returns the larger fraction length of min and max
func ImpliedDecimalPlaces(min, max string) int {
	a, b := normalize.DecimalLength(min), normalize.DecimalLength(max)
	if a > b {
		return a
	}
	return b
}
