package rounding

import (
	"github.com/msto63/autonum/foundation/core/errors"
	"github.com/msto63/autonum/foundation/utils/mathx"
	"github.com/msto63/autonum/pkg/autonum/normalize"
)

// CheckRange tests raw against [min, max] under policy. Ceiling clamps values
// above max, floor clamps values below min, ignore accepts everything. Any
// other excursion is a RangeError.
func CheckRange(raw, min, max string, policy LimitPolicy) (string, error) {
	if policy == LimitIgnore {
		return raw, nil
	}
	v, err := mathx.NewDecimal(raw)
	if err != nil || !normalize.IsRaw(raw) {
		return "", errors.Parse(errors.ModuleRounding, raw, "not a raw numeric string")
	}
	lo, err := mathx.NewDecimal(min)
	if err != nil {
		return "", err
	}
	hi, err := mathx.NewDecimal(max)
	if err != nil {
		return "", err
	}

	switch {
	case v.GreaterThan(hi):
		if policy == LimitCeiling {
			return max, nil
		}
		return "", errors.OutOfRange(errors.ModuleRounding, raw, min, max)
	case v.LessThan(lo):
		if policy == LimitFloor {
			return min, nil
		}
		return "", errors.OutOfRange(errors.ModuleRounding, raw, min, max)
	}
	return raw, nil
}

// Engine applies one settings value's rounding and limits
type Engine struct {
	Method Method
	Places int
	Min    string
	Max    string
	Policy LimitPolicy
}

// Round rounds raw with the engine's method and precision
func (e Engine) Round(raw string) (string, error) {
	return Round(raw, e.Places, e.Method)
}

// CheckRange tests raw against the engine's limits
func (e Engine) CheckRange(raw string) (string, error) {
	return CheckRange(raw, e.Min, e.Max, e.Policy)
}

// Apply checks the unrounded value, rounds it and checks the result again,
// so rounding can neither pull a value into range nor push it out unnoticed.
// This is stricter than comparing the rounded value alone: 10.004 is
// rejected for a maximum of 10.00 although it rounds to 10.00.
func (e Engine) Apply(raw string) (string, error) {
	checked, err := e.CheckRange(raw)
	if err != nil {
		return "", err
	}
	rounded, err := e.Round(checked)
	if err != nil {
		return "", err
	}
	return e.CheckRange(rounded)
}
