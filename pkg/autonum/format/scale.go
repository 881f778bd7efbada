package format

import (
	"github.com/msto63/autonum/foundation/utils/mathx"
	"github.com/msto63/autonum/pkg/autonum/options"
	"github.com/msto63/autonum/pkg/autonum/rounding"
)

// scaleDown divides raw by the scale divisor and rounds the quotient to the
// scale precision
func scaleDown(raw string, s *options.Settings) (string, error) {
	v, err := mathx.NewDecimal(raw)
	if err != nil {
		return "", err
	}
	div, err := mathx.NewDecimal(s.ScaleDivisor)
	if err != nil {
		return "", err
	}
	q, err := v.Divide(div)
	if err != nil {
		return "", err
	}
	return rounding.RoundDecimal(q, s.ScalePlaces(), s.RoundingMethod)
}

// scaleUp multiplies a parsed display value back by the scale divisor
func scaleUp(raw string, s *options.Settings) (string, error) {
	v, err := mathx.NewDecimal(raw)
	if err != nil {
		return "", err
	}
	div, err := mathx.NewDecimal(s.ScaleDivisor)
	if err != nil {
		return "", err
	}
	return v.Multiply(div).String(), nil
}
