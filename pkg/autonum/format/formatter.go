package format

import (
	"strings"

	"github.com/msto63/autonum/foundation/core/errors"
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/options"
)

// Format renders a raw numeric string for display. An empty raw value
// renders according to the empty input behavior.
func Format(raw string, s *options.Settings) (string, error) {
	if raw == "" {
		return formatEmpty(s)
	}
	if !normalize.IsRaw(raw) {
		return "", errors.Parse(errors.ModuleFormat, raw, "not a raw numeric string")
	}

	value, err := s.Engine().Apply(raw)
	if err != nil {
		return "", err
	}

	shown := value
	if s.HasScale() {
		// the unrounded value is scaled so no precision is lost twice
		checked, err := s.Engine().CheckRange(raw)
		if err != nil {
			return "", err
		}
		if shown, err = scaleDown(checked, s); err != nil {
			return "", err
		}
	} else if !s.AllowDecimalPadding {
		shown = normalize.Trim(shown)
	}

	return render(shown, s), nil
}

func formatEmpty(s *options.Settings) (string, error) {
	switch s.EmptyInputBehavior {
	case options.EmptyZero:
		return Format("0", s)
	case options.EmptyAlways:
		return s.CurrencySymbol + s.SuffixText, nil
	}
	return "", nil
}

// render lays out an already rounded value
func render(value string, s *options.Settings) string {
	neg, intPart, frac := normalize.Split(value)
	zero := normalize.IsZero(value)
	neg = neg && !zero

	if s.LeadingZero != options.LeadingZeroKeep {
		intPart = strings.TrimLeft(intPart, "0")
		if intPart == "" {
			intPart = "0"
		}
	}
	number := groupDigits(intPart, s.DigitGroupSeparator, s.DigitalGroupSpacing)
	if frac != "" {
		number += s.DecimalCharacter + frac
	}

	var out string
	if open, close, ok := options.Brackets(s.NegativeBracketsTypeOnBlur); ok && neg {
		out = open + place(number, "", s) + close
	} else {
		sign := ""
		switch {
		case neg:
			sign = "-"
		case s.ShowPositiveSign && !zero:
			sign = "+"
		}
		out = place(number, sign, s)
	}

	if s.HasScale() {
		out += s.ScaleSymbol
	}
	return out + s.SuffixText
}

// place positions the sign relative to the number and currency symbol.
// Without a currency symbol the prefix layout applies.
func place(number, sign string, s *options.Settings) string {
	cur := s.CurrencySymbol
	if cur == "" || !s.IsSuffixCurrency() {
		switch s.NegativePositiveSignPlacement {
		case options.SignSuffix:
			return cur + number + sign
		case options.SignRight:
			return cur + sign + number
		}
		return sign + cur + number
	}

	switch s.NegativePositiveSignPlacement {
	case options.SignPrefix:
		return sign + number + cur
	case options.SignLeft:
		return number + sign + cur
	}
	return number + cur + sign
}
