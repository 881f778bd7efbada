package normalize

import (
	"strconv"
	"strings"

	"github.com/msto63/autonum/foundation/core/errors"
)

// OutputFormat selects how a raw value is handed back to callers
type OutputFormat string

// Output formats
const (
	OutputNone          OutputFormat = ""
	OutputString        OutputFormat = "string"
	OutputNumber        OutputFormat = "number"
	OutputDot           OutputFormat = "."
	OutputNegativeDot   OutputFormat = "-."
	OutputComma         OutputFormat = ","
	OutputNegativeComma OutputFormat = "-,"
	OutputDotNegative   OutputFormat = ".-"
	OutputCommaNegative OutputFormat = ",-"
)

// IsValid reports whether f is a known output format
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputNone, OutputString, OutputNumber,
		OutputDot, OutputNegativeDot, OutputComma, OutputNegativeComma,
		OutputDotNegative, OutputCommaNegative:
		return true
	}
	return false
}

// ToLocalized renders raw in the given output format. OutputNumber yields a
// float64 and loses precision beyond 2^53; every other format yields a string.
// An empty raw value yields "".
func ToLocalized(raw string, f OutputFormat) (any, error) {
	if raw == "" {
		return "", nil
	}
	if !IsRaw(raw) {
		return nil, errors.Parse(errors.ModuleNormalize, raw, "not a raw numeric string")
	}
	if !f.IsValid() {
		return nil, errors.InvalidInput(errors.ModuleNormalize, "ToLocalized", string(f), "a known output format")
	}

	raw = Unsigned(raw)
	if f == OutputNumber {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Parse(errors.ModuleNormalize, raw, err.Error())
		}
		return n, nil
	}

	neg, intPart, frac := Split(raw)
	decimal := "."
	if f == OutputComma || f == OutputNegativeComma || f == OutputCommaNegative {
		decimal = ","
	}
	body := intPart
	if frac != "" {
		body += decimal + frac
	}
	if !neg {
		return body, nil
	}
	if f == OutputDotNegative || f == OutputCommaNegative {
		return body + "-", nil
	}
	return "-" + body, nil
}

// FromLocalized reverses ToLocalized for the string formats
func FromLocalized(s string, f OutputFormat) (string, error) {
	decimal := "."
	if f == OutputComma || f == OutputNegativeComma || f == OutputCommaNegative {
		decimal = ","
	}
	return ToRaw(strings.TrimSpace(s), decimal, "")
}
