package options

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/rounding"
)

// rule checks one option value and returns a message, or "" when valid
type rule func(v any) string

var (
	digitsPattern = regexp.MustCompile(`^\d+$`)
	hasDigit      = regexp.MustCompile(`\d`)
)

var rules = map[string]rule{
	KeyAllowDecimalPadding:           boolRule,
	KeyCurrencySymbol:                noDigitString,
	KeyCurrencySymbolPlacement:       enumRule(false, string(CurrencyPrefix), string(CurrencySuffix)),
	KeyDecimalCharacter:              enumRule(false, decimalChars...),
	KeyDecimalCharacterAlternative:   nullable(noDigitString),
	KeyDecimalPlacesOverride:         nullable(nonNegativeInteger(true)),
	KeyDecimalPlacesShownOnFocus:     nullable(digitString),
	KeyDefaultValueOverride:          nullable(defaultValueRule),
	KeyDigitalGroupSpacing:           groupSpacingRule,
	KeyDigitGroupSeparator:           enumRule(false, groupSeparators...),
	KeyEmptyInputBehavior:            enumRule(false, "focus", "press", "always", "zero"),
	KeyFailOnUnknownOption:           boolRule,
	KeyFormatOnPageLoad:              boolRule,
	KeyIsCancellable:                 boolRule,
	KeyLeadingZero:                   enumRule(false, "allow", "deny", "keep"),
	KeyMaximumValue:                  limitRule,
	KeyMinimumValue:                  limitRule,
	KeyModifyValueOnWheel:            boolRule,
	KeyNegativeBracketsTypeOnBlur:    enumRule(true, bracketTypes...),
	KeyNegativePositiveSignPlacement: enumRule(true, "p", "s", "l", "r"),
	KeyNoEventListeners:              boolRule,
	KeyNoSeparatorOnFocus:            boolRule,
	KeyOnInvalidPaste:                enumRule(false, "error", "ignore", "clamp", "truncate", "replace"),
	KeyOutputFormat:                  enumRule(true, "string", "number", ".", "-.", ",", "-,", ".-", ",-"),
	KeyOverrideMinMaxLimits:          enumRule(true, "ceiling", "floor", "ignore"),
	KeyReadOnly:                      boolRule,
	KeyRoundingMethod:                roundingMethodRule,
	KeySaveValueToSessionStorage:     boolRule,
	KeyScaleDecimalPlaces:            nullable(nonNegativeInteger(false)),
	KeyScaleDivisor:                  nullable(positiveNumber),
	KeyScaleSymbol:                   nullable(stringRule),
	KeySelectNumberOnly:              boolRule,
	KeySerializeSpaces:               enumRule(false, SerializePlus, SerializePercent20),
	KeyShowPositiveSign:              boolRule,
	KeyShowWarnings:                  boolRule,
	KeySuffixText:                    suffixTextRule,
	KeyUnformatOnHover:               boolRule,
	KeyUnformatOnSubmit:              boolRule,
	KeyWheelStep:                     wheelStepRule,
}

func nullable(r rule) rule {
	return func(v any) string {
		if v == nil {
			return ""
		}
		return r(v)
	}
}

func boolRule(v any) string {
	if _, ok := parseBool(v); ok {
		return ""
	}
	return fmt.Sprintf("expected true or false, got %s", describe(v))
}

func parseBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch b {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func enumRule(allowNil bool, members ...string) rule {
	return func(v any) string {
		if v == nil && allowNil {
			return ""
		}
		s, ok := v.(string)
		if ok && oneOf(s, members) {
			return ""
		}
		quoted := make([]string, len(members))
		for i, m := range members {
			quoted[i] = fmt.Sprintf("%q", m)
		}
		return fmt.Sprintf("expected one of [%s], got %s", strings.Join(quoted, ", "), describe(v))
	}
}

func stringRule(v any) string {
	if _, ok := v.(string); ok {
		return ""
	}
	return fmt.Sprintf("expected a string, got %s", describe(v))
}

func noDigitString(v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("expected a string, got %s", describe(v))
	}
	if hasDigit.MatchString(s) {
		return fmt.Sprintf("must not contain digits, got %q", s)
	}
	return ""
}

func suffixTextRule(v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("expected a string, got %s", describe(v))
	}
	if strings.ContainsAny(s, "-+") || hasDigit.MatchString(s) {
		return fmt.Sprintf("must not contain a sign or digits, got %q", s)
	}
	return ""
}

func digitString(v any) string {
	if s, ok := v.(string); ok && digitsPattern.MatchString(s) {
		return ""
	}
	return fmt.Sprintf("expected a string of digits, got %s", describe(v))
}

func limitRule(v any) string {
	if s, ok := v.(string); ok && normalize.IsRaw(s) {
		return ""
	}
	return fmt.Sprintf("expected a numeric string like \"-1234.5\", got %s", describe(v))
}

// nonNegativeInteger accepts integral numbers, and digit strings when
// allowString is set
func nonNegativeInteger(allowString bool) rule {
	return func(v any) string {
		if s, ok := v.(string); ok {
			if allowString && digitsPattern.MatchString(s) {
				return ""
			}
			return fmt.Sprintf("expected a non-negative integer, got %s", describe(v))
		}
		if n, ok := asInt(v); ok && n >= 0 {
			return ""
		}
		return fmt.Sprintf("expected a non-negative integer, got %s", describe(v))
	}
}

func defaultValueRule(v any) string {
	if s, ok := v.(string); ok {
		if s == "" || normalize.IsRaw(s) {
			return ""
		}
	}
	if _, ok := normalize.FromNumber(v); ok {
		return ""
	}
	return fmt.Sprintf("expected an empty or numeric string or a number, got %s", describe(v))
}

func groupSpacingRule(v any) string {
	if s, ok := v.(string); ok && oneOf(s, []string{"2", "2s", "3", "4"}) {
		return ""
	}
	if n, ok := asInt(v); ok && n >= 2 && n <= 4 {
		return ""
	}
	return fmt.Sprintf("expected one of \"2\", \"2s\", \"3\", \"4\", got %s", describe(v))
}

func positiveNumber(v any) string {
	if raw, ok := positiveRaw(v); ok && raw != "" {
		return ""
	}
	return fmt.Sprintf("expected a positive number, got %s", describe(v))
}

func wheelStepRule(v any) string {
	if v == WheelProgressive {
		return ""
	}
	return positiveNumber(v)
}

func roundingMethodRule(v any) string {
	if s, ok := v.(string); ok && rounding.Method(s).IsValid() {
		return ""
	}
	names := make([]string, 0, 13)
	for _, m := range rounding.Methods() {
		names = append(names, string(m))
	}
	return fmt.Sprintf("expected one of [%s], got %s", strings.Join(names, ", "), describe(v))
}

// positiveRaw converts a positive number or numeric string to raw form
func positiveRaw(v any) (string, bool) {
	raw, ok := "", false
	if s, isString := v.(string); isString {
		raw, ok = s, normalize.IsRaw(s)
	} else {
		raw, ok = normalize.FromNumber(v)
	}
	if !ok || strings.HasPrefix(raw, "-") || normalize.IsZero(raw) {
		return "", false
	}
	return raw, true
}

// asInt accepts the integer kinds and integral floats
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return asInt(float64(n))
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", t)
	}
	return fmt.Sprintf("%v (%T)", v, v)
}
