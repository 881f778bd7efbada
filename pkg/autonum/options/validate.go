package options

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	anerror "github.com/msto63/autonum/foundation/core/error"
	"github.com/msto63/autonum/foundation/core/errors"
	anlog "github.com/msto63/autonum/foundation/core/log"
	"github.com/msto63/autonum/foundation/core/validation"
	"github.com/msto63/autonum/foundation/utils/mathx"
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/rounding"
)

// LoggerName is the name validation warnings are logged under
const LoggerName = "autonum.options"

// Warning is a non-fatal validation finding
type Warning struct {
	Option  string
	Message string
}

// Validate checks opts and returns the normalized settings. Legacy option
// names are rewritten in opts itself, one warning each. Warnings are logged
// when showWarnings is true; a nil logger uses the default logger.
func Validate(opts Options, logger *anlog.Logger) (*Settings, error) {
	if len(opts) == 0 {
		return nil, emptyOptionsError(opts)
	}
	warnings := migrateLegacy(opts)
	s, more, err := inspect(DefaultOptions(), opts)
	warnings = append(warnings, more...)
	emit(logger, warnings, showWarnings(s, DefaultOptions().Merge(opts)))
	return s, err
}

// ValidateCopy is Validate on a copy. opts is left untouched and the
// migrated copy is returned alongside the settings.
func ValidateCopy(opts Options, logger *anlog.Logger) (*Settings, Options, error) {
	migrated := opts.Clone()
	s, err := Validate(migrated, logger)
	return s, migrated, err
}

// Inspect validates a copy of opts and returns the warnings instead of
// logging them
func Inspect(opts Options) (*Settings, []Warning, error) {
	if len(opts) == 0 {
		return nil, nil, emptyOptionsError(opts)
	}
	migrated := opts.Clone()
	warnings := migrateLegacy(migrated)
	s, more, err := inspect(DefaultOptions(), migrated)
	return s, append(warnings, more...), err
}

// Defaults returns the settings produced by the default options
func Defaults() *Settings {
	s, _, err := inspect(DefaultOptions(), nil)
	if err != nil {
		panic(fmt.Sprintf("options: defaults do not validate: %v", err))
	}
	return s
}

func emptyOptionsError(opts Options) error {
	return errors.Validation(errors.ModuleOptions, "", opts, "the options must be a non-empty mapping").
		WithDetail("fields", []string{})
}

// migrateLegacy renames legacy keys in place. A current key given alongside
// its legacy alias wins.
func migrateLegacy(opts Options) []Warning {
	var warnings []Warning
	for _, old := range opts.Keys() {
		name, ok := legacyAliases[old]
		if !ok {
			continue
		}
		if _, exists := opts[name]; !exists {
			opts[name] = opts[old]
		}
		delete(opts, old)
		warnings = append(warnings, Warning{
			Option:  old,
			Message: fmt.Sprintf("You are using the deprecated option name '%s'. Please use '%s' instead from now on.", old, name),
		})
	}
	return warnings
}

// inspect runs the pipeline on base overlaid with overlay
func inspect(base, overlay Options) (*Settings, []Warning, error) {
	merged := base.Merge(overlay)
	var warnings []Warning

	failUnknown, _ := parseBool(merged[KeyFailOnUnknownOption])
	for _, key := range merged.Keys() {
		if IsKnown(key) {
			continue
		}
		if !failUnknown {
			warnings = append(warnings, Warning{
				Option:  key,
				Message: fmt.Sprintf("option name '%s' is unknown and will be ignored", key),
			})
			delete(merged, key)
		}
	}

	// cross-field rules only run once every single option is valid
	result := validation.NewValidatorChain("options").
		Add(keyChain(merged)).
		Add(crossFieldChain).
		StopOnFirstError(true).
		Validate(merged)
	if !result.Valid {
		return nil, warnings, resultError(result)
	}

	s := build(merged)
	return s, append(warnings, precisionWarnings(s)...), nil
}

// keyChain builds one rule per option present in merged, in key order
func keyChain(merged Options) *validation.ValidatorChain {
	chain := validation.NewValidatorChain("options.keys")
	for _, key := range merged.Keys() {
		key := key
		check, known := rules[key]
		chain.AddFunc(func(value interface{}) validation.ValidationResult {
			opts := value.(Options)
			r := validation.NewValidationResult()
			if !known {
				r.AddFieldError(anerror.CodeUnknownOption, key, fmt.Sprintf("option name '%s' is unknown", key), nil)
				return r
			}
			if msg := check(opts[key]); msg != "" {
				r.AddFieldError(anerror.CodeValidationFailed, key, fmt.Sprintf("%s: %s", key, msg), opts[key])
			}
			return r
		})
	}
	return chain
}

var crossFieldChain = validation.NewValidatorChain("options.crossField").
	AddFunc(checkSeparators).
	AddFunc(checkSuffixText).
	AddFunc(checkLimits)

func checkSeparators(value interface{}) validation.ValidationResult {
	opts := value.(Options)
	r := validation.NewValidationResult()
	sep, _ := opts[KeyDigitGroupSeparator].(string)
	dec, _ := opts[KeyDecimalCharacter].(string)
	alt, _ := opts[KeyDecimalCharacterAlternative].(string)

	if sep == dec {
		r.AddFieldError(anerror.CodeValidationFailed, KeyDigitGroupSeparator,
			fmt.Sprintf("the group separator %q cannot be the same as the decimal character", sep), sep)
	}
	if alt != "" && alt == sep && !isDotCommaPair(sep, dec) {
		r.AddFieldError(anerror.CodeValidationFailed, KeyDecimalCharacterAlternative,
			fmt.Sprintf("the alternative decimal character %q cannot be the same as the group separator", alt), alt)
	}
	return r
}

// checkSuffixText rejects a suffix that the unformatter would read as part
// of the number
func checkSuffixText(value interface{}) validation.ValidationResult {
	opts := value.(Options)
	r := validation.NewValidationResult()
	suffix, _ := opts[KeySuffixText].(string)
	if suffix == "" {
		return r
	}
	for _, key := range []string{KeyDecimalCharacter, KeyDigitGroupSeparator} {
		c, _ := opts[key].(string)
		if c != "" && strings.Contains(suffix, c) {
			r.AddFieldError(anerror.CodeValidationFailed, KeySuffixText,
				fmt.Sprintf("the suffix text %q cannot contain the %s %q", suffix, key, c), suffix)
		}
	}
	return r
}

// isDotCommaPair reports the euro style pairing where a typed '.' may be
// read as the decimal character.
func isDotCommaPair(sep, dec string) bool {
	return (sep == "." && dec == ",") || (sep == "," && dec == ".")
}

func checkLimits(value interface{}) validation.ValidationResult {
	opts := value.(Options)
	r := validation.NewValidationResult()
	min := mathx.MustNewDecimal(opts[KeyMinimumValue].(string))
	max := mathx.MustNewDecimal(opts[KeyMaximumValue].(string))
	if min.GreaterThan(max) {
		r.AddFieldError(anerror.CodeValidationFailed, KeyMinimumValue,
			fmt.Sprintf("the minimum value %s is greater than the maximum value %s", min, max), opts[KeyMinimumValue])
	}
	return r
}

func resultError(r validation.ValidationResult) error {
	fields := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		fields = append(fields, e.Field)
	}
	err := r.ToError()
	var anErr *anerror.Error
	if stderrors.As(err, &anErr) {
		return anErr.
			WithOperation(errors.ModuleOptions+".validate").
			WithDetail("module", errors.ModuleOptions).
			WithDetail("fields", fields)
	}
	return err
}

// build coerces validated options into Settings
func build(o Options) *Settings {
	s := &Settings{
		AllowDecimalPadding:           boolOf(o[KeyAllowDecimalPadding]),
		CurrencySymbol:                o[KeyCurrencySymbol].(string),
		CurrencySymbolPlacement:       CurrencyPlacement(o[KeyCurrencySymbolPlacement].(string)),
		DecimalCharacter:              o[KeyDecimalCharacter].(string),
		DecimalCharacterAlternative:   stringOf(o[KeyDecimalCharacterAlternative]),
		DecimalPlacesOverride:         intPtrOf(o[KeyDecimalPlacesOverride]),
		DecimalPlacesShownOnFocus:     intPtrOf(o[KeyDecimalPlacesShownOnFocus]),
		DefaultValueOverride:          rawOf(o[KeyDefaultValueOverride]),
		DigitalGroupSpacing:           GroupSpacing(fmt.Sprint(o[KeyDigitalGroupSpacing])),
		DigitGroupSeparator:           o[KeyDigitGroupSeparator].(string),
		EmptyInputBehavior:            EmptyInputBehavior(o[KeyEmptyInputBehavior].(string)),
		FailOnUnknownOption:           boolOf(o[KeyFailOnUnknownOption]),
		FormatOnPageLoad:              boolOf(o[KeyFormatOnPageLoad]),
		IsCancellable:                 boolOf(o[KeyIsCancellable]),
		LeadingZero:                   LeadingZero(o[KeyLeadingZero].(string)),
		MaximumValue:                  o[KeyMaximumValue].(string),
		MinimumValue:                  o[KeyMinimumValue].(string),
		ModifyValueOnWheel:            boolOf(o[KeyModifyValueOnWheel]),
		NegativeBracketsTypeOnBlur:    stringOf(o[KeyNegativeBracketsTypeOnBlur]),
		NegativePositiveSignPlacement: SignPlacement(stringOf(o[KeyNegativePositiveSignPlacement])),
		NoEventListeners:              boolOf(o[KeyNoEventListeners]),
		NoSeparatorOnFocus:            boolOf(o[KeyNoSeparatorOnFocus]),
		OnInvalidPaste:                PasteBehavior(o[KeyOnInvalidPaste].(string)),
		OutputFormat:                  normalize.OutputFormat(stringOf(o[KeyOutputFormat])),
		OverrideMinMaxLimits:          rounding.LimitPolicy(stringOf(o[KeyOverrideMinMaxLimits])),
		ReadOnly:                      boolOf(o[KeyReadOnly]),
		RoundingMethod:                rounding.Method(o[KeyRoundingMethod].(string)),
		SaveValueToSessionStorage:     boolOf(o[KeySaveValueToSessionStorage]),
		ScaleDecimalPlaces:            intPtrOf(o[KeyScaleDecimalPlaces]),
		ScaleDivisor:                  rawOf(o[KeyScaleDivisor]),
		ScaleSymbol:                   stringOf(o[KeyScaleSymbol]),
		SelectNumberOnly:              boolOf(o[KeySelectNumberOnly]),
		SerializeSpaces:               o[KeySerializeSpaces].(string),
		ShowPositiveSign:              boolOf(o[KeyShowPositiveSign]),
		ShowWarnings:                  boolOf(o[KeyShowWarnings]),
		SuffixText:                    o[KeySuffixText].(string),
		UnformatOnHover:               boolOf(o[KeyUnformatOnHover]),
		UnformatOnSubmit:              boolOf(o[KeyUnformatOnSubmit]),
		WheelStep:                     wheelStepOf(o[KeyWheelStep]),
	}

	s.DecimalPlaces = rounding.EffectiveDecimalPlaces(s.DecimalPlacesOverride, s.MinimumValue, s.MaximumValue)
	if s.RoundingMethod.IsFiveCent() {
		s.DecimalPlaces = rounding.FiveCentPlaces
	}
	if s.NegativePositiveSignPlacement == SignUnset {
		s.NegativePositiveSignPlacement = derivedSignPlacement(s)
	}
	return s
}

// derivedSignPlacement puts the sign before a suffix currency block and to
// the left of everything else
func derivedSignPlacement(s *Settings) SignPlacement {
	if s.IsSuffixCurrency() {
		return SignPrefix
	}
	return SignLeft
}

func precisionWarnings(s *Settings) []Warning {
	var warnings []Warning
	implied := rounding.ImpliedDecimalPlaces(s.MinimumValue, s.MaximumValue)
	if s.DecimalPlacesOverride != nil && *s.DecimalPlacesOverride != implied {
		warnings = append(warnings, Warning{
			Option: KeyDecimalPlacesOverride,
			Message: fmt.Sprintf("Setting 'decimalPlacesOverride' to [%d] will override the decimals declared in 'minimumValue' [%s] and 'maximumValue' [%s].",
				*s.DecimalPlacesOverride, s.MinimumValue, s.MaximumValue),
		})
	}
	if s.DecimalPlacesShownOnFocus != nil && *s.DecimalPlacesShownOnFocus < s.DecimalPlaces {
		warnings = append(warnings, Warning{
			Option: KeyDecimalPlacesShownOnFocus,
			Message: fmt.Sprintf("The number of decimals shown when focused (%d) is lower than the number of decimals shown when unfocused (%d). This may confuse users.",
				*s.DecimalPlacesShownOnFocus, s.DecimalPlaces),
		})
	}
	if !s.AllowDecimalPadding && s.DecimalPlacesOverride != nil {
		warnings = append(warnings, Warning{
			Option: KeyAllowDecimalPadding,
			Message: fmt.Sprintf("Setting 'allowDecimalPadding' to false will override the current 'decimalPlacesOverride' setting [%d].",
				*s.DecimalPlacesOverride),
		})
	}
	return warnings
}

func showWarnings(s *Settings, merged Options) bool {
	if s != nil {
		return s.ShowWarnings
	}
	show, ok := parseBool(merged[KeyShowWarnings])
	return show || !ok
}

func emit(logger *anlog.Logger, warnings []Warning, show bool) {
	if !show || len(warnings) == 0 {
		return
	}
	if logger == nil {
		logger = anlog.GetDefault()
	}
	logger = logger.WithName(LoggerName)
	for _, w := range warnings {
		logger.Warn(w.Message, anlog.Fields{"option": w.Option})
	}
}

func boolOf(v any) bool {
	b, _ := parseBool(v)
	return b
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}

func intPtrOf(v any) *int {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &n
	}
	n, ok := asInt(v)
	if !ok {
		return nil
	}
	return &n
}

func rawOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, _ := normalize.FromNumber(v)
	return raw
}

func wheelStepOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, _ := normalize.FromNumber(v)
	return raw
}
