package options

import (
	"strconv"

	anlog "github.com/msto63/autonum/foundation/core/log"

	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/rounding"
)

// Settings is the validated, strongly typed configuration. A Settings value
// is never modified after Validate returns it; every update yields a new one.
type Settings struct {
	AllowDecimalPadding           bool
	CurrencySymbol                string
	CurrencySymbolPlacement       CurrencyPlacement
	DecimalCharacter              string
	DecimalCharacterAlternative   string // "" when unset
	DecimalPlacesOverride         *int
	DecimalPlacesShownOnFocus     *int
	DefaultValueOverride          string // raw numeric string, "" when unset
	DigitalGroupSpacing           GroupSpacing
	DigitGroupSeparator           string
	EmptyInputBehavior            EmptyInputBehavior
	FailOnUnknownOption           bool
	FormatOnPageLoad              bool
	IsCancellable                 bool
	LeadingZero                   LeadingZero
	MaximumValue                  string
	MinimumValue                  string
	ModifyValueOnWheel            bool
	NegativeBracketsTypeOnBlur    string
	NegativePositiveSignPlacement SignPlacement
	NoEventListeners              bool
	NoSeparatorOnFocus            bool
	OnInvalidPaste                PasteBehavior
	OutputFormat                  normalize.OutputFormat
	OverrideMinMaxLimits          rounding.LimitPolicy
	ReadOnly                      bool
	RoundingMethod                rounding.Method
	SaveValueToSessionStorage     bool
	ScaleDecimalPlaces            *int
	ScaleDivisor                  string // raw numeric string, "" when unset
	ScaleSymbol                   string
	SelectNumberOnly              bool
	SerializeSpaces               string
	ShowPositiveSign              bool
	ShowWarnings                  bool
	SuffixText                    string
	UnformatOnHover               bool
	UnformatOnSubmit              bool
	WheelStep                     string

	// DecimalPlaces is the effective precision: the override when set,
	// otherwise the longer fraction of the limits. The 0.05 methods
	// always use two places.
	DecimalPlaces int
}

// HasScale reports whether a scale divisor is configured
func (s *Settings) HasScale() bool {
	return s.ScaleDivisor != ""
}

// ScalePlaces returns the precision of the scaled display
func (s *Settings) ScalePlaces() int {
	if s.ScaleDecimalPlaces != nil {
		return *s.ScaleDecimalPlaces
	}
	return s.DecimalPlaces
}

// Engine returns the rounding and range engine for these settings
func (s *Settings) Engine() rounding.Engine {
	return rounding.Engine{
		Method: s.RoundingMethod,
		Places: s.DecimalPlaces,
		Min:    s.MinimumValue,
		Max:    s.MaximumValue,
		Policy: s.OverrideMinMaxLimits,
	}
}

// IsSuffixCurrency reports whether the currency symbol follows the number
func (s *Settings) IsSuffixCurrency() bool {
	return s.CurrencySymbolPlacement == CurrencySuffix
}

// Options renders the settings back into a loose map that Validate accepts.
// Explicit overrides are emitted as the user gave them and unset options as
// nil, so merging a partial update over it keeps earlier user choices. The
// derived sign placement is emitted too and sticks from then on.
func (s *Settings) Options() Options {
	return Options{
		KeyAllowDecimalPadding:           s.AllowDecimalPadding,
		KeyCurrencySymbol:                s.CurrencySymbol,
		KeyCurrencySymbolPlacement:       string(s.CurrencySymbolPlacement),
		KeyDecimalCharacter:              s.DecimalCharacter,
		KeyDecimalCharacterAlternative:   nilIfEmpty(s.DecimalCharacterAlternative),
		KeyDecimalPlacesOverride:         intOrNil(s.DecimalPlacesOverride),
		KeyDecimalPlacesShownOnFocus:     itoaOrNil(s.DecimalPlacesShownOnFocus),
		KeyDefaultValueOverride:          nilIfEmpty(s.DefaultValueOverride),
		KeyDigitalGroupSpacing:           string(s.DigitalGroupSpacing),
		KeyDigitGroupSeparator:           s.DigitGroupSeparator,
		KeyEmptyInputBehavior:            string(s.EmptyInputBehavior),
		KeyFailOnUnknownOption:           s.FailOnUnknownOption,
		KeyFormatOnPageLoad:              s.FormatOnPageLoad,
		KeyIsCancellable:                 s.IsCancellable,
		KeyLeadingZero:                   string(s.LeadingZero),
		KeyMaximumValue:                  s.MaximumValue,
		KeyMinimumValue:                  s.MinimumValue,
		KeyModifyValueOnWheel:            s.ModifyValueOnWheel,
		KeyNegativeBracketsTypeOnBlur:    nilIfEmpty(s.NegativeBracketsTypeOnBlur),
		KeyNegativePositiveSignPlacement: nilIfEmpty(string(s.NegativePositiveSignPlacement)),
		KeyNoEventListeners:              s.NoEventListeners,
		KeyNoSeparatorOnFocus:            s.NoSeparatorOnFocus,
		KeyOnInvalidPaste:                string(s.OnInvalidPaste),
		KeyOutputFormat:                  nilIfEmpty(string(s.OutputFormat)),
		KeyOverrideMinMaxLimits:          nilIfEmpty(string(s.OverrideMinMaxLimits)),
		KeyReadOnly:                      s.ReadOnly,
		KeyRoundingMethod:                string(s.RoundingMethod),
		KeySaveValueToSessionStorage:     s.SaveValueToSessionStorage,
		KeyScaleDecimalPlaces:            intOrNil(s.ScaleDecimalPlaces),
		KeyScaleDivisor:                  nilIfEmpty(s.ScaleDivisor),
		KeyScaleSymbol:                   nilIfEmpty(s.ScaleSymbol),
		KeySelectNumberOnly:              s.SelectNumberOnly,
		KeySerializeSpaces:               s.SerializeSpaces,
		KeyShowPositiveSign:              s.ShowPositiveSign,
		KeyShowWarnings:                  s.ShowWarnings,
		KeySuffixText:                    s.SuffixText,
		KeyUnformatOnHover:               s.UnformatOnHover,
		KeyUnformatOnSubmit:              s.UnformatOnSubmit,
		KeyWheelStep:                     s.WheelStep,
	}
}

// Merge validates the settings overlaid with partial and returns the result.
// An empty partial returns s itself.
func (s *Settings) Merge(partial Options, logger *anlog.Logger) (*Settings, error) {
	if len(partial) == 0 {
		return s, nil
	}
	migrated := partial.Clone()
	warnings := migrateLegacy(migrated)
	next, more, err := inspect(s.Options(), migrated)
	warnings = append(warnings, more...)
	emit(logger, warnings, showWarnings(next, s.Options().Merge(migrated)))
	if err != nil {
		return nil, err
	}
	return next, nil
}

func nilIfEmpty(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func itoaOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return strconv.Itoa(*p)
}
