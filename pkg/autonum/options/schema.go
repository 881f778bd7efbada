package options

import (
	"github.com/msto63/autonum/foundation/utils/mapx"
)

// Options is the loose, caller supplied configuration. Values may be any of
// string, bool, the Go numeric kinds or nil, as decoded from TOML, YAML or
// JSON or written in code.
type Options map[string]any

// Clone returns a shallow copy. Option values are scalars, so this is a
// full copy in practice.
func (o Options) Clone() Options {
	return mapx.Clone(o)
}

// Keys returns the option names in sorted order
func (o Options) Keys() []string {
	return mapx.SortedKeys(o)
}

// Merge returns a copy of o overlaid with every entry of other
func (o Options) Merge(other Options) Options {
	return mapx.Overlay(o, other)
}

// Recognized option names
const (
	KeyAllowDecimalPadding           = "allowDecimalPadding"
	KeyCurrencySymbol                = "currencySymbol"
	KeyCurrencySymbolPlacement       = "currencySymbolPlacement"
	KeyDecimalCharacter              = "decimalCharacter"
	KeyDecimalCharacterAlternative   = "decimalCharacterAlternative"
	KeyDecimalPlacesOverride         = "decimalPlacesOverride"
	KeyDecimalPlacesShownOnFocus     = "decimalPlacesShownOnFocus"
	KeyDefaultValueOverride          = "defaultValueOverride"
	KeyDigitalGroupSpacing           = "digitalGroupSpacing"
	KeyDigitGroupSeparator           = "digitGroupSeparator"
	KeyEmptyInputBehavior            = "emptyInputBehavior"
	KeyFailOnUnknownOption           = "failOnUnknownOption"
	KeyFormatOnPageLoad              = "formatOnPageLoad"
	KeyIsCancellable                 = "isCancellable"
	KeyLeadingZero                   = "leadingZero"
	KeyMaximumValue                  = "maximumValue"
	KeyMinimumValue                  = "minimumValue"
	KeyModifyValueOnWheel            = "modifyValueOnWheel"
	KeyNegativeBracketsTypeOnBlur    = "negativeBracketsTypeOnBlur"
	KeyNegativePositiveSignPlacement = "negativePositiveSignPlacement"
	KeyNoEventListeners              = "noEventListeners"
	KeyNoSeparatorOnFocus            = "noSeparatorOnFocus"
	KeyOnInvalidPaste                = "onInvalidPaste"
	KeyOutputFormat                  = "outputFormat"
	KeyOverrideMinMaxLimits          = "overrideMinMaxLimits"
	KeyReadOnly                      = "readOnly"
	KeyRoundingMethod                = "roundingMethod"
	KeySaveValueToSessionStorage     = "saveValueToSessionStorage"
	KeyScaleDecimalPlaces            = "scaleDecimalPlaces"
	KeyScaleDivisor                  = "scaleDivisor"
	KeyScaleSymbol                   = "scaleSymbol"
	KeySelectNumberOnly              = "selectNumberOnly"
	KeySerializeSpaces               = "serializeSpaces"
	KeyShowPositiveSign              = "showPositiveSign"
	KeyShowWarnings                  = "showWarnings"
	KeySuffixText                    = "suffixText"
	KeyUnformatOnHover               = "unformatOnHover"
	KeyUnformatOnSubmit              = "unformatOnSubmit"
	KeyWheelStep                     = "wheelStep"
)

// Default limits
const (
	DefaultMaximumValue = "9999999999999.99"
	DefaultMinimumValue = "-9999999999999.99"
)

// DefaultOptions returns the default configuration as a fresh map
func DefaultOptions() Options {
	return Options{
		KeyAllowDecimalPadding:           true,
		KeyCurrencySymbol:                "",
		KeyCurrencySymbolPlacement:       string(CurrencyPrefix),
		KeyDecimalCharacter:              ".",
		KeyDecimalCharacterAlternative:   nil,
		KeyDecimalPlacesOverride:         nil,
		KeyDecimalPlacesShownOnFocus:     nil,
		KeyDefaultValueOverride:          nil,
		KeyDigitalGroupSpacing:           string(GroupThree),
		KeyDigitGroupSeparator:           ",",
		KeyEmptyInputBehavior:            string(EmptyFocus),
		KeyFailOnUnknownOption:           false,
		KeyFormatOnPageLoad:              true,
		KeyIsCancellable:                 true,
		KeyLeadingZero:                   string(LeadingZeroDeny),
		KeyMaximumValue:                  DefaultMaximumValue,
		KeyMinimumValue:                  DefaultMinimumValue,
		KeyModifyValueOnWheel:            true,
		KeyNegativeBracketsTypeOnBlur:    nil,
		KeyNegativePositiveSignPlacement: nil,
		KeyNoEventListeners:              false,
		KeyNoSeparatorOnFocus:            false,
		KeyOnInvalidPaste:                string(PasteError),
		KeyOutputFormat:                  nil,
		KeyOverrideMinMaxLimits:          nil,
		KeyReadOnly:                      false,
		KeyRoundingMethod:                "S",
		KeySaveValueToSessionStorage:     false,
		KeyScaleDecimalPlaces:            nil,
		KeyScaleDivisor:                  nil,
		KeyScaleSymbol:                   nil,
		KeySelectNumberOnly:              true,
		KeySerializeSpaces:               SerializePlus,
		KeyShowPositiveSign:              false,
		KeyShowWarnings:                  true,
		KeySuffixText:                    "",
		KeyUnformatOnHover:               true,
		KeyUnformatOnSubmit:              false,
		KeyWheelStep:                     WheelProgressive,
	}
}

// IsKnown reports whether key is a recognized option name
func IsKnown(key string) bool {
	_, ok := rules[key]
	return ok
}

// legacyAliases maps pre-v2 option names onto their current names
var legacyAliases = map[string]string{
	"aSep":          KeyDigitGroupSeparator,
	"nSep":          KeyNoSeparatorOnFocus,
	"dGroup":        KeyDigitalGroupSpacing,
	"aDec":          KeyDecimalCharacter,
	"altDec":        KeyDecimalCharacterAlternative,
	"aSign":         KeyCurrencySymbol,
	"pSign":         KeyCurrencySymbolPlacement,
	"pNeg":          KeyNegativePositiveSignPlacement,
	"aSuffix":       KeySuffixText,
	"oLimits":       KeyOverrideMinMaxLimits,
	"vMax":          KeyMaximumValue,
	"vMin":          KeyMinimumValue,
	"mDec":          KeyDecimalPlacesOverride,
	"eDec":          KeyDecimalPlacesShownOnFocus,
	"scaleDecimal":  KeyScaleDecimalPlaces,
	"aStor":         KeySaveValueToSessionStorage,
	"mRound":        KeyRoundingMethod,
	"aPad":          KeyAllowDecimalPadding,
	"nBracket":      KeyNegativeBracketsTypeOnBlur,
	"wEmpty":        KeyEmptyInputBehavior,
	"lZero":         KeyLeadingZero,
	"aForm":         KeyFormatOnPageLoad,
	"sNumber":       KeySelectNumberOnly,
	"anDefault":     KeyDefaultValueOverride,
	"unSetOnSubmit": KeyUnformatOnSubmit,
	"outputType":    KeyOutputFormat,
	"debug":         KeyShowWarnings,
}

// LegacyName returns the current name for a legacy option name
func LegacyName(old string) (string, bool) {
	name, ok := legacyAliases[old]
	return name, ok
}
