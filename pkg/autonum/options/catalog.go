package options

import (
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/rounding"
)

// CurrencyPlacement puts the currency symbol before or after the number
type CurrencyPlacement string

// SignPlacement positions the +/- sign relative to number and currency
type SignPlacement string

// GroupSpacing selects the digit grouping pattern
type GroupSpacing string

// EmptyInputBehavior decides what an empty input shows
type EmptyInputBehavior string

// LeadingZero decides how leading zeros are treated
type LeadingZero string

// PasteBehavior decides what happens to invalid pasted input
type PasteBehavior string

// Enumeration members
const (
	CurrencyPrefix CurrencyPlacement = "p"
	CurrencySuffix CurrencyPlacement = "s"

	SignUnset  SignPlacement = ""
	SignPrefix SignPlacement = "p"
	SignSuffix SignPlacement = "s"
	SignLeft   SignPlacement = "l"
	SignRight  SignPlacement = "r"

	GroupTwo       GroupSpacing = "2"
	GroupTwoScaled GroupSpacing = "2s"
	GroupThree     GroupSpacing = "3"
	GroupFour      GroupSpacing = "4"

	EmptyFocus  EmptyInputBehavior = "focus"
	EmptyPress  EmptyInputBehavior = "press"
	EmptyAlways EmptyInputBehavior = "always"
	EmptyZero   EmptyInputBehavior = "zero"

	LeadingZeroAllow LeadingZero = "allow"
	LeadingZeroDeny  LeadingZero = "deny"
	LeadingZeroKeep  LeadingZero = "keep"

	PasteError    PasteBehavior = "error"
	PasteIgnore   PasteBehavior = "ignore"
	PasteClamp    PasteBehavior = "clamp"
	PasteTruncate PasteBehavior = "truncate"
	PasteReplace  PasteBehavior = "replace"

	WheelProgressive   = "progressive"
	SerializePlus      = "+"
	SerializePercent20 = "%20"
)

// Catalog names the members of every enumerated option
var Catalog = struct {
	CurrencySymbolPlacement struct {
		Prefix, Suffix CurrencyPlacement
	}
	NegativePositiveSignPlacement struct {
		Prefix, Suffix, Left, Right, None SignPlacement
	}
	DigitalGroupSpacing struct {
		Two, TwoScaled, Three, Four GroupSpacing
	}
	DigitGroupSeparator struct {
		Comma, Dot, NormalSpace, ThinSpace, NarrowNoBreakSpace, NoBreakSpace,
		NoSeparator, Apostrophe, ArabicThousands, DotAbove string
	}
	DecimalCharacter struct {
		Comma, Dot, MiddleDot, ArabicDecimalSeparator, DecimalSeparatorKeySymbol string
	}
	EmptyInputBehavior struct {
		Focus, Press, Always, Zero EmptyInputBehavior
	}
	LeadingZero struct {
		Allow, Deny, Keep LeadingZero
	}
	OnInvalidPaste struct {
		Error, Ignore, Clamp, Truncate, Replace PasteBehavior
	}
	OverrideMinMaxLimits struct {
		Ceiling, Floor, Ignore, DoNotOverride rounding.LimitPolicy
	}
	OutputFormat struct {
		String, Number, Dot, NegativeDot, Comma, NegativeComma,
		DotNegative, CommaNegative, None normalize.OutputFormat
	}
	RoundingMethod struct {
		HalfUpSymmetric, HalfUpAsymmetric, HalfDownSymmetric, HalfDownAsymmetric,
		HalfEvenBankersRounding, UpRoundAwayFromZero, DownRoundTowardZero,
		ToCeilingTowardPositiveInfinity, ToFloorTowardNegativeInfinity,
		ToNearest05, ToNearest05Alt, UpToNext05, DownToNext05 rounding.Method
	}
	NegativeBracketsTypeOnBlur struct {
		Parentheses, Brackets, Chevrons, CurlyBraces, None string
	}
	SerializeSpaces struct {
		Plus, Percent string
	}
}{
	CurrencySymbolPlacement: struct{ Prefix, Suffix CurrencyPlacement }{CurrencyPrefix, CurrencySuffix},
	NegativePositiveSignPlacement: struct {
		Prefix, Suffix, Left, Right, None SignPlacement
	}{SignPrefix, SignSuffix, SignLeft, SignRight, SignUnset},
	DigitalGroupSpacing: struct {
		Two, TwoScaled, Three, Four GroupSpacing
	}{GroupTwo, GroupTwoScaled, GroupThree, GroupFour},
	DigitGroupSeparator: struct {
		Comma, Dot, NormalSpace, ThinSpace, NarrowNoBreakSpace, NoBreakSpace,
		NoSeparator, Apostrophe, ArabicThousands, DotAbove string
	}{",", ".", " ", "\u2009", "\u202f", "\u00a0", "", "'", "\u066c", "\u02d9"},
	DecimalCharacter: struct {
		Comma, Dot, MiddleDot, ArabicDecimalSeparator, DecimalSeparatorKeySymbol string
	}{",", ".", "\u00b7", "\u066b", "\u2396"},
	EmptyInputBehavior: struct {
		Focus, Press, Always, Zero EmptyInputBehavior
	}{EmptyFocus, EmptyPress, EmptyAlways, EmptyZero},
	LeadingZero: struct {
		Allow, Deny, Keep LeadingZero
	}{LeadingZeroAllow, LeadingZeroDeny, LeadingZeroKeep},
	OnInvalidPaste: struct {
		Error, Ignore, Clamp, Truncate, Replace PasteBehavior
	}{PasteError, PasteIgnore, PasteClamp, PasteTruncate, PasteReplace},
	OverrideMinMaxLimits: struct {
		Ceiling, Floor, Ignore, DoNotOverride rounding.LimitPolicy
	}{rounding.LimitCeiling, rounding.LimitFloor, rounding.LimitIgnore, rounding.LimitStrict},
	OutputFormat: struct {
		String, Number, Dot, NegativeDot, Comma, NegativeComma,
		DotNegative, CommaNegative, None normalize.OutputFormat
	}{
		normalize.OutputString, normalize.OutputNumber, normalize.OutputDot, normalize.OutputNegativeDot,
		normalize.OutputComma, normalize.OutputNegativeComma, normalize.OutputDotNegative,
		normalize.OutputCommaNegative, normalize.OutputNone,
	},
	RoundingMethod: struct {
		HalfUpSymmetric, HalfUpAsymmetric, HalfDownSymmetric, HalfDownAsymmetric,
		HalfEvenBankersRounding, UpRoundAwayFromZero, DownRoundTowardZero,
		ToCeilingTowardPositiveInfinity, ToFloorTowardNegativeInfinity,
		ToNearest05, ToNearest05Alt, UpToNext05, DownToNext05 rounding.Method
	}{
		rounding.HalfUpSymmetric, rounding.HalfUpAsymmetric, rounding.HalfDownSymmetric,
		rounding.HalfDownAsymmetric, rounding.HalfEven, rounding.Up, rounding.Down,
		rounding.Ceiling, rounding.Floor, rounding.NearestFive, rounding.SwissFive,
		rounding.UpFive, rounding.DownFive,
	},
	NegativeBracketsTypeOnBlur: struct {
		Parentheses, Brackets, Chevrons, CurlyBraces, None string
	}{"(,)", "[,]", "<,>", "{,}", ""},
	SerializeSpaces: struct {
		Plus, Percent string
	}{SerializePlus, SerializePercent20},
}

var (
	groupSeparators = []string{",", ".", " ", "\u2009", "\u202f", "\u00a0", "", "'", "\u066c", "\u02d9"}
	decimalChars    = []string{".", ",", "\u00b7", "\u066b", "\u2396"}
	bracketTypes    = []string{"(,)", "[,]", "<,>", "{,}"}
)

// Brackets splits a bracket type such as "(,)" into its opening and closing
// halves. ok is false for an unset or unknown type.
func Brackets(kind string) (open, close string, ok bool) {
	if !oneOf(kind, bracketTypes) {
		return "", "", false
	}
	return kind[:1], kind[2:], true
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
