package normalize

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/msto63/autonum/foundation/core/errors"
)

// digitMapper maps Arabic-Indic and Extended Arabic-Indic digits as well as
// the Unicode minus sign to ASCII.
var digitMapper = runes.Map(func(r rune) rune {
	switch {
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r == '−':
		return '-'
	}
	return r
})

// FoldDigits maps non-ASCII decimal digits to ASCII after NFC composition.
// Separators are left alone: U+066B is a valid decimal character.
func FoldDigits(s string) string {
	if isASCII(s) {
		return s
	}
	// a chain keeps state, so it is built per call
	out, _, err := transform.String(transform.Chain(norm.NFC, digitMapper), s)
	if err != nil {
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// ToRaw converts a localized digits-and-sign string into a raw numeric
// string. The sign may lead or trail. decimalChar and the optional
// alternative are both read as the decimal point.
func ToRaw(s, decimalChar, alternative string) (string, error) {
	v := strings.TrimSpace(FoldDigits(s))

	neg := false
	switch {
	case strings.HasPrefix(v, "-"):
		neg, v = true, v[1:]
	case strings.HasSuffix(v, "-"):
		neg, v = true, v[:len(v)-1]
	case strings.HasPrefix(v, "+"):
		v = v[1:]
	}

	if decimalChar != "" && decimalChar != "." {
		v = strings.ReplaceAll(v, decimalChar, ".")
	}
	if alternative != "" && alternative != decimalChar {
		v = strings.ReplaceAll(v, alternative, ".")
	}
	if strings.HasPrefix(v, ".") {
		v = "0" + v
	}
	v = strings.TrimSuffix(v, ".")

	if neg {
		v = "-" + v
	}
	if !IsRaw(v) {
		return "", errors.Parse(errors.ModuleNormalize, s, "not a numeric string")
	}
	return v, nil
}
