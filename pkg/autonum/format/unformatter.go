package format

import (
	"strings"
	"unicode"

	"github.com/msto63/autonum/foundation/core/errors"
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/options"
)

// Unformat parses a display string produced with s back into a raw numeric
// string. Trailing zeros are kept. An empty display yields "".
func Unformat(display string, s *options.Settings) (string, error) {
	return unformat(display, s, false)
}

// UnformatLenient is Unformat that also drops any currency symbol and
// whitespace left after the configured decorations are stripped. Letters
// and unknown punctuation still fail.
func UnformatLenient(display string, s *options.Settings) (string, error) {
	return unformat(display, s, true)
}

// parser strips one decoration at a time and remembers the sign
type parser struct {
	input string
	v     string
	neg   bool
	signs int
}

func (p *parser) fail(reason string) error {
	return errors.Parse(errors.ModuleFormat, p.input, reason)
}

func (p *parser) trimSuffix(suffix string) {
	if suffix != "" {
		p.v = strings.TrimSuffix(p.v, suffix)
	}
}

// takeSign removes one leading or trailing sign
func (p *parser) takeSign() {
	p.v = strings.TrimSpace(p.v)
	for _, sign := range []string{"-", "+"} {
		var ok bool
		if strings.HasPrefix(p.v, sign) {
			p.v, ok = p.v[1:], true
		} else if strings.HasSuffix(p.v, sign) {
			p.v, ok = p.v[:len(p.v)-1], true
		}
		if ok {
			p.signs++
			p.neg = p.neg || sign == "-"
			return
		}
	}
}

// stripCurrency removes the symbol at its configured side, with or without
// its padding spaces
func (p *parser) stripCurrency(s *options.Settings) {
	cur := s.CurrencySymbol
	if cur == "" {
		return
	}
	for _, sym := range []string{cur, strings.TrimSpace(cur)} {
		if sym == "" {
			continue
		}
		if s.IsSuffixCurrency() && strings.HasSuffix(p.v, sym) {
			p.v = strings.TrimSuffix(p.v, sym)
			return
		}
		if !s.IsSuffixCurrency() && strings.HasPrefix(p.v, sym) {
			p.v = strings.TrimPrefix(p.v, sym)
			return
		}
	}
}

func unformat(display string, s *options.Settings, lenient bool) (string, error) {
	p := &parser{input: display, v: strings.TrimSpace(normalize.FoldDigits(display))}
	if p.v == "" {
		return "", nil
	}

	p.trimSuffix(s.SuffixText)
	if s.HasScale() {
		p.trimSuffix(s.ScaleSymbol)
	}
	p.v = strings.TrimSpace(p.v)

	if open, close, ok := options.Brackets(s.NegativeBracketsTypeOnBlur); ok &&
		strings.HasPrefix(p.v, open) && strings.HasSuffix(p.v, close) {
		p.v = p.v[len(open) : len(p.v)-len(close)]
		p.neg = true
		p.signs++
	}

	p.takeSign()
	p.stripCurrency(s)
	p.takeSign()
	if lenient {
		p.v = strings.Map(func(r rune) rune {
			if unicode.Is(unicode.Sc, r) || unicode.IsSpace(r) {
				return -1
			}
			return r
		}, p.v)
		p.takeSign()
	}
	if p.signs > 1 {
		return "", p.fail("more than one sign")
	}
	if p.v == "" && p.signs == 0 {
		// decorations only, as shown for an empty value
		return "", nil
	}

	v := p.v
	if s.DigitGroupSeparator != "" {
		v = strings.ReplaceAll(v, s.DigitGroupSeparator, "")
	}
	if s.DecimalCharacter != "." {
		v = strings.ReplaceAll(v, s.DecimalCharacter, ".")
	}
	// an alternative that doubles as the group separator was already
	// removed with the separators
	if alt := s.DecimalCharacterAlternative; alt != "" && alt != s.DigitGroupSeparator && alt != s.DecimalCharacter {
		v = strings.ReplaceAll(v, alt, ".")
	}
	if strings.Count(v, ".") > 1 {
		return "", p.fail("more than one decimal character")
	}

	if strings.HasPrefix(v, ".") {
		v = "0" + v
	}
	v = strings.TrimSuffix(v, ".")
	if !normalize.IsRaw(v) {
		return "", p.fail("not a number in this format")
	}

	intPart, frac, _ := strings.Cut(v, ".")
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	raw := intPart
	if frac != "" {
		raw += "." + frac
	}
	if p.neg && !normalize.IsZero(raw) {
		raw = "-" + raw
	}

	if s.HasScale() {
		return scaleUp(raw, s)
	}
	return raw, nil
}
