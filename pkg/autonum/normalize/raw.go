package normalize

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rawPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// IsRaw reports whether s is a canonical raw numeric string
func IsRaw(s string) bool {
	return rawPattern.MatchString(s)
}

// Split breaks a raw numeric string into its sign, integer and fraction
// digits. The caller must have checked IsRaw.
func Split(raw string) (neg bool, intPart, fracPart string) {
	if strings.HasPrefix(raw, "-") {
		neg = true
		raw = raw[1:]
	}
	intPart, fracPart, _ = strings.Cut(raw, ".")
	return neg, intPart, fracPart
}

// IsZero reports whether every digit of raw is zero
func IsZero(raw string) bool {
	return strings.Trim(raw, "-0.") == ""
}

// DecimalLength returns the number of fraction digits of raw
func DecimalLength(raw string) int {
	_, _, frac := Split(raw)
	return len(frac)
}

// Trim drops trailing fraction zeros and the sign of a zero value.
// "-42.50" becomes "-42.5" and "-0.00" becomes "0".
func Trim(raw string) string {
	neg, intPart, frac := Split(raw)
	frac = strings.TrimRight(frac, "0")
	out := intPart
	if frac != "" {
		out += "." + frac
	}
	if neg && !IsZero(out) {
		out = "-" + out
	}
	return out
}

// Unsigned drops the sign of a zero value and keeps everything else.
func Unsigned(raw string) string {
	if strings.HasPrefix(raw, "-") && IsZero(raw) {
		return raw[1:]
	}
	return raw
}

// FromNumber renders a Go numeric value as a raw numeric string.
// ok is false for non-numeric kinds, NaN and infinities.
func FromNumber(v any) (raw string, ok bool) {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 32), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", false
		}
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case json.Number:
		if IsRaw(string(n)) {
			return string(n), true
		}
		f, err := n.Float64()
		if err != nil {
			return "", false
		}
		return FromNumber(f)
	}
	return "", false
}

// IsNumber reports whether v is one of the Go numeric kinds FromNumber accepts
func IsNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}
