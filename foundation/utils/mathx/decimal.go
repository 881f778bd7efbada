// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Implements exact decimal arithmetic on top of big.Rat.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-19 v0.2.0: TruncString and exact String for terminating values

package mathx

import (
	"math/big"
	"strings"

	anerror "github.com/msto63/autonum/foundation/core/error"
	"github.com/msto63/autonum/foundation/core/errors"
)

var (
	bigTen  = big.NewInt(10)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
)

// Decimal represents a decimal number with arbitrary precision.
// The zero value is 0.
type Decimal struct {
	value *big.Rat
}

// NewDecimal creates a new Decimal from a string representation.
// Supports formats like "123.45", "-67.89", "1e3" and "1/2".
func NewDecimal(s string) (Decimal, error) {
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Decimal{}, errors.Parse(errors.ModuleMathx, s, "not a decimal number")
	}
	return Decimal{value: rat}, nil
}

// MustNewDecimal creates a new Decimal from a string, panicking on error
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// Zero returns a Decimal representing zero
func Zero() Decimal {
	return Decimal{value: new(big.Rat)}
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns d + other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns d - other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns d * other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Divide returns d / other, failing on a zero divisor
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, errors.NewErrorBuilder(errors.ModuleMathx).
			Operation("divide").
			Message("division by zero").
			Code(anerror.CodeDivisionByZero).
			Detail("dividend", d.String()).
			Build()
	}
	return Decimal{value: new(big.Rat).Quo(d.rat(), other.rat())}, nil
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// Abs returns |d|
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat())}
}

// Sign returns -1, 0 or 1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// IsZero reports whether d == 0
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsNegative reports whether d < 0
func (d Decimal) IsNegative() bool {
	return d.Sign() < 0
}

// Compare returns -1, 0 or 1 as d is less than, equal to or greater than other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal reports whether d == other
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// LessThan reports whether d < other
func (d Decimal) LessThan(other Decimal) bool {
	return d.Compare(other) < 0
}

// GreaterThan reports whether d > other
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.Compare(other) > 0
}

// Min returns the smaller of d and other
func (d Decimal) Min(other Decimal) Decimal {
	if d.LessThan(other) {
		return d
	}
	return other
}

// Max returns the larger of d and other
func (d Decimal) Max(other Decimal) Decimal {
	if d.GreaterThan(other) {
		return d
	}
	return other
}

// IsTerminating reports whether d has a finite decimal expansion
func (d Decimal) IsTerminating() bool {
	return d.DecimalPlaces() >= 0
}

// DecimalPlaces returns the number of fraction digits of the exact decimal
// expansion, or -1 when the expansion does not terminate.
func (d Decimal) DecimalPlaces() int {
	den := new(big.Int).Set(d.rat().Denom())
	twos, fives := 0, 0
	rem := new(big.Int)
	for {
		q, r := new(big.Int).QuoRem(den, bigTwo, rem)
		if r.Sign() != 0 {
			break
		}
		den, twos = q, twos+1
	}
	for {
		q, r := new(big.Int).QuoRem(den, bigFive, rem)
		if r.Sign() != 0 {
			break
		}
		den, fives = q, fives+1
	}
	if den.Cmp(big.NewInt(1)) != 0 {
		return -1
	}
	if twos > fives {
		return twos
	}
	return fives
}

// TruncString renders d truncated toward zero at places fraction digits.
// exact reports whether no non-zero digit was cut off. A negative value keeps
// its sign even when the truncated digits are all zero.
func (d Decimal) TruncString(places int) (s string, exact bool) {
	if places < 0 {
		places = 0
	}
	r := d.rat()
	num := new(big.Int).Abs(r.Num())
	num.Mul(num, new(big.Int).Exp(bigTen, big.NewInt(int64(places)), nil))
	q, rem := new(big.Int).QuoRem(num, r.Denom(), new(big.Int))

	digits := q.String()
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}

	var b strings.Builder
	if r.Sign() < 0 {
		b.WriteByte('-')
	}
	intLen := len(digits) - places
	b.WriteString(digits[:intLen])
	if places > 0 {
		b.WriteByte('.')
		b.WriteString(digits[intLen:])
	}
	return b.String(), rem.Sign() == 0
}

// StringFixed renders d with exactly places fraction digits, rounding
// halves away from zero
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.rat().FloatString(places)
}

// String returns the exact decimal expansion when it terminates, and 20
// fraction digits otherwise
func (d Decimal) String() string {
	if p := d.DecimalPlaces(); p >= 0 {
		s, _ := d.TruncString(p)
		return s
	}
	return d.rat().FloatString(20)
}

// Float64 returns the nearest float64. Precision is lost beyond 2^53.
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}
