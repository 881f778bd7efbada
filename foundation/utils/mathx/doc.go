// Package mathx provides exact decimal arithmetic and currency data.
//
// Package: mathx
// Title: Exact Decimal Arithmetic and Currency Data
// Description: Decimal wraps math/big.Rat so that values beyond the float64
//              safe-integer range keep every digit. It covers comparison for
//              range checks, division for display scaling, and truncation with
//              an exactness flag so that callers can apply their own rounding
//              rules to non-terminating quotients. The currency registry is
//              backed by the CLDR tables in golang.org/x/text/currency.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-19 v0.2.0: Truncation with exactness flag, CLDR currency lookup
package mathx
