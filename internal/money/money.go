// Package money defines the currency value semantics shared by the whole
// ledger: fixed two-decimal precision with half-up rounding. Amounts are
// decimal.Decimal, never floats.
package money

import "github.com/shopspring/decimal"

// Places is the minor-unit precision every stored amount is rounded to.
const Places = 2

// Round applies half-up rounding at two decimal places. Every amount that
// is stored on a record or displayed to a user must pass through here.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// IsPositive reports whether d is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.IsPositive()
}

// Format renders an amount with a sign-aware currency prefix: $12.34 for
// credits, -$12.34 for debits. Always two fraction digits.
func Format(d decimal.Decimal) string {
	r := Round(d)
	if r.IsNegative() {
		return "-$" + r.Abs().StringFixed(Places)
	}
	return "$" + r.StringFixed(Places)
}

// MustParse converts a decimal literal into an amount. It is meant for
// seed data and tests where the input is a compile-time constant.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
