package session

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"pollywolly.org/internal/money"
)

func formatBalance(d decimal.Decimal) string {
	return money.Format(d)
}

// lastSegment pulls the trailing piece of a "Nam - 1234" display id so the
// detail header can show the full name with the shortened number.
func lastSegment(displayID string) string {
	if i := strings.LastIndex(displayID, " - "); i >= 0 {
		return displayID[i+len(" - "):]
	}
	return displayID
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
