package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity reads a numeric field written with either a comma or a dot
// as decimal separator. Unparsable text counts as zero.
func ParseQuantity(text string) decimal.Decimal {
	v, ok := parseDecimal(text)
	if !ok {
		return decimal.Zero
	}
	return v
}

func parseDecimal(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}
