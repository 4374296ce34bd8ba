package accounts

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses user input such as "1500", "-20.5" or "1500,50".
// Anything that is not a finite decimal yields an invalid NullDecimal.
func ParseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
