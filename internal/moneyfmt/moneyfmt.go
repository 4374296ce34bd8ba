// Package moneyfmt renders amounts for display. Currency tags are opaque
// strings printed in front of the number.
package moneyfmt

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	// Thousand groups integer digits (a no-break space).
	Thousand = "\u00a0"
	// Decimal separates the fraction.
	Decimal = ","
	// MaxFraction is the most fraction digits ever shown.
	MaxFraction = 2
)

// Format renders amount as sign, currency and the absolute value, rounded
// to at most two fraction digits with trailing zeros dropped:
// Format(-1500.5, "₽") is "-₽1 500,5".
func Format(amount decimal.Decimal, currency string) string {
	d := amount.Round(MaxFraction)
	frac := fractionDigits(d)
	f := money.NewFormatter(frac, Decimal, Thousand, currency, "$1")
	return f.Format(d.Shift(int32(frac)).IntPart())
}

// Signed renders amount with an explicit sign character in front, the way
// income (+) and expense (-) entries are shown.
func Signed(sign string, amount decimal.Decimal, currency string) string {
	return sign + Format(amount.Abs(), currency)
}

func fractionDigits(d decimal.Decimal) int {
	for n := 0; n < MaxFraction; n++ {
		if d.Shift(int32(n)).IsInteger() {
			return n
		}
	}
	return MaxFraction
}
