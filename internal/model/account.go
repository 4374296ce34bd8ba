package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Account is a named balance holder. Currency is an opaque tag: it is never
// validated and never converted.
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"` // may go negative

	// Extra and Opaque carry what was read but not understood.
	Extra  Fields          `json:"-"`
	Opaque json.RawMessage `json:"-"`
}

// SetBalance replaces the balance, dropping any raw balance value kept from
// the source document.
func (a *Account) SetBalance(d decimal.Decimal) {
	a.Balance = d
	delete(a.Extra, "balance")
}
