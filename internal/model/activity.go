package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ActivityType classifies entries in the activity log.
type ActivityType string

const (
	ActivityNote     ActivityType = "note"
	ActivityIncome   ActivityType = "income"
	ActivityExpense  ActivityType = "expense"
	ActivityTransfer ActivityType = "transfer"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityNote, ActivityIncome, ActivityExpense, ActivityTransfer:
		return true
	}
	return false
}

// ActivityEntry is one record in the activity log. Only transfers move
// balances; income and expense entries are annotations.
type ActivityEntry struct {
	ID       string           `json:"id"`
	TS       time.Time        `json:"ts"`
	Type     ActivityType     `json:"type"`
	Title    string           `json:"title"`
	Details  string           `json:"details"`
	Amount   *decimal.Decimal `json:"amount,omitempty"` // sign implied by Type
	Currency string           `json:"currency,omitempty"`
	Ref      string           `json:"ref,omitempty"` // source line reference for imported entries

	Extra  Fields          `json:"-"`
	Opaque json.RawMessage `json:"-"`
}

// HasAmount reports whether the entry carries an amount.
func (e ActivityEntry) HasAmount() bool {
	return e.Amount != nil
}
