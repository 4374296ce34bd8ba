package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one parsed row of a bank statement export.
type StatementLine struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
	Reference   string          // stable across re-exports of the same statement
}
