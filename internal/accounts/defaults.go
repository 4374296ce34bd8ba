package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/walletbox/walletbox/internal/id"
	"github.com/walletbox/walletbox/internal/model"
)

const (
	// DefaultName replaces a blank account name.
	DefaultName = "New account"
	// DefaultCurrency is used when no currency is given and no account exists.
	DefaultCurrency = "₽"
)

// DefaultAccounts returns the accounts a fresh wallet starts with.
func DefaultAccounts(ids id.Generator, currency string) []model.Account {
	if currency == "" {
		currency = DefaultCurrency
	}
	return []model.Account{
		{ID: ids.NewID(), Name: "Main wallet", Currency: currency, Balance: decimal.NewFromInt(12500)},
		{ID: ids.NewID(), Name: "Savings", Currency: currency, Balance: decimal.NewFromInt(50000)},
	}
}
