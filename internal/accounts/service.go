package accounts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/walletbox/walletbox/internal/id"
	"github.com/walletbox/walletbox/internal/model"
)

var (
	// ErrNotFound is returned when no account matches a reference.
	ErrNotFound = errors.New("account not found")
	// ErrAmbiguous is returned when an id prefix matches several accounts.
	ErrAmbiguous = errors.New("ambiguous account reference")
)

// Registry creates, updates, deletes and looks up accounts inside a State.
// It mutates the State it was given; it does not record activity.
type Registry struct {
	state           *model.State
	ids             id.Generator
	defaultCurrency string
}

// NewRegistry returns a Registry over st.
func NewRegistry(st *model.State, ids id.Generator, defaultCurrency string) *Registry {
	if defaultCurrency == "" {
		defaultCurrency = DefaultCurrency
	}
	return &Registry{state: st, ids: ids, defaultCurrency: defaultCurrency}
}

// Create appends a new account. A blank name becomes DefaultName, a blank
// currency becomes the default currency and an invalid balance becomes zero.
func (r *Registry) Create(name, currency string, initial decimal.NullDecimal) model.Account {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = r.defaultCurrency
	}
	balance := decimal.Zero
	if initial.Valid {
		balance = initial.Decimal
	}

	acct := model.Account{ID: r.ids.NewID(), Name: name, Currency: currency, Balance: balance}
	r.state.Accounts = append(r.state.Accounts, acct)
	return acct
}

// UpdateBalance overwrites the balance of an account. An invalid value
// leaves the balance unchanged. Reports false if the account does not exist.
func (r *Registry) UpdateBalance(accountID string, balance decimal.NullDecimal) (model.Account, bool) {
	i := r.state.AccountIndex(accountID)
	if i < 0 {
		return model.Account{}, false
	}
	if balance.Valid {
		r.state.Accounts[i].SetBalance(balance.Decimal)
	}
	return r.state.Accounts[i], true
}

// Adjust adds delta to an account balance. Reports false if the account does
// not exist.
func (r *Registry) Adjust(accountID string, delta decimal.Decimal) (model.Account, bool) {
	i := r.state.AccountIndex(accountID)
	if i < 0 {
		return model.Account{}, false
	}
	r.state.Accounts[i].SetBalance(r.state.Accounts[i].Balance.Add(delta))
	return r.state.Accounts[i], true
}

// Delete removes an account and returns it. Deleting an unknown account is
// a no-op that reports false.
func (r *Registry) Delete(accountID string) (model.Account, bool) {
	i := r.state.AccountIndex(accountID)
	if i < 0 {
		return model.Account{}, false
	}
	acct := r.state.Accounts[i]
	r.state.Accounts = append(r.state.Accounts[:i:i], r.state.Accounts[i+1:]...)
	return acct, true
}

// All returns all accounts in creation order.
func (r *Registry) All() []model.Account {
	return r.state.Accounts
}

// Get returns an account by ID.
func (r *Registry) Get(accountID string) (model.Account, bool) {
	i := r.state.AccountIndex(accountID)
	if i < 0 {
		return model.Account{}, false
	}
	return r.state.Accounts[i], true
}

// Exists reports whether an account ID exists.
func (r *Registry) Exists(accountID string) bool {
	return r.state.AccountIndex(accountID) >= 0
}

// Resolve finds an account by full ID, by a unique ID prefix or, failing
// both, by a unique case-insensitive name.
func (r *Registry) Resolve(ref string) (model.Account, error) {
	if acct, ok := r.Get(ref); ok {
		return acct, nil
	}
	if ref == "" {
		return model.Account{}, ErrNotFound
	}

	var matches []model.Account
	for _, a := range r.state.Accounts {
		if strings.HasPrefix(a.ID, ref) {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		name := strings.TrimSpace(ref)
		for _, a := range r.state.Accounts {
			if strings.EqualFold(a.Name, name) {
				matches = append(matches, a)
			}
		}
	}
	switch len(matches) {
	case 0:
		return model.Account{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return model.Account{}, fmt.Errorf("%w: %q matches %d accounts", ErrAmbiguous, ref, len(matches))
	}
}

// PrimaryCurrency returns the currency of the first account, or the default
// currency when there are no accounts.
func (r *Registry) PrimaryCurrency() string {
	if len(r.state.Accounts) > 0 && r.state.Accounts[0].Currency != "" {
		return r.state.Accounts[0].Currency
	}
	return r.defaultCurrency
}

// Total sums all balances, ignoring currency tags.
func (r *Registry) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range r.state.Accounts {
		total = total.Add(a.Balance)
	}
	return total
}
