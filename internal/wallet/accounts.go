package wallet

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/walletbox/walletbox/internal/accounts"
	"github.com/walletbox/walletbox/internal/model"
)

// Titles of the notes recorded by account commands.
const (
	titleAccountCreated = "Account created"
	titleBalanceUpdated = "Balance updated"
	titleAccountDeleted = "Account deleted"
)

// CreateAccount adds an account and notes it in the activity log. Blank
// names and currencies get defaults; an invalid balance becomes zero.
func (w *Wallet) CreateAccount(name, currency string, initial decimal.NullDecimal) (model.Account, error) {
	var acct model.Account
	err := w.update(func(tx *txn) error {
		acct = tx.accounts.Create(name, currency, initial)
		tx.activity.Note(titleAccountCreated, acct.Name)
		return nil
	})
	if err != nil {
		return model.Account{}, err
	}
	w.log.Debug("account created", "id", acct.ID, "name", acct.Name)
	return acct, nil
}

// UpdateBalance overwrites an account balance and notes it. An invalid
// balance keeps the previous value; the note is recorded either way.
func (w *Wallet) UpdateBalance(accountID string, balance decimal.NullDecimal) (model.Account, error) {
	var acct model.Account
	err := w.update(func(tx *txn) error {
		var ok bool
		acct, ok = tx.accounts.UpdateBalance(accountID, balance)
		if !ok {
			return ErrAccountNotFound
		}
		tx.activity.Note(titleBalanceUpdated, acct.Name)
		return nil
	})
	if err != nil {
		return model.Account{}, err
	}
	return acct, nil
}

// DeleteAccount removes an account if it exists and notes the deletion.
// Activity entries that mention the account are kept. Reports whether an
// account was removed.
func (w *Wallet) DeleteAccount(accountID string) (model.Account, bool, error) {
	var (
		acct    model.Account
		removed bool
	)
	err := w.update(func(tx *txn) error {
		acct, removed = tx.accounts.Delete(accountID)
		details := acct.Name
		if !removed {
			details = accountID
		}
		tx.activity.Note(titleAccountDeleted, details)
		return nil
	})
	if err != nil {
		return model.Account{}, false, err
	}
	return acct, removed, nil
}

// Account returns the account with the given ID.
func (w *Wallet) Account(accountID string) (model.Account, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registry(w.state).Get(accountID)
}

// ResolveAccount finds an account by ID or unique ID prefix.
func (w *Wallet) ResolveAccount(ref string) (model.Account, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	acct, err := w.registry(w.state).Resolve(ref)
	if errors.Is(err, accounts.ErrNotFound) {
		return model.Account{}, fmt.Errorf("%w: %q", ErrAccountNotFound, ref)
	}
	if err != nil {
		return model.Account{}, inputError(err.Error())
	}
	return acct, nil
}
