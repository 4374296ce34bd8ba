package wallet

import (
	"github.com/shopspring/decimal"

	"github.com/walletbox/walletbox/internal/model"
)

const titleTransfer = "Transfer"

// Transfer moves amount from one account to another and records it.
//
// Both accounts must exist and differ, and amount must be positive. The
// amount is moved as a plain number even when the currency tags differ, and
// the source may go negative. Both balance changes and the activity entry
// land in one store write.
func (w *Wallet) Transfer(fromID, toID string, amount decimal.Decimal) (model.ActivityEntry, error) {
	var entry model.ActivityEntry
	err := w.update(func(tx *txn) error {
		from, ok := tx.accounts.Get(fromID)
		if !ok {
			return ErrAccountNotFound
		}
		to, ok := tx.accounts.Get(toID)
		if !ok {
			return ErrAccountNotFound
		}
		if from.ID == to.ID {
			return ErrSameAccount
		}
		if !amount.IsPositive() {
			return ErrNonPositiveAmount
		}

		tx.accounts.Adjust(from.ID, amount.Neg())
		tx.accounts.Adjust(to.ID, amount)

		amt := amount
		entry = tx.activity.Append(model.ActivityEntry{
			Type:     model.ActivityTransfer,
			Title:    titleTransfer,
			Details:  from.Name + " → " + to.Name,
			Amount:   &amt,
			Currency: from.Currency,
		})
		return nil
	})
	if err != nil {
		w.log.Debug("transfer rejected", "from", fromID, "to", toID, "amount", amount, "err", err)
		return model.ActivityEntry{}, err
	}
	w.log.Debug("transfer", "from", fromID, "to", toID, "amount", amount)
	return entry, nil
}
