package wallet

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/walletbox/walletbox/internal/model"
)

const (
	titleIncome    = "Income"
	titleExpense   = "Expense"
	noDescription  = "No description"
	dateLayout     = "2006-01-02"
	detailsDateSep = " · "
)

// Record adds an income or expense entry to the activity log. Such entries
// are annotations only: no balance changes. The entry takes the currency of
// the first account.
func (w *Wallet) Record(kind model.ActivityType, amount decimal.Decimal, details string) (model.ActivityEntry, error) {
	var entry model.ActivityEntry
	err := w.update(func(tx *txn) error {
		var err error
		entry, err = record(tx, kind, amount, details, "")
		return err
	})
	if err != nil {
		return model.ActivityEntry{}, err
	}
	return entry, nil
}

// RecordStatement records every non-zero statement line as income (positive
// amounts) or expense (negative amounts). A line whose reference is already
// in the activity log is skipped, so recording the same statement twice adds
// nothing the second time. All lines land in one store write.
func (w *Wallet) RecordStatement(lines []model.StatementLine) (recorded []model.ActivityEntry, skipped int, err error) {
	err = w.update(func(tx *txn) error {
		refs := make(map[string]bool)
		for _, e := range tx.state.Activity {
			if e.Ref != "" {
				refs[e.Ref] = true
			}
		}
		for _, line := range lines {
			if line.Amount.IsZero() {
				continue
			}
			if line.Reference != "" && refs[line.Reference] {
				skipped++
				continue
			}
			kind := model.ActivityIncome
			if line.Amount.IsNegative() {
				kind = model.ActivityExpense
			}
			details := line.Description
			if !line.Date.IsZero() {
				details += detailsDateSep + line.Date.Format(dateLayout)
			}
			e, err := record(tx, kind, line.Amount.Abs(), details, line.Reference)
			if err != nil {
				return err
			}
			if line.Reference != "" {
				refs[line.Reference] = true
			}
			recorded = append(recorded, e)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if skipped > 0 {
		w.log.Info("skipped statement lines already recorded", "skipped", skipped)
	}
	return recorded, skipped, nil
}

func record(tx *txn, kind model.ActivityType, amount decimal.Decimal, details, ref string) (model.ActivityEntry, error) {
	var title string
	switch kind {
	case model.ActivityIncome:
		title = titleIncome
	case model.ActivityExpense:
		title = titleExpense
	default:
		return model.ActivityEntry{}, ErrInvalidKind
	}
	if !amount.IsPositive() {
		return model.ActivityEntry{}, ErrNonPositiveAmount
	}
	details = strings.TrimSpace(details)
	if details == "" {
		details = noDescription
	}

	amt := amount
	return tx.activity.Append(model.ActivityEntry{
		Type:     kind,
		Title:    title,
		Details:  details,
		Amount:   &amt,
		Currency: tx.accounts.PrimaryCurrency(),
		Ref:      ref,
	}), nil
}

// ClearActivity empties the activity log, leaving a single note behind.
func (w *Wallet) ClearActivity() (model.ActivityEntry, error) {
	var marker model.ActivityEntry
	err := w.update(func(tx *txn) error {
		marker = tx.activity.Clear()
		return nil
	})
	if err != nil {
		return model.ActivityEntry{}, err
	}
	return marker, nil
}
