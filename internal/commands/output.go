package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/walletbox/walletbox/internal/id"
	"github.com/walletbox/walletbox/internal/model"
	"github.com/walletbox/walletbox/internal/moneyfmt"
)

const timeLayout = "2006-01-02 15:04"

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printAccounts(out io.Writer, accts []model.Account, total decimal.Decimal, currency string) error {
	if len(accts) == 0 {
		fmt.Fprintln(out, "No accounts. Add one with: walletbox account add <name>")
		return nil
	}
	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tNAME\tBALANCE")
	for _, a := range accts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id.Short(a.ID), a.Name, moneyfmt.Format(a.Balance, a.Currency))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Total: %s\n", moneyfmt.Format(total, currency))
	return nil
}

// entryAmount renders the amount column of an activity entry: signed for
// income and expense, plain for transfers, empty for notes.
func entryAmount(e model.ActivityEntry) string {
	if !e.HasAmount() {
		return ""
	}
	switch e.Type {
	case model.ActivityIncome:
		return moneyfmt.Signed("+", *e.Amount, e.Currency)
	case model.ActivityExpense:
		return moneyfmt.Signed("-", *e.Amount, e.Currency)
	case model.ActivityTransfer:
		return moneyfmt.Format(*e.Amount, e.Currency)
	default:
		return ""
	}
}

func printActivity(out io.Writer, entries []model.ActivityEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No activity.")
		return nil
	}
	tw := newTable(out)
	fmt.Fprintln(tw, "TIME\tTYPE\tTITLE\tDETAILS\tAMOUNT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.TS.Local().Format(timeLayout), e.Type, e.Title, e.Details, entryAmount(e))
	}
	return tw.Flush()
}

func describeAccount(a model.Account) string {
	return fmt.Sprintf("%s %s (%s)", id.Short(a.ID), a.Name, moneyfmt.Format(a.Balance, a.Currency))
}
