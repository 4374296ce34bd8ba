package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/walletbox/walletbox/internal/accounts"
	"github.com/walletbox/walletbox/internal/moneyfmt"
	"github.com/walletbox/walletbox/internal/wallet"
)

func newTransferCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <from> <to> <amount>",
		Short: "Move money between two accounts",
		Long: "Move money between two accounts. Accounts are given by ID, unique ID prefix or name.\n" +
			"Amounts are moved as plain numbers; currency tags are not converted.",
		Args: cobra.ExactArgs(3),
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			from, err := w.ResolveAccount(args[0])
			if err != nil {
				return err
			}
			to, err := w.ResolveAccount(args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmountArg(args[2])
			if err != nil {
				return err
			}

			entry, err := w.Transfer(from.ID, to.ID, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transferred %s: %s\n", moneyfmt.Format(*entry.Amount, entry.Currency), entry.Details)
			return nil
		}),
	}
}

// parseAmountArg parses an amount argument, rejecting non-numbers as
// invalid input.
func parseAmountArg(s string) (decimal.Decimal, error) {
	v := accounts.ParseAmount(s)
	if !v.Valid {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q is not a number", wallet.ErrInvalidInput, s)
	}
	return v.Decimal, nil
}
