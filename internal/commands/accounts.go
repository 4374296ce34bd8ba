package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walletbox/walletbox/internal/accounts"
	"github.com/walletbox/walletbox/internal/moneyfmt"
	"github.com/walletbox/walletbox/internal/wallet"
)

func newAccountsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts and the total balance",
		Args:  cobra.NoArgs,
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			return printAccounts(cmd.OutOrStdout(), w.Accounts(), w.Total(), w.PrimaryCurrency())
		}),
	}
}

func newAccountCommand(a *app) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Add, change, delete or show an account",
	}
	accountCmd.AddCommand(
		newAccountAddCommand(a),
		newAccountSetCommand(a),
		newAccountDeleteCommand(a),
		newAccountShowCommand(a),
	)
	return accountCmd
}

func newAccountAddCommand(a *app) *cobra.Command {
	var currency, balance string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create an account",
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			initial := accounts.ParseAmount(balance)
			if balance != "" && !initial.Valid {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: balance %q is not a number, starting at zero\n", balance)
			}
			acct, err := w.CreateAccount(strings.Join(args, " "), currency, initial)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s\n", describeAccount(acct))
			return nil
		}),
	}

	cmd.Flags().StringVar(&currency, "currency", "", "currency tag (default from config)")
	cmd.Flags().StringVar(&balance, "balance", "", "initial balance")

	return cmd
}

func newAccountSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <account> <balance>",
		Short: "Overwrite an account balance",
		Args:  cobra.ExactArgs(2),
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			acct, err := w.ResolveAccount(args[0])
			if err != nil {
				return err
			}
			value := accounts.ParseAmount(args[1])
			if !value.Valid {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not a number, balance unchanged\n", args[1])
			}
			acct, err = w.UpdateBalance(acct.ID, value)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", acct.Name, moneyfmt.Format(acct.Balance, acct.Currency))
			return nil
		}),
	}
}

func newAccountDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account>",
		Short: "Delete an account; its history is kept",
		Args:  cobra.ExactArgs(1),
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			target := args[0]
			acct, err := w.ResolveAccount(target)
			switch {
			case err == nil:
				target = acct.ID
			case !errors.Is(err, wallet.ErrAccountNotFound):
				return err
			}

			deleted, removed, err := w.DeleteAccount(target)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No account matches %q, nothing deleted\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %s\n", describeAccount(deleted))
			return nil
		}),
	}
}

func newAccountShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			acct, err := w.ResolveAccount(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:       %s\n", acct.ID)
			fmt.Fprintf(out, "Name:     %s\n", acct.Name)
			fmt.Fprintf(out, "Currency: %s\n", acct.Currency)
			fmt.Fprintf(out, "Balance:  %s\n", moneyfmt.Format(acct.Balance, acct.Currency))
			return nil
		}),
	}
}
