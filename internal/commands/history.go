package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walletbox/walletbox/internal/activity"
	"github.com/walletbox/walletbox/internal/wallet"
)

func newHistoryCommand(a *app) *cobra.Command {
	var limit int
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the activity log, newest first",
		Args:  cobra.NoArgs,
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			entries := w.Activity()
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			if asCSV {
				return activity.WriteCSV(cmd.OutOrStdout(), entries)
			}
			return printActivity(cmd.OutOrStdout(), entries)
		}),
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n entries (0 for all)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of a table")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Erase the activity log, leaving a single note",
		Args:  cobra.NoArgs,
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			if _, err := w.ClearActivity(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
			return nil
		}),
	})

	return cmd
}
