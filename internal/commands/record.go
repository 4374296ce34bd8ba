package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walletbox/walletbox/internal/importer"
	"github.com/walletbox/walletbox/internal/model"
	"github.com/walletbox/walletbox/internal/wallet"
)

func newRecordCommand(a *app) *cobra.Command {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Record income or expenses in the activity log (balances do not change)",
	}
	recordCmd.AddCommand(
		newRecordKindCommand(a, model.ActivityIncome),
		newRecordKindCommand(a, model.ActivityExpense),
		newRecordImportCommand(a),
	)
	return recordCmd
}

func newRecordKindCommand(a *app, kind model.ActivityType) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind) + " <amount> [details]",
		Short: "Record " + string(kind),
		Args:  cobra.MinimumNArgs(1),
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			amount, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}
			entry, err := w.Record(kind, amount, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", entryAmount(entry), entry.Title, entry.Details)
			return nil
		}),
	}
}

func newRecordImportCommand(a *app) *cobra.Command {
	var format, inbox string

	cmd := &cobra.Command{
		Use:   "import [file.csv...]",
		Short: "Record every line of bank statement CSVs",
		Long: "Record every line of bank statement CSVs: positive amounts as income, negative as expense.\n" +
			"With --inbox, every CSV in the directory is recorded and then moved to its processed/ subdirectory.",
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			reg := importer.DefaultRegistry()
			if reg.Get(format) == nil {
				return fmt.Errorf("unknown statement format %q (known: %s)", format, strings.Join(reg.Formats(), ", "))
			}

			paths := args
			if inbox != "" {
				files, err := importer.Scan(inbox)
				if err != nil {
					return err
				}
				for _, f := range files {
					paths = append(paths, f.Path)
				}
			}
			if len(paths) == 0 {
				return errors.New("no statement files given")
			}

			out := cmd.OutOrStdout()
			for _, path := range paths {
				lines, err := reg.ParseFile(format, path)
				if err != nil {
					return err
				}
				entries, skipped, err := w.RecordStatement(lines)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Recorded %d entries from %s", len(entries), filepath.Base(path))
				if skipped > 0 {
					fmt.Fprintf(out, ", skipped %d already recorded", skipped)
				}
				fmt.Fprintln(out)

				if inbox != "" && filepath.Dir(path) == filepath.Clean(inbox) {
					if err := importer.MarkProcessed(inbox, filepath.Base(path)); err != nil {
						return err
					}
				}
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&format, "format", "chase", "statement format")
	cmd.Flags().StringVar(&inbox, "inbox", "", "directory of statement CSVs to record and move to processed/")

	return cmd
}
