package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/walletbox/walletbox/internal/document"
	"github.com/walletbox/walletbox/internal/wallet"
)

// DefaultExportName is used when export is given a directory.
const DefaultExportName = "wallet-sandbox-data.json"

func newExportCommand(a *app) *cobra.Command {
	var gzipped bool

	cmd := &cobra.Command{
		Use:   "export [file|dir|-]",
		Short: "Write the whole wallet as a JSON document (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			var buf bytes.Buffer
			if err := w.Export(&buf); err != nil {
				return err
			}
			data := buf.Bytes()
			if gzipped {
				var zbuf bytes.Buffer
				if err := document.WriteGzip(&zbuf, data); err != nil {
					return err
				}
				data = zbuf.Bytes()
			}

			target := "-"
			if len(args) > 0 {
				target = args[0]
			}
			if target == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			path, err := exportPath(target, gzipped)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", path)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&gzipped, "gzip", false, "compress the document with gzip")

	return cmd
}

func exportPath(target string, gzipped bool) (string, error) {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return target, nil
	}
	name := DefaultExportName
	if gzipped {
		name += ".gz"
	}
	return filepath.Join(target, name), nil
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the whole wallet with an exported document (gzip accepted)",
		Args:  cobra.ExactArgs(1),
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening import: %w", err)
				}
				defer f.Close()
				in = f
			}
			sum, err := w.Import(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d accounts, %d activity entries\n", sum.Accounts, sum.Activity)
			return nil
		}),
	}
}
