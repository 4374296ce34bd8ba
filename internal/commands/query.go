package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"

	"github.com/walletbox/walletbox/internal/wallet"
)

func newQueryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "Evaluate a JSONPath expression against the wallet document",
		Example: "  walletbox query '$.accounts[*].name'\n" +
			"  walletbox query '$.activity[?(@.type==\"transfer\")].amount'",
		Args: cobra.ExactArgs(1),
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			var buf bytes.Buffer
			if err := w.Export(&buf); err != nil {
				return err
			}
			var doc any
			if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
				return fmt.Errorf("decoding document: %w", err)
			}

			result, err := jsonpath.Get(args[0], doc)
			if err != nil {
				return fmt.Errorf("query %q: %w", args[0], err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}),
	}
}
