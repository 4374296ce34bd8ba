package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/walletbox/walletbox/internal/wallet"
)

func newSettingsCommand(a *app) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "List settings",
		Args:  cobra.NoArgs,
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			settings := w.State().Settings
			names := make([]string, 0, len(settings))
			for name := range settings {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", name, settings[name])
			}
			return nil
		}),
	}

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "set <name> <true|false>",
		Short: "Set a boolean setting",
		Args:  cobra.ExactArgs(2),
		RunE: a.walletRunE(func(cmd *cobra.Command, args []string, w *wallet.Wallet) error {
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q is not a boolean", wallet.ErrInvalidInput, args[1])
			}
			if err := w.SetSetting(args[0], value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", args[0], value)
			return nil
		}),
	})

	return settingsCmd
}
