// Package commands implements the walletbox command line.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/walletbox/walletbox/internal/buildinfo"
	"github.com/walletbox/walletbox/internal/config"
	"github.com/walletbox/walletbox/internal/id"
	"github.com/walletbox/walletbox/internal/logging"
	"github.com/walletbox/walletbox/internal/store"
	"github.com/walletbox/walletbox/internal/wallet"
)

// app carries the global flags and the resources opened from them.
type app struct {
	configPath string
	envFile    string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "walletbox",
		Short:   "Local wallet sandbox: accounts, transfers and an activity log",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $WALLETBOX_HOME/walletbox.yaml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file with WALLETBOX_* variables")

	rootCmd.AddCommand(
		newInitCommand(a),
		newAccountsCommand(a),
		newAccountCommand(a),
		newTransferCommand(a),
		newRecordCommand(a),
		newHistoryCommand(a),
		newSettingsCommand(a),
		newExportCommand(a),
		newImportCommand(a),
		newResetCommand(a),
		newQueryCommand(a),
	)

	return rootCmd
}

// walletRunE opens the configured wallet around fn.
func (a *app) walletRunE(fn func(cmd *cobra.Command, args []string, w *wallet.Wallet) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		w, closeStore, err := a.open(cmd)
		if err != nil {
			return err
		}
		defer closeStore()
		return fn(cmd, args, w)
	}
}

func (a *app) open(cmd *cobra.Command) (*wallet.Wallet, func(), error) {
	cfg, err := config.Resolve(a.configPath, a.envFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	ids, err := id.New(cfg.IDs.Scheme)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	closeStore := func() {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.Warn("closing store", "err", err)
			}
		}
	}

	opts := []wallet.Option{
		wallet.WithIDs(ids),
		wallet.WithLogger(log),
		wallet.WithAppName(cfg.AppName),
		wallet.WithCurrency(cfg.Defaults.Currency),
	}
	if cfg.Store.Key != "" {
		opts = append(opts, wallet.WithKey(cfg.Store.Key))
	}
	w, err := wallet.Open(s, opts...)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	log.Debug("wallet opened", slog.String("backend", cfg.Store.Backend), slog.String("path", cfg.Store.Path))
	return w, closeStore, nil
}
