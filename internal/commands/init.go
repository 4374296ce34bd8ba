package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/walletbox/walletbox/internal/config"
)

func newInitCommand(a *app) *cobra.Command {
	var force bool
	var backend string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := config.Home()
			if err != nil {
				return err
			}
			path := a.configPath
			if path == "" {
				path = filepath.Join(home, config.FileName)
			}
			return runInit(cmd, path, home, backend, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.Flags().StringVar(&backend, "store", "file", "store backend: file, sqlite or memory")

	return cmd
}

func runInit(cmd *cobra.Command, path, home, backend string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	cfg := config.Default(home)
	cfg.Store.Backend = backend
	switch backend {
	case "sqlite":
		cfg.Store.Path = filepath.Join(home, "wallet.db")
	case "memory":
		cfg.Store.Path = ""
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Store.Backend == "file" {
		if err := os.MkdirAll(cfg.Store.Path, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (store: %s)\n", path, cfg.Store.Backend)
	return nil
}
