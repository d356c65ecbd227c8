package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"moneytracker/internal/config"
	"moneytracker/internal/database"
	"moneytracker/internal/kvstore"
)

var (
	flagBackend string
	flagPrefix  string
)

var rootCmd = &cobra.Command{
	Use:           "moneytracker",
	Short:         "Expense tracker snapshot tools",
	Long:          "Read the expense tracker snapshot: widget summary and CSV export.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Store backend: memory, sqlite, postgres or redis (default: STORE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&flagPrefix, "prefix", "", "Key prefix (default: KEY_PREFIX)")
}

// openStore opens the configured backend read-only, applying flag overrides.
func openStore(ctx context.Context) (kvstore.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagBackend != "" {
		cfg.StoreBackend = flagBackend
	}
	if flagPrefix != "" {
		cfg.KeyPrefix = flagPrefix
	}
	return database.OpenKVReadOnly(ctx, cfg)
}
