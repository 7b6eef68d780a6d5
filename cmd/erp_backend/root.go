package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/erp_ledger_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "erp_backend",
	Short: "Double-entry ERP ledger backend",
	Long:  "HTTP backend for a double-entry bookkeeping system with vouchers, inventory, GST and financial reports, backed by PostgreSQL.",
	// Without a subcommand the server starts.
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup builds the process logger and loads configuration.
func setup() (*slog.Logger, *config.Config, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		return nil, nil, err
	}
	return logger, cfg, nil
}
