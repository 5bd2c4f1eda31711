// Package cli implements the fintrack command line.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/fintrack/internal/config"
	"github.com/mmynk/fintrack/internal/storage/postgres"
	"github.com/mmynk/fintrack/internal/storage/sqlite"
	"github.com/mmynk/fintrack/internal/storage/sqlstore"
	"github.com/mmynk/fintrack/pkg/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fintrack",
	Short: "Personal finance tracker with shared expense splitting",
	Long: `fintrack records income, expenses and transfers against wallets and
splits shared expenses equally between group members.

Run 'fintrack serve' to start the API server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Colored debug logging, overriding the log section")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and installs the logger it describes.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		logging.SetupWithLevel(slog.LevelDebug)
	} else {
		logging.Setup(cfg.Log.Level, cfg.Log.Format)
	}
	return cfg, nil
}

// openStore opens the configured backend. Migrations run on open.
func openStore(cfg *config.Config) (*sqlstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.Storage.Path)
	case config.DriverPostgres:
		return postgres.New(cfg.Storage.DSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
