package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Opening the store applies the schema.
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Schema up to date (%s)\n", store.Dialect())
	return nil
}
