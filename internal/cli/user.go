package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/fintrack/internal/models"
)

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userAddCmd)

	userAddCmd.Flags().String("email", "", "Email address (required)")
	userAddCmd.Flags().String("name", "", "Display name (defaults to the email)")
	userAddCmd.Flags().String("id", "", "User ID matching the identity provider subject (default: random UUID)")
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user",
	Long: `Create a user directly in the database. Users are normally provisioned
on their first authenticated request; this command seeds them ahead of time.`,
	Args: cobra.NoArgs,
	RunE: runUserAdd,
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	id, _ := cmd.Flags().GetString("id")
	if email == "" {
		return fmt.Errorf("email required: fintrack user add --email <email>")
	}
	if name == "" {
		name = email
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	user := &models.User{ID: id, Email: email, DisplayName: name}
	if err := store.CreateUser(cmd.Context(), user); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), user.ID)
	return nil
}
