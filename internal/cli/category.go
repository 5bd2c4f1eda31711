package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/fintrack/internal/models"
)

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd)

	categoryAddCmd.Flags().String("name", "", "Category name (required)")
	categoryAddCmd.Flags().String("type", "EXPENSE", "Transaction type: INCOME, EXPENSE or TRANSFER")
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage global categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a global category visible to every user",
	Args:  cobra.NoArgs,
	RunE:  runCategoryAdd,
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	typ, _ := cmd.Flags().GetString("type")
	if name == "" {
		return fmt.Errorf("name required: fintrack category add --name <name>")
	}
	txType, err := models.ParseTransactionType(typ)
	if err != nil {
		return err
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

	category := &models.Category{Name: name, Type: txType}
	if err := store.CreateCategory(cmd.Context(), category); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), category.ID)
	return nil
}
