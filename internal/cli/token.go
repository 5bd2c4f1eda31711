package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/fintrack/internal/auth"
)

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("user", "", "User ID placed in the token (required)")
	tokenCmd.Flags().String("email", "", "Email claim (required)")
	tokenCmd.Flags().String("name", "", "Name claim")
	tokenCmd.Flags().Duration("ttl", 0, "Token lifetime (default: auth.token_ttl)")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for local development",
	Long: `Sign a token with the configured auth.jwt_secret. Production tokens come from
the identity provider; this command exists for local testing.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func runToken(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	if userID == "" || email == "" {
		return fmt.Errorf("user and email required: fintrack token --user <id> --email <email>")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireSecret(); err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = cfg.Auth.TokenTTL.Duration
	}

	m := auth.NewJWTManager(cfg.Auth.JWTSecret, ttl).WithIssuer(cfg.Auth.Issuer)
	token, err := m.Generate(auth.Identity{UserID: userID, Email: email, Name: name})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
