package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage/sqlite"
)

// writeConfig creates a config file pointing at a fresh SQLite database.
func writeConfig(t *testing.T, secret string) (cfgPath, dbPath string) {
	t.Helper()
	t.Setenv("FINTRACK_JWT_SECRET", "")
	t.Setenv("FINTRACK_DB_PATH", "")

	dir := t.TempDir()
	dbPath = filepath.Join(dir, "cli.db")
	cfgPath = filepath.Join(dir, "fintrack.toml")

	content := fmt.Sprintf("[storage]\ndriver = \"sqlite\"\npath = %q\n\n[log]\nlevel = \"error\"\n", dbPath)
	if secret != "" {
		content += fmt.Sprintf("\n[auth]\njwt_secret = %q\n", secret)
	}
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))
	return cfgPath, dbPath
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestMigrate(t *testing.T) {
	cfgPath, dbPath := writeConfig(t, "")

	out, err := execute(t, "migrate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite")

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestUserAdd(t *testing.T) {
	cfgPath, dbPath := writeConfig(t, "")

	out, err := execute(t, "user", "add", "--config", cfgPath, "--email", "alice@example.com", "--name", "Alice", "--id", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", out)

	out, err = execute(t, "user", "add", "--config", cfgPath, "--email", "bob@example.com")
	require.NoError(t, err)
	bobID := out
	assert.NotEmpty(t, bobID)

	store, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer store.Close()

	alice, err := store.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", alice.DisplayName)

	bob, err := store.GetUser(context.Background(), bobID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", bob.DisplayName)
}

func TestUserAdd_RequiresEmail(t *testing.T) {
	cfgPath, _ := writeConfig(t, "")

	_, err := execute(t, "user", "add", "--config", cfgPath, "--name", "Nobody")
	assert.ErrorContains(t, err, "email required")
}

func TestCategoryAdd(t *testing.T) {
	cfgPath, dbPath := writeConfig(t, "")

	id, err := execute(t, "category", "add", "--config", cfgPath, "--name", "Salary", "--type", "INCOME")
	require.NoError(t, err)

	store, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer store.Close()

	category, err := store.GetCategory(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Salary", category.Name)
	assert.Equal(t, models.TransactionIncome, category.Type)
	assert.True(t, category.IsGlobal())
}

func TestCategoryAdd_InvalidType(t *testing.T) {
	cfgPath, _ := writeConfig(t, "")

	_, err := execute(t, "category", "add", "--config", cfgPath, "--name", "Odd", "--type", "REFUND")
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	cfgPath, _ := writeConfig(t, "cli-secret")

	out, err := execute(t, "token", "--config", cfgPath, "--user", "alice", "--email", "alice@example.com", "--name", "Alice", "--ttl", "1h")
	require.NoError(t, err)

	id, err := auth.NewJWTManager("cli-secret", 0).Verify(out)
	require.NoError(t, err)
	assert.Equal(t, "alice", id.UserID)
	assert.Equal(t, "alice@example.com", id.Email)
	assert.Equal(t, "Alice", id.Name)
}

func TestToken_RequiresSecret(t *testing.T) {
	cfgPath, _ := writeConfig(t, "")

	_, err := execute(t, "token", "--config", cfgPath, "--user", "alice", "--email", "alice@example.com")
	assert.ErrorContains(t, err, "jwt_secret")
}

func TestUnknownConfigKey(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[storage]\nbogus = 1\n"), 0600))

	_, err := execute(t, "migrate", "--config", cfgPath)
	assert.ErrorContains(t, err, "unknown config keys")
}
