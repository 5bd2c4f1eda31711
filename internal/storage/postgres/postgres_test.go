package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
)

// newTestStore connects to the database named by FINTRACK_TEST_POSTGRES_DSN.
// Tests are skipped when it is unset.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	dsn := os.Getenv("FINTRACK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("FINTRACK_TEST_POSTGRES_DSN not set")
	}
	store, err := New(dsn)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPostgresStore_ConcurrentWalletUpdates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	userID := uuid.New().String()
	if err := store.CreateUser(ctx, &models.User{ID: userID, Email: userID + "@example.com", DisplayName: "pg"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	wallet := &models.Wallet{OwnerUserID: userID, Name: "Daily", Balance: decimal.NewFromInt(100), Currency: "USD"}
	if err := store.CreateWallet(ctx, wallet); err != nil {
		t.Fatalf("CreateWallet failed: %v", err)
	}

	// Every worker withdraws 10 under the row lock; none may be lost.
	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.WithTx(ctx, func(tx storage.LedgerTx) error {
				w, err := tx.LockWallet(ctx, wallet.ID)
				if err != nil {
					return err
				}
				return tx.UpdateWalletBalance(ctx, w.ID, w.Balance.Sub(decimal.NewFromInt(10)))
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("WithTx failed: %v", err)
		}
	}

	got, err := store.GetWallet(ctx, wallet.ID)
	if err != nil {
		t.Fatalf("GetWallet failed: %v", err)
	}
	if !got.Balance.IsZero() {
		t.Errorf("Expected balance 0, got %s", got.Balance)
	}
}

func TestPostgresStore_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetWallet(context.Background(), uuid.New().String())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
