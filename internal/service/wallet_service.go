package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
	pb "github.com/mmynk/fintrack/pkg/api/financev1"
	"github.com/mmynk/fintrack/pkg/api/financev1/financev1connect"
)

// WalletService implements the Connect WalletService
type WalletService struct {
	financev1connect.UnimplementedWalletServiceHandler
	store           storage.Store
	defaultCurrency string
}

// NewWalletService creates a new WalletService. defaultCurrency is used when
// a request leaves the currency empty.
func NewWalletService(store storage.Store, defaultCurrency string) *WalletService {
	return &WalletService{store: store, defaultCurrency: defaultCurrency}
}

// CreateWallet creates a wallet owned by the caller.
func (s *WalletService) CreateWallet(ctx context.Context, req *connect.Request[pb.CreateWalletRequest]) (*connect.Response[pb.CreateWalletResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("name", "is required")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Msg.Currency))
	if currency == "" {
		currency = s.defaultCurrency
	}
	if !validCurrency(currency) {
		return nil, invalidArgument("currency", "must be a three-letter ISO code")
	}

	balance := decimal.Zero
	if req.Msg.InitialBalance != "" {
		balance, err = ledger.ParseAmount("initialBalance", req.Msg.InitialBalance)
		if err != nil {
			return nil, toConnectError(err)
		}
		if balance.IsNegative() {
			return nil, invalidArgument("initialBalance", "must not be negative")
		}
	}

	wallet := &models.Wallet{
		OwnerUserID: id.UserID,
		Name:        name,
		Balance:     balance,
		Currency:    currency,
	}
	if err := s.store.CreateWallet(ctx, wallet); err != nil {
		slog.Error("CreateWallet failed", "user_id", id.UserID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Wallet created", "wallet_id", wallet.ID, "user_id", id.UserID)
	return connect.NewResponse(&pb.CreateWalletResponse{Wallet: walletToProto(wallet)}), nil
}

// ListWallets returns the caller's wallets.
func (s *WalletService) ListWallets(ctx context.Context, req *connect.Request[pb.ListWalletsRequest]) (*connect.Response[pb.ListWalletsResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	wallets, err := s.store.ListWalletsByOwner(ctx, id.UserID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Wallet, len(wallets))
	for i, w := range wallets {
		out[i] = walletToProto(w)
	}
	return connect.NewResponse(&pb.ListWalletsResponse{Wallets: out}), nil
}

func validCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
