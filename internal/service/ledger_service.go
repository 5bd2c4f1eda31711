package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/storage"
	pb "github.com/mmynk/fintrack/pkg/api/financev1"
	"github.com/mmynk/fintrack/pkg/api/financev1/financev1connect"
)

// LedgerService implements the Connect LedgerService
type LedgerService struct {
	financev1connect.UnimplementedLedgerServiceHandler
	engine *ledger.Engine
	store  storage.Store
}

// NewLedgerService creates a new LedgerService posting through engine.
func NewLedgerService(engine *ledger.Engine, store storage.Store) *LedgerService {
	return &LedgerService{engine: engine, store: store}
}

// PostTransaction records a transaction for the caller.
func (s *LedgerService) PostTransaction(ctx context.Context, req *connect.Request[pb.PostTransactionRequest]) (*connect.Response[pb.PostTransactionResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := ledger.ParseAmount("amount", req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}
	typ, err := ledger.ParseType(req.Msg.Type)
	if err != nil {
		return nil, toConnectError(err)
	}

	posting, err := s.engine.PostDetailed(ctx, id, ledger.PostRequest{
		Amount:       amount,
		Description:  strings.TrimSpace(req.Msg.Description),
		Date:         req.Msg.Date,
		Type:         typ,
		WalletID:     req.Msg.WalletId,
		CategoryID:   req.Msg.CategoryId,
		GroupID:      req.Msg.GroupId,
		SplitUserIDs: req.Msg.SplitUserIds,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	records := make([]*pb.DebtRecord, len(posting.Debts))
	for i, d := range posting.Debts {
		records[i] = debtRecordToProto(d)
	}

	return connect.NewResponse(&pb.PostTransactionResponse{
		Transaction:   transactionToProto(posting.Transaction),
		WalletBalance: posting.Wallet.Balance.String(),
		DebtRecords:   records,
	}), nil
}

// ListTransactions returns the caller's transactions.
func (s *LedgerService) ListTransactions(ctx context.Context, req *connect.Request[pb.ListTransactionsRequest]) (*connect.Response[pb.ListTransactionsResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := s.store.ListTransactionsByOwner(ctx, id.UserID)
	if err != nil {
		slog.Error("ListTransactions failed", "user_id", id.UserID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.ListTransactionsResponse{
		Transactions: transactionsToProto(txs),
	}), nil
}

// DeleteTransaction removes a transaction owned by the caller together with
// its debt records. The wallet balance is not adjusted.
func (s *LedgerService) DeleteTransaction(ctx context.Context, req *connect.Request[pb.DeleteTransactionRequest]) (*connect.Response[pb.DeleteTransactionResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.TransactionId == "" {
		return nil, invalidArgument("transactionId", "is required")
	}

	txn, err := s.store.GetTransaction(ctx, req.Msg.TransactionId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if txn.OwnerUserID != id.UserID {
		return nil, toConnectError(&ledger.ForbiddenError{Reason: "transaction belongs to another user"})
	}

	if err := s.store.DeleteTransaction(ctx, txn.ID); err != nil {
		slog.Error("DeleteTransaction failed", "transaction_id", txn.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Transaction deleted", "transaction_id", txn.ID, "user_id", id.UserID)
	return connect.NewResponse(&pb.DeleteTransactionResponse{}), nil
}

// ListOwedToMe returns debt records where the caller paid and another user owes.
func (s *LedgerService) ListOwedToMe(ctx context.Context, req *connect.Request[pb.ListOwedToMeRequest]) (*connect.Response[pb.ListOwedToMeResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.ListDebtsOwedTo(ctx, id.UserID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ListOwedToMeResponse{Debts: debtsToProto(entries)}), nil
}

// ListIOwe returns debt records where another user paid and the caller owes.
func (s *LedgerService) ListIOwe(ctx context.Context, req *connect.Request[pb.ListIOweRequest]) (*connect.Response[pb.ListIOweResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.ListDebtsOwedBy(ctx, id.UserID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ListIOweResponse{Debts: debtsToProto(entries)}), nil
}
