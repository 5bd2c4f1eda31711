// Package ledger posts transactions against wallets and derives the debt
// records of group expenses.
//
// Every posting runs as one storage unit of work: the wallet is locked, the
// balance checked and updated, the transaction stored and, for group posts,
// one debt record written per split participant. Any failure rolls the whole
// posting back.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/calculator"
	"github.com/mmynk/fintrack/internal/events"
	"github.com/mmynk/fintrack/internal/metrics"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
)

// Options tunes the checks the engine performs while posting.
type Options struct {
	// EnforceGroupMembership rejects group posts by callers outside the group.
	EnforceGroupMembership bool

	// VerifyCategoryVisibility rejects categories owned by another user.
	VerifyCategoryVisibility bool
}

// Engine posts transactions.
type Engine struct {
	store     storage.Store
	publisher events.Publisher
	opts      Options
	now       func() time.Time
}

// NewEngine creates an engine over store. A nil publisher disables events.
func NewEngine(store storage.Store, publisher events.Publisher, opts Options) *Engine {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Engine{
		store:     store,
		publisher: publisher,
		opts:      opts,
		now:       time.Now,
	}
}

// Posting is the committed result of a post.
type Posting struct {
	Transaction *models.Transaction
	Wallet      *models.Wallet
	Debts       []*models.DebtRecord
}

// Post records a transaction for the actor and returns it.
func (e *Engine) Post(ctx context.Context, actor auth.Identity, req PostRequest) (*models.Transaction, error) {
	p, err := e.PostDetailed(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	return p.Transaction, nil
}

// PostDetailed records a transaction and returns it together with the updated
// wallet and the debt records created for it.
func (e *Engine) PostDetailed(ctx context.Context, actor auth.Identity, req PostRequest) (*Posting, error) {
	start := time.Now()

	posting, err := e.post(ctx, actor, req)

	outcome := outcomeOf(err)
	metrics.ObservePosting(string(req.Type), outcome, time.Since(start))
	if err != nil {
		if IsClientError(err) {
			slog.Debug("Posting rejected", "user_id", actor.UserID, "wallet_id", req.WalletID, "error", err)
		} else {
			slog.Error("Posting failed", "user_id", actor.UserID, "wallet_id", req.WalletID, "error", err)
		}
		return nil, err
	}

	metrics.DebtRecordsCreated.Add(float64(len(posting.Debts)))
	slog.Info("Transaction posted",
		"transaction_id", posting.Transaction.ID,
		"user_id", actor.UserID,
		"type", posting.Transaction.Type,
		"amount", posting.Transaction.Amount.String(),
		"group_id", posting.Transaction.GroupID,
		"debts", len(posting.Debts),
	)
	e.publish(ctx, posting)
	return posting, nil
}

func (e *Engine) post(ctx context.Context, actor auth.Identity, req PostRequest) (*Posting, error) {
	if actor.UserID == "" {
		return nil, &ForbiddenError{Reason: "no authenticated user"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	date, _ := models.ParseDate(req.Date)

	var posting *Posting
	err := e.store.WithTx(ctx, func(tx storage.LedgerTx) error {
		wallet, err := tx.LockWallet(ctx, req.WalletID)
		if err != nil {
			return lookupErr(err, "wallet", req.WalletID)
		}
		if wallet.OwnerUserID != actor.UserID {
			return &ForbiddenError{Reason: "wallet belongs to another user"}
		}

		category, err := tx.GetCategory(ctx, req.CategoryID)
		if err != nil {
			return lookupErr(err, "category", req.CategoryID)
		}
		if e.opts.VerifyCategoryVisibility && !category.VisibleTo(actor.UserID) {
			return &ForbiddenError{Reason: "category belongs to another user"}
		}

		balance, err := applyBalance(wallet, req)
		if err != nil {
			return err
		}
		if !balance.Equal(wallet.Balance) {
			if err := tx.UpdateWalletBalance(ctx, wallet.ID, balance); err != nil {
				return err
			}
			wallet.Balance = balance
		}

		var group *models.Group
		if req.GroupID != "" {
			group, err = tx.GetGroup(ctx, req.GroupID)
			if err != nil {
				return lookupErr(err, "group", req.GroupID)
			}
			if e.opts.EnforceGroupMembership {
				if err := RequireMember(group, actor.UserID); err != nil {
					return err
				}
			}
		}

		txn := &models.Transaction{
			Amount:      req.Amount,
			Description: req.Description,
			Date:        date,
			Type:        req.Type,
			OwnerUserID: actor.UserID,
			WalletID:    wallet.ID,
			CategoryID:  category.ID,
			GroupID:     req.GroupID,
			CreatedAt:   e.now().Unix(),
		}
		if err := tx.CreateTransaction(ctx, txn); err != nil {
			return err
		}

		var debts []*models.DebtRecord
		if group != nil && len(req.SplitUserIDs) > 0 {
			debts, err = split(ctx, tx, txn, req.SplitUserIDs)
			if err != nil {
				return err
			}
		}

		posting = &Posting{Transaction: txn, Wallet: wallet, Debts: debts}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posting, nil
}

// applyBalance returns the wallet balance after the posting.
// TRANSFER leaves the balance unchanged.
func applyBalance(wallet *models.Wallet, req PostRequest) (decimal.Decimal, error) {
	switch req.Type {
	case models.TransactionExpense:
		if wallet.Balance.LessThan(req.Amount) {
			return wallet.Balance, &InsufficientFundsError{
				WalletID:  wallet.ID,
				Requested: req.Amount,
				Available: wallet.Balance,
			}
		}
		return wallet.Balance.Sub(req.Amount), nil
	case models.TransactionIncome:
		return wallet.Balance.Add(req.Amount), nil
	default:
		return wallet.Balance, nil
	}
}

// split writes one equal-share debt record per participant, in input order.
// Duplicate ids get one record each.
func split(ctx context.Context, tx storage.LedgerTx, txn *models.Transaction, userIDs []string) ([]*models.DebtRecord, error) {
	users, err := tx.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range userIDs {
		if _, ok := users[id]; !ok {
			return nil, &NotFoundError{Entity: "splitUser", ID: id}
		}
	}

	shares, err := calculator.EqualSplit(txn.Amount, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to split amount: %w", err)
	}

	debts := make([]*models.DebtRecord, len(userIDs))
	for i, id := range userIDs {
		rec := &models.DebtRecord{
			TransactionID: txn.ID,
			DebtorUserID:  id,
			ShareAmount:   shares[i],
			Position:      i,
		}
		if err := tx.CreateDebtRecord(ctx, rec); err != nil {
			return nil, err
		}
		debts[i] = rec
	}

	slog.Debug("Split recorded",
		"transaction_id", txn.ID,
		"participants", len(userIDs),
		"share", shares[0].String(),
		"payer_residual", calculator.PayerResidual(txn.Amount, shares).String(),
	)
	return debts, nil
}

func (e *Engine) publish(ctx context.Context, p *Posting) {
	event := &events.TransactionPosted{
		TransactionID: p.Transaction.ID,
		OwnerUserID:   p.Transaction.OwnerUserID,
		WalletID:      p.Transaction.WalletID,
		GroupID:       p.Transaction.GroupID,
		Type:          string(p.Transaction.Type),
		Amount:        p.Transaction.Amount,
		WalletBalance: p.Wallet.Balance,
		Debtors:       make([]events.DebtorShare, len(p.Debts)),
		PostedAt:      time.Unix(p.Transaction.CreatedAt, 0).UTC(),
	}
	for i, d := range p.Debts {
		event.Debtors[i] = events.DebtorShare{UserID: d.DebtorUserID, ShareAmount: d.ShareAmount}
	}

	if err := e.publisher.PublishTransactionPosted(ctx, event); err != nil {
		metrics.EventPublishFailures.WithLabelValues(events.SubjectTransactionPosted).Inc()
		slog.Warn("Failed to publish event",
			"subject", events.SubjectTransactionPosted,
			"transaction_id", p.Transaction.ID,
			"error", err,
		)
	}
}

// lookupErr converts a storage miss into a NotFoundError for entity.
func lookupErr(err error, entity, id string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrForbidden):
		return metrics.OutcomeForbidden
	case errors.Is(err, ErrInsufficientFunds):
		return metrics.OutcomeInsufficientFunds
	default:
		return metrics.OutcomeError
	}
}
