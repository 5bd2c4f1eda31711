package service

import (
	"github.com/mmynk/fintrack/internal/calculator"
	"github.com/mmynk/fintrack/internal/models"
	pb "github.com/mmynk/fintrack/pkg/api/financev1"
)

func userToProto(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func walletToProto(w *models.Wallet) *pb.Wallet {
	return &pb.Wallet{
		Id:          w.ID,
		OwnerUserId: w.OwnerUserID,
		Name:        w.Name,
		Balance:     w.Balance.String(),
		Currency:    w.Currency,
		CreatedAt:   w.CreatedAt,
	}
}

func categoryToProto(c *models.Category) *pb.Category {
	return &pb.Category{
		Id:          c.ID,
		Name:        c.Name,
		Type:        string(c.Type),
		OwnerUserId: c.OwnerUserID,
		IsGlobal:    c.IsGlobal(),
		CreatedAt:   c.CreatedAt,
	}
}

func groupToProto(g *models.Group) *pb.Group {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return &pb.Group{
		Id:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		CreatorUserId: g.CreatorUserID,
		MemberIds:     members,
		CreatedAt:     g.CreatedAt,
	}
}

func transactionToProto(t *models.Transaction) *pb.Transaction {
	return &pb.Transaction{
		Id:          t.ID,
		Amount:      t.Amount.String(),
		Description: t.Description,
		Date:        models.FormatDate(t.Date),
		Type:        string(t.Type),
		OwnerUserId: t.OwnerUserID,
		WalletId:    t.WalletID,
		CategoryId:  t.CategoryID,
		GroupId:     t.GroupID,
		CreatedAt:   t.CreatedAt,
	}
}

func transactionsToProto(txs []*models.Transaction) []*pb.Transaction {
	out := make([]*pb.Transaction, len(txs))
	for i, t := range txs {
		out[i] = transactionToProto(t)
	}
	return out
}

func debtRecordToProto(d *models.DebtRecord) *pb.DebtRecord {
	return &pb.DebtRecord{
		Id:            d.ID,
		TransactionId: d.TransactionID,
		DebtorUserId:  d.DebtorUserID,
		ShareAmount:   d.ShareAmount.String(),
	}
}

func debtsToProto(entries []*models.DebtEntry) []*pb.Debt {
	out := make([]*pb.Debt, len(entries))
	for i, e := range entries {
		out[i] = &pb.Debt{
			Id:                e.ID,
			TransactionId:     e.TransactionID,
			CreditorUserId:    e.CreditorUserID,
			DebtorUserId:      e.DebtorUserID,
			ShareAmount:       e.ShareAmount.String(),
			TransactionAmount: e.TransactionAmount.String(),
			Description:       e.Description,
			Date:              models.FormatDate(e.Date),
			GroupId:           e.GroupID,
		}
	}
	return out
}

func balancesToProto(balances []calculator.MemberBalance, names map[string]*models.User) []*pb.MemberBalance {
	out := make([]*pb.MemberBalance, len(balances))
	for i, b := range balances {
		name := b.UserID
		if u, ok := names[b.UserID]; ok {
			name = u.DisplayName
		}
		out[i] = &pb.MemberBalance{
			UserId:      b.UserID,
			DisplayName: name,
			NetBalance:  b.NetBalance.String(),
			TotalLent:   b.TotalLent.String(),
			TotalOwed:   b.TotalOwed.String(),
		}
	}
	return out
}

func edgesToProto(edges []calculator.DebtEdge) []*pb.DebtEdge {
	out := make([]*pb.DebtEdge, len(edges))
	for i, e := range edges {
		out[i] = &pb.DebtEdge{
			FromUserId: e.From,
			ToUserId:   e.To,
			Amount:     e.Amount.String(),
		}
	}
	return out
}
