// Package financev1 defines the request and response messages of the
// finance.v1 RPC services.
//
// Messages are plain structs encoded as JSON. Money travels as decimal
// strings (e.g. "33.3333333333333333") and dates as YYYY-MM-DD.
package financev1

// User is the profile of a person known to the service.
type User struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

// Wallet is a money balance owned by one user.
type Wallet struct {
	Id          string `json:"id"`
	OwnerUserId string `json:"ownerUserId"`
	Name        string `json:"name"`
	Balance     string `json:"balance"`
	Currency    string `json:"currency"`
	CreatedAt   int64  `json:"createdAt"`
}

// Category classifies transactions. OwnerUserId is empty for global categories.
type Category struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	OwnerUserId string `json:"ownerUserId,omitempty"`
	IsGlobal    bool   `json:"isGlobal"`
	CreatedAt   int64  `json:"createdAt"`
}

// Group is a named set of users who share transactions.
type Group struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	CreatorUserId string   `json:"creatorUserId"`
	MemberIds     []string `json:"memberIds"`
	CreatedAt     int64    `json:"createdAt"`
}

// Transaction is a posted money movement.
type Transaction struct {
	Id          string `json:"id"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	OwnerUserId string `json:"ownerUserId"`
	WalletId    string `json:"walletId"`
	CategoryId  string `json:"categoryId"`
	GroupId     string `json:"groupId,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// DebtRecord is one participant's share of a group transaction.
type DebtRecord struct {
	Id            string `json:"id"`
	TransactionId string `json:"transactionId"`
	DebtorUserId  string `json:"debtorUserId"`
	ShareAmount   string `json:"shareAmount"`
}

// Debt is a debt record together with the transaction it came from.
type Debt struct {
	Id                string `json:"id"`
	TransactionId     string `json:"transactionId"`
	CreditorUserId    string `json:"creditorUserId"`
	DebtorUserId      string `json:"debtorUserId"`
	ShareAmount       string `json:"shareAmount"`
	TransactionAmount string `json:"transactionAmount"`
	Description       string `json:"description,omitempty"`
	Date              string `json:"date"`
	GroupId           string `json:"groupId,omitempty"`
}

// MemberBalance is a member's net position within a group.
// Positive NetBalance means the member is owed money.
type MemberBalance struct {
	UserId      string `json:"userId"`
	DisplayName string `json:"displayName"`
	NetBalance  string `json:"netBalance"`
	TotalLent   string `json:"totalLent"`
	TotalOwed   string `json:"totalOwed"`
}

// DebtEdge is a suggested payment settling part of a group's balances.
type DebtEdge struct {
	FromUserId string `json:"fromUserId"`
	ToUserId   string `json:"toUserId"`
	Amount     string `json:"amount"`
}
