package financev1

type PostTransactionRequest struct {
	Amount       string   `json:"amount"`
	Description  string   `json:"description,omitempty"`
	Date         string   `json:"date"`
	Type         string   `json:"type"`
	WalletId     string   `json:"walletId"`
	CategoryId   string   `json:"categoryId"`
	GroupId      string   `json:"groupId,omitempty"`
	SplitUserIds []string `json:"splitUserIds,omitempty"`
}

type PostTransactionResponse struct {
	Transaction   *Transaction  `json:"transaction"`
	WalletBalance string        `json:"walletBalance"`
	DebtRecords   []*DebtRecord `json:"debtRecords"`
}

type ListTransactionsRequest struct{}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type DeleteTransactionRequest struct {
	TransactionId string `json:"transactionId"`
}

type DeleteTransactionResponse struct{}

type ListOwedToMeRequest struct{}

type ListOwedToMeResponse struct {
	Debts []*Debt `json:"debts"`
}

type ListIOweRequest struct{}

type ListIOweResponse struct {
	Debts []*Debt `json:"debts"`
}
