package financev1

type CreateWalletRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`

	// InitialBalance defaults to "0" when empty.
	InitialBalance string `json:"initialBalance,omitempty"`
}

type CreateWalletResponse struct {
	Wallet *Wallet `json:"wallet"`
}

type ListWalletsRequest struct{}

type ListWalletsResponse struct {
	Wallets []*Wallet `json:"wallets"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateCategoryResponse struct {
	Category *Category `json:"category"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}
