package models

// Category classifies transactions. A category with an empty OwnerUserID is
// global and visible to everyone; otherwise it is visible to its owner only.
type Category struct {
	ID          string
	Name        string
	Type        TransactionType
	OwnerUserID string
	CreatedAt   int64
}

// IsGlobal reports whether the category is visible to all users.
func (c *Category) IsGlobal() bool {
	return c.OwnerUserID == ""
}

// VisibleTo reports whether the user may see the category.
func (c *Category) VisibleTo(userID string) bool {
	return c.IsGlobal() || c.OwnerUserID == userID
}
