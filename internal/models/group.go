package models

// Group represents a named set of users who share transactions and splits.
// Membership is the authorization boundary for group-scoped reads.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Trip to Kandy").
	Name string

	// Description is an optional free-form description.
	Description string

	// CreatorUserID is the user who created the group. The creator is always a member.
	CreatorUserID string

	// Members is the list of member user IDs, ordered by join time.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether userID is a member of the group.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}
