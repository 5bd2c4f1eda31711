package models

// User represents a person known to the system.
//
// Users are provisioned from verified identities (see auth.Identity) or seeded
// through the CLI. Authentication itself is handled by an external identity
// provider, so no credential material is stored here.
type User struct {
	// ID is the stable user identifier shared with the identity provider.
	ID string

	// Email is the address from the identity provider. It may be empty and is
	// not a key; users are identified by ID only.
	Email string

	// DisplayName is the human-readable name shown to group members.
	DisplayName string

	// CreatedAt is the Unix timestamp when the user record was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last profile change.
	UpdatedAt int64
}
