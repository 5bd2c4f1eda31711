package auth

import (
	"errors"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// Identity is the verified caller of a request, taken from token claims.
// It is used for authorization only; the stored profile is a models.User
// joined to it by UserID.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Verifier defines the interface for bearer token verification.
// This abstraction allows swapping the shared-secret JWT check for another
// identity provider integration without changing the interceptors.
type Verifier interface {
	// Verify checks the token and returns the identity it carries.
	// Returns an error wrapping ErrInvalidToken if the token is rejected.
	Verify(token string) (*Identity, error)
}
