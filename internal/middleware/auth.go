package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// IdentityKey is the context key for storing the authenticated caller.
const IdentityKey contextKey = "identity"

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	recordCaller(ctx, id.UserID)
	return context.WithValue(ctx, IdentityKey, id)
}

// GetIdentity extracts the caller identity from the context.
// The second result is false for unauthenticated requests.
func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(auth.Identity)
	return id, ok && id.UserID != ""
}

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	id, _ := GetIdentity(ctx)
	return id.UserID
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// RequireAuth returns an interceptor that verifies bearer tokens and requires authentication.
// It extracts the token from the Authorization header, verifies it, and adds
// the caller identity to the request context.
func RequireAuth(verifier auth.Verifier) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			token, err := bearerToken(req.Header().Get("Authorization"))
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			id, err := verifier.Verify(token)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			// Call the next handler with enriched context
			return next(WithIdentity(ctx, *id), req)
		}
	}
}
