package middleware

import (
	"context"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
)

// UserUpserter is the storage capability the provisioning interceptor needs.
type UserUpserter interface {
	UpsertUser(ctx context.Context, user *models.User) error
}

var _ UserUpserter = (storage.Store)(nil)

// provisionCacheSize bounds the identities remembered per process. When the
// cache fills up it is reset and callers are upserted again on their next call.
const provisionCacheSize = 10000

// Provision returns an interceptor that makes sure every authenticated caller
// has a stored user record. Must run after RequireAuth.
//
// Each identity is written once per process unless its email or name changes.
// Identities without email or name are stored with their ID as display name.
func Provision(users UserUpserter) connect.UnaryInterceptorFunc {
	return provision(users, provisionCacheSize)
}

func provision(users UserUpserter, limit int) connect.UnaryInterceptorFunc {
	var mu sync.Mutex
	seen := make(map[string]string)

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			id, ok := GetIdentity(ctx)
			if !ok {
				return next(ctx, req)
			}

			name := displayName(id.UserID, id.Email, id.Name)
			fingerprint := id.Email + "\x00" + name

			mu.Lock()
			known := seen[id.UserID] == fingerprint
			mu.Unlock()

			if !known {
				err := users.UpsertUser(ctx, &models.User{ID: id.UserID, Email: id.Email, DisplayName: name})
				if err != nil {
					slog.Error("Failed to provision user", "user_id", id.UserID, "error", err)
					return nil, connect.NewError(connect.CodeInternal, err)
				}
				mu.Lock()
				if len(seen) >= limit {
					clear(seen)
				}
				seen[id.UserID] = fingerprint
				mu.Unlock()
				slog.Debug("User provisioned", "user_id", id.UserID)
			}

			return next(ctx, req)
		}
	}
}

// displayName picks the first non-empty of name, email and user ID.
func displayName(userID, email, name string) string {
	switch {
	case name != "":
		return name
	case email != "":
		return email
	default:
		return userID
	}
}
