package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/middleware"
	"github.com/mmynk/fintrack/internal/storage"
)

// toConnectError maps domain errors onto Connect status codes.
// Errors that are already *connect.Error pass through unchanged.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case errors.Is(err, ledger.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ledger.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// caller returns the authenticated identity or an Unauthenticated error.
func caller(ctx context.Context) (auth.Identity, error) {
	id, ok := middleware.GetIdentity(ctx)
	if !ok {
		return auth.Identity{}, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return id, nil
}

func invalidArgument(field, format string, args ...any) error {
	return toConnectError(&ledger.ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}
