package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// callKey carries the per-RPC log record filled in by inner interceptors.
const callKey contextKey = "call"

// call is the mutable part of an RPC log line. RequireAuth runs inside the
// logging interceptor, so the caller is only known once next returns.
type call struct {
	userID string
}

func recordCaller(ctx context.Context, userID string) {
	if c, ok := ctx.Value(callKey).(*call); ok {
		c.userID = userID
	}
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, caller, request ID, duration and error code.
// Server-side failures are logged at error level, client errors at warn.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			rec := &call{userID: GetUserID(ctx)}

			resp, err := next(context.WithValue(ctx, callKey, rec), req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("user_id", rec.userID),
				slog.String("request_id", chimw.GetReqID(ctx)),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			if err == nil {
				slog.LogAttrs(ctx, slog.LevelInfo, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs,
				slog.String("code", code.String()),
				slog.String("error", errorMessage(err)),
			)
			slog.LogAttrs(ctx, levelFor(code), "RPC error", attrs...)
			return resp, err
		}
	}
}

func levelFor(code connect.Code) slog.Level {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return slog.LevelError
	}
	return slog.LevelWarn
}

func errorMessage(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Message()
	}
	return err.Error()
}

// RequestLogger is HTTP middleware that logs one line per request.
// It expects chi's RequestID middleware to run first.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", chimw.GetReqID(r.Context()),
			"remote", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
