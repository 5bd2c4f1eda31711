// Package server assembles the HTTP surface: the chi router, CORS, health and
// metrics endpoints, and the Connect services behind the auth interceptors.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/config"
	"github.com/mmynk/fintrack/internal/events"
	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/middleware"
	"github.com/mmynk/fintrack/internal/service"
	"github.com/mmynk/fintrack/internal/storage"
	"github.com/mmynk/fintrack/pkg/api/financev1/financev1connect"
)

// Server serves the finance.v1 API over HTTP/1.1 and h2c.
type Server struct {
	cfg      *config.Config
	store    storage.Store
	engine   *ledger.Engine
	verifier auth.Verifier
}

// New wires the services over store. A nil publisher disables events.
func New(cfg *config.Config, store storage.Store, publisher events.Publisher) (*Server, error) {
	if err := cfg.RequireSecret(); err != nil {
		return nil, err
	}

	verifier := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration).WithIssuer(cfg.Auth.Issuer)
	engine := ledger.NewEngine(store, publisher, ledger.Options{
		EnforceGroupMembership:   cfg.Ledger.EnforceGroupMembership,
		VerifyCategoryVisibility: cfg.Ledger.VerifyCategoryVisibility,
	})

	return &Server{cfg: cfg, store: store, engine: engine, verifier: verifier}, nil
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type",
			"Connect-Protocol-Version", "Connect-Timeout-Ms",
		},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}

	// Register Connect services
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.RequireAuth(s.verifier),
		middleware.Provision(s.store),
	)
	r.Mount(financev1connect.NewLedgerServiceHandler(service.NewLedgerService(s.engine, s.store), interceptors))
	r.Mount(financev1connect.NewWalletServiceHandler(service.NewWalletService(s.store, s.cfg.Server.DefaultCurrency), interceptors))
	r.Mount(financev1connect.NewCategoryServiceHandler(service.NewCategoryService(s.store), interceptors))
	r.Mount(financev1connect.NewGroupServiceHandler(service.NewGroupService(s.store), interceptors))
	r.Mount(financev1connect.NewUserServiceHandler(service.NewUserService(s.store), interceptors))

	return r
}

// Run listens on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	srv := &http.Server{
		Addr: addr,
		// Wrap with h2c for HTTP/2 without TLS (required for Connect gRPC clients)
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", s.cfg.Server.ShutdownTimeout.Duration)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout.Duration)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}
