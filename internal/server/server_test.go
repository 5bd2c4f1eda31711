package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/config"
	"github.com/mmynk/fintrack/internal/storage/sqlite"
	pb "github.com/mmynk/fintrack/pkg/api/financev1"
	"github.com/mmynk/fintrack/pkg/api/financev1/financev1connect"
)

func setupServer(t *testing.T) (*httptest.Server, *config.Config) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Storage.Path = filepath.Join(t.TempDir(), "server.db")

	store, err := sqlite.New(cfg.Storage.Path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv, err := New(cfg, store, nil)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, cfg
}

func TestNew_RequiresSecret(t *testing.T) {
	store, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = New(config.DefaultConfig(), store, nil)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	ts, _ := setupServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, resp.Header.Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := setupServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestCORSPreflight(t *testing.T) {
	ts, _ := setupServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+financev1connect.UserServiceGetCurrentUserProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestConnectRoutes(t *testing.T) {
	ts, cfg := setupServer(t)
	ctx := context.Background()

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration).
		Generate(auth.Identity{UserID: "alice", Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)

	client := financev1connect.NewUserServiceClient(http.DefaultClient, ts.URL)

	_, err = client.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	req := connect.NewRequest(&pb.GetCurrentUserRequest{})
	req.Header().Set("Authorization", "Bearer "+token)
	resp, err := client.GetCurrentUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Msg.User.DisplayName)

	notFound, err := http.Post(ts.URL+"/finance.v1.UserService/Nope", "application/json", nil)
	require.NoError(t, err)
	notFound.Body.Close()
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
}
