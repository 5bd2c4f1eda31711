package financev1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	financev1 "github.com/mmynk/fintrack/pkg/api/financev1"
)

// WalletServiceName is the fully-qualified name of the finance.v1 WalletService.
const WalletServiceName = "finance.v1.WalletService"

// Procedure paths of the finance.v1 WalletService.
const (
	WalletServiceCreateWalletProcedure = "/finance.v1.WalletService/CreateWallet"
	WalletServiceListWalletsProcedure  = "/finance.v1.WalletService/ListWallets"
)

// WalletServiceHandler is implemented by the server side of the finance.v1 WalletService.
type WalletServiceHandler interface {
	CreateWallet(context.Context, *connect.Request[financev1.CreateWalletRequest]) (*connect.Response[financev1.CreateWalletResponse], error)
	ListWallets(context.Context, *connect.Request[financev1.ListWalletsRequest]) (*connect.Response[financev1.ListWalletsResponse], error)
}

// NewWalletServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewWalletServiceHandler(svc WalletServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route("/"+WalletServiceName+"/", map[string]http.Handler{
		WalletServiceCreateWalletProcedure: connect.NewUnaryHandler(WalletServiceCreateWalletProcedure, svc.CreateWallet, opts...),
		WalletServiceListWalletsProcedure:  connect.NewUnaryHandler(WalletServiceListWalletsProcedure, svc.ListWallets, opts...),
	})
}

// WalletServiceClient is a client for the finance.v1 WalletService.
type WalletServiceClient interface {
	CreateWallet(context.Context, *connect.Request[financev1.CreateWalletRequest]) (*connect.Response[financev1.CreateWalletResponse], error)
	ListWallets(context.Context, *connect.Request[financev1.ListWalletsRequest]) (*connect.Response[financev1.ListWalletsResponse], error)
}

// NewWalletServiceClient constructs a client for the finance.v1 WalletService. baseURL is the
// server's scheme and host, e.g. http://localhost:8080.
func NewWalletServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) WalletServiceClient {
	baseURL = trimBase(baseURL)
	opts = clientOptions(opts)
	return &walletServiceClient{
		createWallet: connect.NewClient[financev1.CreateWalletRequest, financev1.CreateWalletResponse](httpClient, baseURL+WalletServiceCreateWalletProcedure, opts...),
		listWallets:  connect.NewClient[financev1.ListWalletsRequest, financev1.ListWalletsResponse](httpClient, baseURL+WalletServiceListWalletsProcedure, opts...),
	}
}

type walletServiceClient struct {
	createWallet *connect.Client[financev1.CreateWalletRequest, financev1.CreateWalletResponse]
	listWallets  *connect.Client[financev1.ListWalletsRequest, financev1.ListWalletsResponse]
}

func (c *walletServiceClient) CreateWallet(ctx context.Context, req *connect.Request[financev1.CreateWalletRequest]) (*connect.Response[financev1.CreateWalletResponse], error) {
	return c.createWallet.CallUnary(ctx, req)
}

func (c *walletServiceClient) ListWallets(ctx context.Context, req *connect.Request[financev1.ListWalletsRequest]) (*connect.Response[financev1.ListWalletsResponse], error) {
	return c.listWallets.CallUnary(ctx, req)
}

// UnimplementedWalletServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedWalletServiceHandler struct{}

func (UnimplementedWalletServiceHandler) CreateWallet(context.Context, *connect.Request[financev1.CreateWalletRequest]) (*connect.Response[financev1.CreateWalletResponse], error) {
	return nil, unimplemented(WalletServiceCreateWalletProcedure)
}

func (UnimplementedWalletServiceHandler) ListWallets(context.Context, *connect.Request[financev1.ListWalletsRequest]) (*connect.Response[financev1.ListWalletsResponse], error) {
	return nil, unimplemented(WalletServiceListWalletsProcedure)
}
