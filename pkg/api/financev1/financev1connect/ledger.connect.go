package financev1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	financev1 "github.com/mmynk/fintrack/pkg/api/financev1"
)

// LedgerServiceName is the fully-qualified name of the finance.v1 LedgerService.
const LedgerServiceName = "finance.v1.LedgerService"

// Procedure paths of the finance.v1 LedgerService.
const (
	LedgerServicePostTransactionProcedure   = "/finance.v1.LedgerService/PostTransaction"
	LedgerServiceListTransactionsProcedure  = "/finance.v1.LedgerService/ListTransactions"
	LedgerServiceDeleteTransactionProcedure = "/finance.v1.LedgerService/DeleteTransaction"
	LedgerServiceListOwedToMeProcedure      = "/finance.v1.LedgerService/ListOwedToMe"
	LedgerServiceListIOweProcedure          = "/finance.v1.LedgerService/ListIOwe"
)

// LedgerServiceHandler is implemented by the server side of the finance.v1 LedgerService.
type LedgerServiceHandler interface {
	// PostTransaction records a transaction against one of the caller's wallets.
	PostTransaction(context.Context, *connect.Request[financev1.PostTransactionRequest]) (*connect.Response[financev1.PostTransactionResponse], error)
	// ListTransactions returns the caller's transactions, newest date first.
	ListTransactions(context.Context, *connect.Request[financev1.ListTransactionsRequest]) (*connect.Response[financev1.ListTransactionsResponse], error)
	// DeleteTransaction removes one of the caller's transactions and its debt records.
	DeleteTransaction(context.Context, *connect.Request[financev1.DeleteTransactionRequest]) (*connect.Response[financev1.DeleteTransactionResponse], error)
	// ListOwedToMe returns shares other users owe the caller.
	ListOwedToMe(context.Context, *connect.Request[financev1.ListOwedToMeRequest]) (*connect.Response[financev1.ListOwedToMeResponse], error)
	// ListIOwe returns shares the caller owes other users.
	ListIOwe(context.Context, *connect.Request[financev1.ListIOweRequest]) (*connect.Response[financev1.ListIOweResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route("/"+LedgerServiceName+"/", map[string]http.Handler{
		LedgerServicePostTransactionProcedure:   connect.NewUnaryHandler(LedgerServicePostTransactionProcedure, svc.PostTransaction, opts...),
		LedgerServiceListTransactionsProcedure:  connect.NewUnaryHandler(LedgerServiceListTransactionsProcedure, svc.ListTransactions, opts...),
		LedgerServiceDeleteTransactionProcedure: connect.NewUnaryHandler(LedgerServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...),
		LedgerServiceListOwedToMeProcedure:      connect.NewUnaryHandler(LedgerServiceListOwedToMeProcedure, svc.ListOwedToMe, opts...),
		LedgerServiceListIOweProcedure:          connect.NewUnaryHandler(LedgerServiceListIOweProcedure, svc.ListIOwe, opts...),
	})
}

// LedgerServiceClient is a client for the finance.v1 LedgerService.
type LedgerServiceClient interface {
	PostTransaction(context.Context, *connect.Request[financev1.PostTransactionRequest]) (*connect.Response[financev1.PostTransactionResponse], error)
	ListTransactions(context.Context, *connect.Request[financev1.ListTransactionsRequest]) (*connect.Response[financev1.ListTransactionsResponse], error)
	DeleteTransaction(context.Context, *connect.Request[financev1.DeleteTransactionRequest]) (*connect.Response[financev1.DeleteTransactionResponse], error)
	ListOwedToMe(context.Context, *connect.Request[financev1.ListOwedToMeRequest]) (*connect.Response[financev1.ListOwedToMeResponse], error)
	ListIOwe(context.Context, *connect.Request[financev1.ListIOweRequest]) (*connect.Response[financev1.ListIOweResponse], error)
}

// NewLedgerServiceClient constructs a client for the finance.v1 LedgerService. baseURL is the
// server's scheme and host, e.g. http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = trimBase(baseURL)
	opts = clientOptions(opts)
	return &ledgerServiceClient{
		postTransaction:   connect.NewClient[financev1.PostTransactionRequest, financev1.PostTransactionResponse](httpClient, baseURL+LedgerServicePostTransactionProcedure, opts...),
		listTransactions:  connect.NewClient[financev1.ListTransactionsRequest, financev1.ListTransactionsResponse](httpClient, baseURL+LedgerServiceListTransactionsProcedure, opts...),
		deleteTransaction: connect.NewClient[financev1.DeleteTransactionRequest, financev1.DeleteTransactionResponse](httpClient, baseURL+LedgerServiceDeleteTransactionProcedure, opts...),
		listOwedToMe:      connect.NewClient[financev1.ListOwedToMeRequest, financev1.ListOwedToMeResponse](httpClient, baseURL+LedgerServiceListOwedToMeProcedure, opts...),
		listIOwe:          connect.NewClient[financev1.ListIOweRequest, financev1.ListIOweResponse](httpClient, baseURL+LedgerServiceListIOweProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	postTransaction   *connect.Client[financev1.PostTransactionRequest, financev1.PostTransactionResponse]
	listTransactions  *connect.Client[financev1.ListTransactionsRequest, financev1.ListTransactionsResponse]
	deleteTransaction *connect.Client[financev1.DeleteTransactionRequest, financev1.DeleteTransactionResponse]
	listOwedToMe      *connect.Client[financev1.ListOwedToMeRequest, financev1.ListOwedToMeResponse]
	listIOwe          *connect.Client[financev1.ListIOweRequest, financev1.ListIOweResponse]
}

func (c *ledgerServiceClient) PostTransaction(ctx context.Context, req *connect.Request[financev1.PostTransactionRequest]) (*connect.Response[financev1.PostTransactionResponse], error) {
	return c.postTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListTransactions(ctx context.Context, req *connect.Request[financev1.ListTransactionsRequest]) (*connect.Response[financev1.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[financev1.DeleteTransactionRequest]) (*connect.Response[financev1.DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListOwedToMe(ctx context.Context, req *connect.Request[financev1.ListOwedToMeRequest]) (*connect.Response[financev1.ListOwedToMeResponse], error) {
	return c.listOwedToMe.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListIOwe(ctx context.Context, req *connect.Request[financev1.ListIOweRequest]) (*connect.Response[financev1.ListIOweResponse], error) {
	return c.listIOwe.CallUnary(ctx, req)
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) PostTransaction(context.Context, *connect.Request[financev1.PostTransactionRequest]) (*connect.Response[financev1.PostTransactionResponse], error) {
	return nil, unimplemented(LedgerServicePostTransactionProcedure)
}

func (UnimplementedLedgerServiceHandler) ListTransactions(context.Context, *connect.Request[financev1.ListTransactionsRequest]) (*connect.Response[financev1.ListTransactionsResponse], error) {
	return nil, unimplemented(LedgerServiceListTransactionsProcedure)
}

func (UnimplementedLedgerServiceHandler) DeleteTransaction(context.Context, *connect.Request[financev1.DeleteTransactionRequest]) (*connect.Response[financev1.DeleteTransactionResponse], error) {
	return nil, unimplemented(LedgerServiceDeleteTransactionProcedure)
}

func (UnimplementedLedgerServiceHandler) ListOwedToMe(context.Context, *connect.Request[financev1.ListOwedToMeRequest]) (*connect.Response[financev1.ListOwedToMeResponse], error) {
	return nil, unimplemented(LedgerServiceListOwedToMeProcedure)
}

func (UnimplementedLedgerServiceHandler) ListIOwe(context.Context, *connect.Request[financev1.ListIOweRequest]) (*connect.Response[financev1.ListIOweResponse], error) {
	return nil, unimplemented(LedgerServiceListIOweProcedure)
}
