package financev1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	financev1 "github.com/mmynk/fintrack/pkg/api/financev1"
)

// UserServiceName is the fully-qualified name of the finance.v1 UserService.
const UserServiceName = "finance.v1.UserService"

// Procedure paths of the finance.v1 UserService.
const (
	UserServiceGetCurrentUserProcedure = "/finance.v1.UserService/GetCurrentUser"
)

// UserServiceHandler is implemented by the server side of the finance.v1 UserService.
type UserServiceHandler interface {
	GetCurrentUser(context.Context, *connect.Request[financev1.GetCurrentUserRequest]) (*connect.Response[financev1.GetCurrentUserResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route("/"+UserServiceName+"/", map[string]http.Handler{
		UserServiceGetCurrentUserProcedure: connect.NewUnaryHandler(UserServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
	})
}

// UserServiceClient is a client for the finance.v1 UserService.
type UserServiceClient interface {
	GetCurrentUser(context.Context, *connect.Request[financev1.GetCurrentUserRequest]) (*connect.Response[financev1.GetCurrentUserResponse], error)
}

// NewUserServiceClient constructs a client for the finance.v1 UserService. baseURL is the
// server's scheme and host, e.g. http://localhost:8080.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	baseURL = trimBase(baseURL)
	opts = clientOptions(opts)
	return &userServiceClient{
		getCurrentUser: connect.NewClient[financev1.GetCurrentUserRequest, financev1.GetCurrentUserResponse](httpClient, baseURL+UserServiceGetCurrentUserProcedure, opts...),
	}
}

type userServiceClient struct {
	getCurrentUser *connect.Client[financev1.GetCurrentUserRequest, financev1.GetCurrentUserResponse]
}

func (c *userServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[financev1.GetCurrentUserRequest]) (*connect.Response[financev1.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// UnimplementedUserServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedUserServiceHandler struct{}

func (UnimplementedUserServiceHandler) GetCurrentUser(context.Context, *connect.Request[financev1.GetCurrentUserRequest]) (*connect.Response[financev1.GetCurrentUserResponse], error) {
	return nil, unimplemented(UserServiceGetCurrentUserProcedure)
}
