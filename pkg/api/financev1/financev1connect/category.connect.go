package financev1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	financev1 "github.com/mmynk/fintrack/pkg/api/financev1"
)

// CategoryServiceName is the fully-qualified name of the finance.v1 CategoryService.
const CategoryServiceName = "finance.v1.CategoryService"

// Procedure paths of the finance.v1 CategoryService.
const (
	CategoryServiceCreateCategoryProcedure = "/finance.v1.CategoryService/CreateCategory"
	CategoryServiceListCategoriesProcedure = "/finance.v1.CategoryService/ListCategories"
)

// CategoryServiceHandler is implemented by the server side of the finance.v1 CategoryService.
type CategoryServiceHandler interface {
	CreateCategory(context.Context, *connect.Request[financev1.CreateCategoryRequest]) (*connect.Response[financev1.CreateCategoryResponse], error)
	ListCategories(context.Context, *connect.Request[financev1.ListCategoriesRequest]) (*connect.Response[financev1.ListCategoriesResponse], error)
}

// NewCategoryServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCategoryServiceHandler(svc CategoryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route("/"+CategoryServiceName+"/", map[string]http.Handler{
		CategoryServiceCreateCategoryProcedure: connect.NewUnaryHandler(CategoryServiceCreateCategoryProcedure, svc.CreateCategory, opts...),
		CategoryServiceListCategoriesProcedure: connect.NewUnaryHandler(CategoryServiceListCategoriesProcedure, svc.ListCategories, opts...),
	})
}

// CategoryServiceClient is a client for the finance.v1 CategoryService.
type CategoryServiceClient interface {
	CreateCategory(context.Context, *connect.Request[financev1.CreateCategoryRequest]) (*connect.Response[financev1.CreateCategoryResponse], error)
	ListCategories(context.Context, *connect.Request[financev1.ListCategoriesRequest]) (*connect.Response[financev1.ListCategoriesResponse], error)
}

// NewCategoryServiceClient constructs a client for the finance.v1 CategoryService. baseURL is the
// server's scheme and host, e.g. http://localhost:8080.
func NewCategoryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CategoryServiceClient {
	baseURL = trimBase(baseURL)
	opts = clientOptions(opts)
	return &categoryServiceClient{
		createCategory: connect.NewClient[financev1.CreateCategoryRequest, financev1.CreateCategoryResponse](httpClient, baseURL+CategoryServiceCreateCategoryProcedure, opts...),
		listCategories: connect.NewClient[financev1.ListCategoriesRequest, financev1.ListCategoriesResponse](httpClient, baseURL+CategoryServiceListCategoriesProcedure, opts...),
	}
}

type categoryServiceClient struct {
	createCategory *connect.Client[financev1.CreateCategoryRequest, financev1.CreateCategoryResponse]
	listCategories *connect.Client[financev1.ListCategoriesRequest, financev1.ListCategoriesResponse]
}

func (c *categoryServiceClient) CreateCategory(ctx context.Context, req *connect.Request[financev1.CreateCategoryRequest]) (*connect.Response[financev1.CreateCategoryResponse], error) {
	return c.createCategory.CallUnary(ctx, req)
}

func (c *categoryServiceClient) ListCategories(ctx context.Context, req *connect.Request[financev1.ListCategoriesRequest]) (*connect.Response[financev1.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

// UnimplementedCategoryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCategoryServiceHandler struct{}

func (UnimplementedCategoryServiceHandler) CreateCategory(context.Context, *connect.Request[financev1.CreateCategoryRequest]) (*connect.Response[financev1.CreateCategoryResponse], error) {
	return nil, unimplemented(CategoryServiceCreateCategoryProcedure)
}

func (UnimplementedCategoryServiceHandler) ListCategories(context.Context, *connect.Request[financev1.ListCategoriesRequest]) (*connect.Response[financev1.ListCategoriesResponse], error) {
	return nil, unimplemented(CategoryServiceListCategoriesProcedure)
}
