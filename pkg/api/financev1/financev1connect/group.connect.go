package financev1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	financev1 "github.com/mmynk/fintrack/pkg/api/financev1"
)

// GroupServiceName is the fully-qualified name of the finance.v1 GroupService.
const GroupServiceName = "finance.v1.GroupService"

// Procedure paths of the finance.v1 GroupService.
const (
	GroupServiceCreateGroupProcedure           = "/finance.v1.GroupService/CreateGroup"
	GroupServiceListGroupsProcedure            = "/finance.v1.GroupService/ListGroups"
	GroupServiceGetGroupProcedure              = "/finance.v1.GroupService/GetGroup"
	GroupServiceListGroupMembersProcedure      = "/finance.v1.GroupService/ListGroupMembers"
	GroupServiceAddGroupMembersProcedure       = "/finance.v1.GroupService/AddGroupMembers"
	GroupServiceListGroupTransactionsProcedure = "/finance.v1.GroupService/ListGroupTransactions"
	GroupServiceGetGroupBalancesProcedure      = "/finance.v1.GroupService/GetGroupBalances"
)

// GroupServiceHandler is implemented by the server side of the finance.v1 GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[financev1.CreateGroupRequest]) (*connect.Response[financev1.CreateGroupResponse], error)
	ListGroups(context.Context, *connect.Request[financev1.ListGroupsRequest]) (*connect.Response[financev1.ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[financev1.GetGroupRequest]) (*connect.Response[financev1.GetGroupResponse], error)
	ListGroupMembers(context.Context, *connect.Request[financev1.ListGroupMembersRequest]) (*connect.Response[financev1.ListGroupMembersResponse], error)
	AddGroupMembers(context.Context, *connect.Request[financev1.AddGroupMembersRequest]) (*connect.Response[financev1.AddGroupMembersResponse], error)
	ListGroupTransactions(context.Context, *connect.Request[financev1.ListGroupTransactionsRequest]) (*connect.Response[financev1.ListGroupTransactionsResponse], error)
	GetGroupBalances(context.Context, *connect.Request[financev1.GetGroupBalancesRequest]) (*connect.Response[financev1.GetGroupBalancesResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route("/"+GroupServiceName+"/", map[string]http.Handler{
		GroupServiceCreateGroupProcedure:           connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		GroupServiceListGroupsProcedure:            connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...),
		GroupServiceGetGroupProcedure:              connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...),
		GroupServiceListGroupMembersProcedure:      connect.NewUnaryHandler(GroupServiceListGroupMembersProcedure, svc.ListGroupMembers, opts...),
		GroupServiceAddGroupMembersProcedure:       connect.NewUnaryHandler(GroupServiceAddGroupMembersProcedure, svc.AddGroupMembers, opts...),
		GroupServiceListGroupTransactionsProcedure: connect.NewUnaryHandler(GroupServiceListGroupTransactionsProcedure, svc.ListGroupTransactions, opts...),
		GroupServiceGetGroupBalancesProcedure:      connect.NewUnaryHandler(GroupServiceGetGroupBalancesProcedure, svc.GetGroupBalances, opts...),
	})
}

// GroupServiceClient is a client for the finance.v1 GroupService.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[financev1.CreateGroupRequest]) (*connect.Response[financev1.CreateGroupResponse], error)
	ListGroups(context.Context, *connect.Request[financev1.ListGroupsRequest]) (*connect.Response[financev1.ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[financev1.GetGroupRequest]) (*connect.Response[financev1.GetGroupResponse], error)
	ListGroupMembers(context.Context, *connect.Request[financev1.ListGroupMembersRequest]) (*connect.Response[financev1.ListGroupMembersResponse], error)
	AddGroupMembers(context.Context, *connect.Request[financev1.AddGroupMembersRequest]) (*connect.Response[financev1.AddGroupMembersResponse], error)
	ListGroupTransactions(context.Context, *connect.Request[financev1.ListGroupTransactionsRequest]) (*connect.Response[financev1.ListGroupTransactionsResponse], error)
	GetGroupBalances(context.Context, *connect.Request[financev1.GetGroupBalancesRequest]) (*connect.Response[financev1.GetGroupBalancesResponse], error)
}

// NewGroupServiceClient constructs a client for the finance.v1 GroupService. baseURL is the
// server's scheme and host, e.g. http://localhost:8080.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	baseURL = trimBase(baseURL)
	opts = clientOptions(opts)
	return &groupServiceClient{
		createGroup:           connect.NewClient[financev1.CreateGroupRequest, financev1.CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		listGroups:            connect.NewClient[financev1.ListGroupsRequest, financev1.ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		getGroup:              connect.NewClient[financev1.GetGroupRequest, financev1.GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		listGroupMembers:      connect.NewClient[financev1.ListGroupMembersRequest, financev1.ListGroupMembersResponse](httpClient, baseURL+GroupServiceListGroupMembersProcedure, opts...),
		addGroupMembers:       connect.NewClient[financev1.AddGroupMembersRequest, financev1.AddGroupMembersResponse](httpClient, baseURL+GroupServiceAddGroupMembersProcedure, opts...),
		listGroupTransactions: connect.NewClient[financev1.ListGroupTransactionsRequest, financev1.ListGroupTransactionsResponse](httpClient, baseURL+GroupServiceListGroupTransactionsProcedure, opts...),
		getGroupBalances:      connect.NewClient[financev1.GetGroupBalancesRequest, financev1.GetGroupBalancesResponse](httpClient, baseURL+GroupServiceGetGroupBalancesProcedure, opts...),
	}
}

type groupServiceClient struct {
	createGroup           *connect.Client[financev1.CreateGroupRequest, financev1.CreateGroupResponse]
	listGroups            *connect.Client[financev1.ListGroupsRequest, financev1.ListGroupsResponse]
	getGroup              *connect.Client[financev1.GetGroupRequest, financev1.GetGroupResponse]
	listGroupMembers      *connect.Client[financev1.ListGroupMembersRequest, financev1.ListGroupMembersResponse]
	addGroupMembers       *connect.Client[financev1.AddGroupMembersRequest, financev1.AddGroupMembersResponse]
	listGroupTransactions *connect.Client[financev1.ListGroupTransactionsRequest, financev1.ListGroupTransactionsResponse]
	getGroupBalances      *connect.Client[financev1.GetGroupBalancesRequest, financev1.GetGroupBalancesResponse]
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[financev1.CreateGroupRequest]) (*connect.Response[financev1.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListGroups(ctx context.Context, req *connect.Request[financev1.ListGroupsRequest]) (*connect.Response[financev1.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[financev1.GetGroupRequest]) (*connect.Response[financev1.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListGroupMembers(ctx context.Context, req *connect.Request[financev1.ListGroupMembersRequest]) (*connect.Response[financev1.ListGroupMembersResponse], error) {
	return c.listGroupMembers.CallUnary(ctx, req)
}

func (c *groupServiceClient) AddGroupMembers(ctx context.Context, req *connect.Request[financev1.AddGroupMembersRequest]) (*connect.Response[financev1.AddGroupMembersResponse], error) {
	return c.addGroupMembers.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListGroupTransactions(ctx context.Context, req *connect.Request[financev1.ListGroupTransactionsRequest]) (*connect.Response[financev1.ListGroupTransactionsResponse], error) {
	return c.listGroupTransactions.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroupBalances(ctx context.Context, req *connect.Request[financev1.GetGroupBalancesRequest]) (*connect.Response[financev1.GetGroupBalancesResponse], error) {
	return c.getGroupBalances.CallUnary(ctx, req)
}

// UnimplementedGroupServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroupServiceHandler struct{}

func (UnimplementedGroupServiceHandler) CreateGroup(context.Context, *connect.Request[financev1.CreateGroupRequest]) (*connect.Response[financev1.CreateGroupResponse], error) {
	return nil, unimplemented(GroupServiceCreateGroupProcedure)
}

func (UnimplementedGroupServiceHandler) ListGroups(context.Context, *connect.Request[financev1.ListGroupsRequest]) (*connect.Response[financev1.ListGroupsResponse], error) {
	return nil, unimplemented(GroupServiceListGroupsProcedure)
}

func (UnimplementedGroupServiceHandler) GetGroup(context.Context, *connect.Request[financev1.GetGroupRequest]) (*connect.Response[financev1.GetGroupResponse], error) {
	return nil, unimplemented(GroupServiceGetGroupProcedure)
}

func (UnimplementedGroupServiceHandler) ListGroupMembers(context.Context, *connect.Request[financev1.ListGroupMembersRequest]) (*connect.Response[financev1.ListGroupMembersResponse], error) {
	return nil, unimplemented(GroupServiceListGroupMembersProcedure)
}

func (UnimplementedGroupServiceHandler) AddGroupMembers(context.Context, *connect.Request[financev1.AddGroupMembersRequest]) (*connect.Response[financev1.AddGroupMembersResponse], error) {
	return nil, unimplemented(GroupServiceAddGroupMembersProcedure)
}

func (UnimplementedGroupServiceHandler) ListGroupTransactions(context.Context, *connect.Request[financev1.ListGroupTransactionsRequest]) (*connect.Response[financev1.ListGroupTransactionsResponse], error) {
	return nil, unimplemented(GroupServiceListGroupTransactionsProcedure)
}

func (UnimplementedGroupServiceHandler) GetGroupBalances(context.Context, *connect.Request[financev1.GetGroupBalancesRequest]) (*connect.Response[financev1.GetGroupBalancesResponse], error) {
	return nil, unimplemented(GroupServiceGetGroupBalancesProcedure)
}
