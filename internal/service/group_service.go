package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/calculator"
	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
	pb "github.com/mmynk/fintrack/pkg/api/financev1"
	"github.com/mmynk/fintrack/pkg/api/financev1/financev1connect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	financev1connect.UnimplementedGroupServiceHandler
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group. The creator is always a member; requested
// member ids that don't resolve to a user are skipped.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("name", "is required")
	}

	slog.Info("CreateGroup request received",
		"name", name,
		"members_count", len(req.Msg.MemberIds),
	)

	known, err := s.store.GetUsersByIDs(ctx, req.Msg.MemberIds)
	if err != nil {
		return nil, toConnectError(err)
	}
	members := []string{id.UserID}
	for _, m := range req.Msg.MemberIds {
		if _, ok := known[m]; ok {
			members = append(members, m)
		} else {
			slog.Debug("Skipping unknown group member", "user_id", m)
		}
	}

	group := &models.Group{
		Name:          name,
		Description:   strings.TrimSpace(req.Msg.Description),
		CreatorUserID: id.UserID,
		Members:       members,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID, "members", len(group.Members))
	return connect.NewResponse(&pb.CreateGroupResponse{Group: groupToProto(group)}), nil
}

// ListGroups retrieves the groups the caller belongs to.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.store.ListGroupsByMember(ctx, id.UserID)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = groupToProto(g)
	}
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	_, group, err := s.memberGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.GetGroupResponse{Group: groupToProto(group)}), nil
}

// ListGroupMembers returns the profiles of a group's members in join order.
func (s *GroupService) ListGroupMembers(ctx context.Context, req *connect.Request[pb.ListGroupMembersRequest]) (*connect.Response[pb.ListGroupMembersResponse], error) {
	_, group, err := s.memberGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	users, err := s.store.GetUsersByIDs(ctx, group.Members)
	if err != nil {
		return nil, toConnectError(err)
	}

	members := make([]*pb.User, 0, len(group.Members))
	for _, m := range group.Members {
		if u, ok := users[m]; ok {
			members = append(members, userToProto(u))
		}
	}
	return connect.NewResponse(&pb.ListGroupMembersResponse{Members: members}), nil
}

// AddGroupMembers adds users to a group the caller belongs to.
// Every id must name an existing user.
func (s *GroupService) AddGroupMembers(ctx context.Context, req *connect.Request[pb.AddGroupMembersRequest]) (*connect.Response[pb.AddGroupMembersResponse], error) {
	id, group, err := s.memberGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}
	if len(req.Msg.UserIds) == 0 {
		return nil, invalidArgument("userIds", "at least one user is required")
	}

	known, err := s.store.GetUsersByIDs(ctx, req.Msg.UserIds)
	if err != nil {
		return nil, toConnectError(err)
	}
	for _, u := range req.Msg.UserIds {
		if _, ok := known[u]; !ok {
			return nil, toConnectError(&ledger.NotFoundError{Entity: "user", ID: u})
		}
	}

	if err := s.store.AddGroupMembers(ctx, group.ID, req.Msg.UserIds); err != nil {
		slog.Error("AddGroupMembers failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	updated, err := s.store.GetGroup(ctx, group.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Group members added", "group_id", group.ID, "user_id", id.UserID, "added", len(req.Msg.UserIds))
	return connect.NewResponse(&pb.AddGroupMembersResponse{Group: groupToProto(updated)}), nil
}

// ListGroupTransactions returns every transaction posted to the group.
func (s *GroupService) ListGroupTransactions(ctx context.Context, req *connect.Request[pb.ListGroupTransactionsRequest]) (*connect.Response[pb.ListGroupTransactionsResponse], error) {
	_, group, err := s.memberGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	txs, err := s.store.ListTransactionsByGroup(ctx, group.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ListGroupTransactionsResponse{
		Transactions: transactionsToProto(txs),
	}), nil
}

// GetGroupBalances nets the group's debt records per member and suggests
// the payments that would settle them.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[pb.GetGroupBalancesRequest]) (*connect.Response[pb.GetGroupBalancesResponse], error) {
	_, group, err := s.memberGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.ListDebtsByGroup(ctx, group.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	debts := make([]calculator.DebtForBalance, len(entries))
	for i, e := range entries {
		debts[i] = calculator.DebtForBalance{
			DebtorID:   e.DebtorUserID,
			CreditorID: e.CreditorUserID,
			Amount:     e.ShareAmount,
		}
	}
	balances, edges := calculator.CalculateGroupBalances(group.Members, debts)

	ids := make([]string, len(balances))
	for i, b := range balances {
		ids[i] = b.UserID
	}
	names, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetGroupBalancesResponse{
		Balances: balancesToProto(balances, names),
		Debts:    edgesToProto(edges),
	}), nil
}

// memberGroup loads a group and checks that the caller belongs to it.
func (s *GroupService) memberGroup(ctx context.Context, groupID string) (auth.Identity, *models.Group, error) {
	id, err := caller(ctx)
	if err != nil {
		return auth.Identity{}, nil, err
	}
	if groupID == "" {
		return id, nil, invalidArgument("groupId", "is required")
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return id, nil, toConnectError(err)
	}
	if err := ledger.RequireMember(group, id.UserID); err != nil {
		return id, nil, toConnectError(err)
	}
	return id, group, nil
}
