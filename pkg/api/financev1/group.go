package financev1

type CreateGroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	MemberIds   []string `json:"memberIds,omitempty"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type GetGroupRequest struct {
	GroupId string `json:"groupId"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupMembersRequest struct {
	GroupId string `json:"groupId"`
}

type ListGroupMembersResponse struct {
	Members []*User `json:"members"`
}

type AddGroupMembersRequest struct {
	GroupId string   `json:"groupId"`
	UserIds []string `json:"userIds"`
}

type AddGroupMembersResponse struct {
	Group *Group `json:"group"`
}

type ListGroupTransactionsRequest struct {
	GroupId string `json:"groupId"`
}

type ListGroupTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type GetGroupBalancesRequest struct {
	GroupId string `json:"groupId"`
}

type GetGroupBalancesResponse struct {
	Balances []*MemberBalance `json:"balances"`
	Debts    []*DebtEdge      `json:"debts"`
}
