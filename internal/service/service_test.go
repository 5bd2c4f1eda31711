package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/middleware"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
	"github.com/mmynk/fintrack/internal/storage/sqlite"
	pb "github.com/mmynk/fintrack/pkg/api/financev1"
	"github.com/mmynk/fintrack/pkg/api/financev1/financev1connect"
)

type testClients struct {
	store    storage.Store
	jwt      *auth.JWTManager
	ledger   financev1connect.LedgerServiceClient
	wallet   financev1connect.WalletServiceClient
	category financev1connect.CategoryServiceClient
	group    financev1connect.GroupServiceClient
	user     financev1connect.UserServiceClient
}

// setupTestServer creates a test server with every service behind the auth interceptors
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.RequireAuth(jwtManager),
		middleware.Provision(store),
	)

	engine := ledger.NewEngine(store, nil, ledger.Options{})

	mux := http.NewServeMux()
	mux.Handle(financev1connect.NewLedgerServiceHandler(NewLedgerService(engine, store), interceptors))
	mux.Handle(financev1connect.NewWalletServiceHandler(NewWalletService(store, "USD"), interceptors))
	mux.Handle(financev1connect.NewCategoryServiceHandler(NewCategoryService(store), interceptors))
	mux.Handle(financev1connect.NewGroupServiceHandler(NewGroupService(store), interceptors))
	mux.Handle(financev1connect.NewUserServiceHandler(NewUserService(store), interceptors))

	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return &testClients{
		store:    store,
		jwt:      jwtManager,
		ledger:   financev1connect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		wallet:   financev1connect.NewWalletServiceClient(http.DefaultClient, server.URL),
		category: financev1connect.NewCategoryServiceClient(http.DefaultClient, server.URL),
		group:    financev1connect.NewGroupServiceClient(http.DefaultClient, server.URL),
		user:     financev1connect.NewUserServiceClient(http.DefaultClient, server.URL),
	}
}

// login mints a token for userID and provisions the user by calling GetCurrentUser.
func (c *testClients) login(t *testing.T, userID string) string {
	t.Helper()
	token, err := c.jwt.Generate(auth.Identity{UserID: userID, Email: userID + "@example.com", Name: userID})
	require.NoError(t, err)

	resp, err := c.user.GetCurrentUser(context.Background(), authed(token, &pb.GetCurrentUserRequest{}))
	require.NoError(t, err)
	require.Equal(t, userID, resp.Msg.User.Id)
	return token
}

func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func (c *testClients) seedCategory(t *testing.T) *models.Category {
	t.Helper()
	category := &models.Category{Name: "Food", Type: models.TransactionExpense}
	require.NoError(t, c.store.CreateCategory(context.Background(), category))
	return category
}

func (c *testClients) createWallet(t *testing.T, token, balance string) *pb.Wallet {
	t.Helper()
	resp, err := c.wallet.CreateWallet(context.Background(), authed(token, &pb.CreateWalletRequest{
		Name:           "Daily",
		InitialBalance: balance,
	}))
	require.NoError(t, err)
	return resp.Msg.Wallet
}

func TestUnauthenticated(t *testing.T) {
	c := setupTestServer(t)

	_, err := c.user.GetCurrentUser(context.Background(), connect.NewRequest(&pb.GetCurrentUserRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = c.ledger.ListTransactions(context.Background(), authed("garbage", &pb.ListTransactionsRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestGetCurrentUserProvisions(t *testing.T) {
	c := setupTestServer(t)
	c.login(t, "alice")

	user, err := c.store.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestProvisionIdentitiesWithoutEmail(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	for _, userID := range []string{"sub-only-1", "sub-only-2"} {
		token, err := c.jwt.Generate(auth.Identity{UserID: userID})
		require.NoError(t, err)

		resp, err := c.user.GetCurrentUser(ctx, authed(token, &pb.GetCurrentUserRequest{}))
		require.NoError(t, err, userID)
		assert.Equal(t, userID, resp.Msg.User.Id)
		assert.Equal(t, userID, resp.Msg.User.DisplayName)
	}
}

func TestProvisionSharedEmail(t *testing.T) {
	c := setupTestServer(t)
	require.NoError(t, c.store.CreateUser(context.Background(), &models.User{
		ID: "seeded", Email: "alice@example.com", DisplayName: "Alice",
	}))

	c.login(t, "alice")

	user, err := c.store.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestWalletService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	token := c.login(t, "alice")

	wallet := c.createWallet(t, token, "250.50")
	assert.Equal(t, "250.5", wallet.Balance)
	assert.Equal(t, "USD", wallet.Currency, "default currency applied")
	assert.Equal(t, "alice", wallet.OwnerUserId)

	resp, err := c.wallet.ListWallets(ctx, authed(token, &pb.ListWalletsRequest{}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Wallets, 1)
	assert.Equal(t, wallet.Id, resp.Msg.Wallets[0].Id)

	tests := []struct {
		name string
		req  *pb.CreateWalletRequest
	}{
		{"missing name", &pb.CreateWalletRequest{Currency: "USD"}},
		{"negative balance", &pb.CreateWalletRequest{Name: "Debt", InitialBalance: "-1"}},
		{"malformed balance", &pb.CreateWalletRequest{Name: "Bad", InitialBalance: "ten"}},
		{"bad currency", &pb.CreateWalletRequest{Name: "Euro", Currency: "EURO"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.wallet.CreateWallet(ctx, authed(token, tt.req))
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}
}

func TestCategoryService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	c.seedCategory(t)
	alice := c.login(t, "alice")
	bob := c.login(t, "bob")

	created, err := c.category.CreateCategory(ctx, authed(alice, &pb.CreateCategoryRequest{Name: "Salary", Type: "income"}))
	require.NoError(t, err)
	assert.Equal(t, "INCOME", created.Msg.Category.Type)
	assert.False(t, created.Msg.Category.IsGlobal)

	_, err = c.category.CreateCategory(ctx, authed(alice, &pb.CreateCategoryRequest{Name: "Salary", Type: "INCOME"}))
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))

	_, err = c.category.CreateCategory(ctx, authed(alice, &pb.CreateCategoryRequest{Name: "Gift", Type: "BONUS"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	aliceList, err := c.category.ListCategories(ctx, authed(alice, &pb.ListCategoriesRequest{}))
	require.NoError(t, err)
	assert.Len(t, aliceList.Msg.Categories, 2)

	bobList, err := c.category.ListCategories(ctx, authed(bob, &pb.ListCategoriesRequest{}))
	require.NoError(t, err)
	require.Len(t, bobList.Msg.Categories, 1)
	assert.True(t, bobList.Msg.Categories[0].IsGlobal)
}

func TestPostTransaction(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	category := c.seedCategory(t)
	alice := c.login(t, "alice")
	bob := c.login(t, "bob")
	wallet := c.createWallet(t, alice, "500")

	post := func(token, amount, typ, walletID string) (*connect.Response[pb.PostTransactionResponse], error) {
		return c.ledger.PostTransaction(ctx, authed(token, &pb.PostTransactionRequest{
			Amount:     amount,
			Date:       "2024-03-15",
			Type:       typ,
			WalletId:   walletID,
			CategoryId: category.ID,
		}))
	}

	resp, err := post(alice, "200", "EXPENSE", wallet.Id)
	require.NoError(t, err)
	assert.Equal(t, "300", resp.Msg.WalletBalance)
	assert.Equal(t, "200", resp.Msg.Transaction.Amount)
	assert.Equal(t, "2024-03-15", resp.Msg.Transaction.Date)
	assert.Empty(t, resp.Msg.DebtRecords)

	t.Run("insufficient funds", func(t *testing.T) {
		_, err := post(alice, "400", "EXPENSE", wallet.Id)
		assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, err := post(alice, "abc", "EXPENSE", wallet.Id)
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		_, err = post(alice, "0", "EXPENSE", wallet.Id)
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := post(alice, "10", "GIFT", wallet.Id)
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("other user's wallet", func(t *testing.T) {
		_, err := post(bob, "10", "EXPENSE", wallet.Id)
		assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
	})

	t.Run("unknown wallet", func(t *testing.T) {
		_, err := post(alice, "10", "EXPENSE", "missing")
		assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
	})

	t.Run("income credits", func(t *testing.T) {
		resp, err := post(alice, "50.25", "INCOME", wallet.Id)
		require.NoError(t, err)
		assert.Equal(t, "350.25", resp.Msg.WalletBalance)
	})

	list, err := c.ledger.ListTransactions(ctx, authed(alice, &pb.ListTransactionsRequest{}))
	require.NoError(t, err)
	assert.Len(t, list.Msg.Transactions, 2)

	bobList, err := c.ledger.ListTransactions(ctx, authed(bob, &pb.ListTransactionsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, bobList.Msg.Transactions)
}

func TestGroupSplitFlow(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	category := c.seedCategory(t)
	alice := c.login(t, "alice")
	bob := c.login(t, "bob")
	carolToken := c.login(t, "carol")
	dave := c.login(t, "dave")
	wallet := c.createWallet(t, alice, "500")

	created, err := c.group.CreateGroup(ctx, authed(alice, &pb.CreateGroupRequest{
		Name:      "Roommates",
		MemberIds: []string{"bob", "carol", "ghost"},
	}))
	require.NoError(t, err)
	group := created.Msg.Group
	assert.Equal(t, []string{"alice", "bob", "carol"}, group.MemberIds, "creator first, unknown ids skipped")

	posted, err := c.ledger.PostTransaction(ctx, authed(alice, &pb.PostTransactionRequest{
		Amount:       "90",
		Description:  "Dinner",
		Date:         "2024-03-15",
		Type:         "EXPENSE",
		WalletId:     wallet.Id,
		CategoryId:   category.ID,
		GroupId:      group.Id,
		SplitUserIds: []string{"alice", "bob", "carol"},
	}))
	require.NoError(t, err)
	require.Len(t, posted.Msg.DebtRecords, 3)
	for _, d := range posted.Msg.DebtRecords {
		assert.Equal(t, "30", d.ShareAmount)
	}
	assert.Equal(t, "410", posted.Msg.WalletBalance)

	t.Run("debt listings", func(t *testing.T) {
		owed, err := c.ledger.ListOwedToMe(ctx, authed(alice, &pb.ListOwedToMeRequest{}))
		require.NoError(t, err)
		assert.Len(t, owed.Msg.Debts, 2)

		iOwe, err := c.ledger.ListIOwe(ctx, authed(bob, &pb.ListIOweRequest{}))
		require.NoError(t, err)
		require.Len(t, iOwe.Msg.Debts, 1)
		assert.Equal(t, "alice", iOwe.Msg.Debts[0].CreditorUserId)
		assert.Equal(t, "Dinner", iOwe.Msg.Debts[0].Description)
		assert.Equal(t, "90", iOwe.Msg.Debts[0].TransactionAmount)

		none, err := c.ledger.ListIOwe(ctx, authed(dave, &pb.ListIOweRequest{}))
		require.NoError(t, err)
		assert.Empty(t, none.Msg.Debts)
	})

	t.Run("group reads", func(t *testing.T) {
		members, err := c.group.ListGroupMembers(ctx, authed(bob, &pb.ListGroupMembersRequest{GroupId: group.Id}))
		require.NoError(t, err)
		require.Len(t, members.Msg.Members, 3)
		assert.Equal(t, "alice", members.Msg.Members[0].Id)

		txs, err := c.group.ListGroupTransactions(ctx, authed(bob, &pb.ListGroupTransactionsRequest{GroupId: group.Id}))
		require.NoError(t, err)
		assert.Len(t, txs.Msg.Transactions, 1)

		groups, err := c.group.ListGroups(ctx, authed(carolToken, &pb.ListGroupsRequest{}))
		require.NoError(t, err)
		assert.Len(t, groups.Msg.Groups, 1)
	})

	t.Run("balances", func(t *testing.T) {
		resp, err := c.group.GetGroupBalances(ctx, authed(bob, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
		require.NoError(t, err)

		net := make(map[string]string)
		for _, b := range resp.Msg.Balances {
			net[b.UserId] = b.NetBalance
		}
		assert.Equal(t, "60", net["alice"])
		assert.Equal(t, "-30", net["bob"])
		assert.Equal(t, "-30", net["carol"])

		require.Len(t, resp.Msg.Debts, 2)
		for _, e := range resp.Msg.Debts {
			assert.Equal(t, "alice", e.ToUserId)
			assert.Equal(t, "30", e.Amount)
		}
	})

	t.Run("non-members are refused", func(t *testing.T) {
		_, err := c.group.GetGroup(ctx, authed(dave, &pb.GetGroupRequest{GroupId: group.Id}))
		assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

		_, err = c.group.GetGroupBalances(ctx, authed(dave, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
		assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

		_, err = c.group.AddGroupMembers(ctx, authed(dave, &pb.AddGroupMembersRequest{GroupId: group.Id, UserIds: []string{"dave"}}))
		assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := c.group.GetGroup(ctx, authed(alice, &pb.GetGroupRequest{GroupId: "missing"}))
		assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
	})

	t.Run("add members", func(t *testing.T) {
		_, err := c.group.AddGroupMembers(ctx, authed(alice, &pb.AddGroupMembersRequest{GroupId: group.Id, UserIds: []string{"ghost"}}))
		assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

		resp, err := c.group.AddGroupMembers(ctx, authed(bob, &pb.AddGroupMembersRequest{GroupId: group.Id, UserIds: []string{"dave"}}))
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, resp.Msg.Group.MemberIds)

		got, err := c.group.GetGroup(ctx, authed(dave, &pb.GetGroupRequest{GroupId: group.Id}))
		require.NoError(t, err)
		assert.Equal(t, group.Id, got.Msg.Group.Id)
	})

	t.Run("delete transaction", func(t *testing.T) {
		txID := posted.Msg.Transaction.Id

		_, err := c.ledger.DeleteTransaction(ctx, authed(bob, &pb.DeleteTransactionRequest{TransactionId: txID}))
		assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

		_, err = c.ledger.DeleteTransaction(ctx, authed(alice, &pb.DeleteTransactionRequest{TransactionId: txID}))
		require.NoError(t, err)

		owed, err := c.ledger.ListOwedToMe(ctx, authed(alice, &pb.ListOwedToMeRequest{}))
		require.NoError(t, err)
		assert.Empty(t, owed.Msg.Debts)

		wallets, err := c.wallet.ListWallets(ctx, authed(alice, &pb.ListWalletsRequest{}))
		require.NoError(t, err)
		assert.Equal(t, "410", wallets.Msg.Wallets[0].Balance, "delete does not reverse the balance")

		_, err = c.ledger.DeleteTransaction(ctx, authed(alice, &pb.DeleteTransactionRequest{TransactionId: txID}))
		assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
	})
}
