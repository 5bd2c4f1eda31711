package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/internal/storage"
	pb "github.com/mmynk/fintrack/pkg/api/financev1"
	"github.com/mmynk/fintrack/pkg/api/financev1/financev1connect"
)

// UserService implements the Connect UserService
type UserService struct {
	financev1connect.UnimplementedUserServiceHandler
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// GetCurrentUser returns the stored profile of the caller.
func (s *UserService) GetCurrentUser(ctx context.Context, req *connect.Request[pb.GetCurrentUserRequest]) (*connect.Response[pb.GetCurrentUserResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, id.UserID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetCurrentUserResponse{User: userToProto(user)}), nil
}
