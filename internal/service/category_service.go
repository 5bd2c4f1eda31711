package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
	pb "github.com/mmynk/fintrack/pkg/api/financev1"
	"github.com/mmynk/fintrack/pkg/api/financev1/financev1connect"
)

// CategoryService implements the Connect CategoryService
type CategoryService struct {
	financev1connect.UnimplementedCategoryServiceHandler
	store storage.Store
}

// NewCategoryService creates a new CategoryService with the given storage backend.
func NewCategoryService(store storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

// CreateCategory creates a category owned by the caller.
func (s *CategoryService) CreateCategory(ctx context.Context, req *connect.Request[pb.CreateCategoryRequest]) (*connect.Response[pb.CreateCategoryResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("name", "is required")
	}
	typ, err := ledger.ParseType(req.Msg.Type)
	if err != nil {
		return nil, toConnectError(err)
	}

	// Names are unique per owner.
	visible, err := s.store.ListVisibleCategories(ctx, id.UserID)
	if err != nil {
		return nil, toConnectError(err)
	}
	for _, c := range visible {
		if c.OwnerUserID == id.UserID && c.Name == name {
			return nil, connect.NewError(connect.CodeAlreadyExists, fmt.Errorf("category %q already exists", name))
		}
	}

	category := &models.Category{Name: name, Type: typ, OwnerUserID: id.UserID}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		slog.Error("CreateCategory failed", "user_id", id.UserID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Category created", "category_id", category.ID, "user_id", id.UserID)
	return connect.NewResponse(&pb.CreateCategoryResponse{Category: categoryToProto(category)}), nil
}

// ListCategories returns global categories and the caller's own.
func (s *CategoryService) ListCategories(ctx context.Context, req *connect.Request[pb.ListCategoriesRequest]) (*connect.Response[pb.ListCategoriesResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.store.ListVisibleCategories(ctx, id.UserID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Category, len(categories))
	for i, c := range categories {
		out[i] = categoryToProto(c)
	}
	return connect.NewResponse(&pb.ListCategoriesResponse{Categories: out}), nil
}
