package usecase

import (
	"context"
	"fmt"

	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*response.AdminDashboardResponse, error)
	ListUsers(ctx context.Context, query request.ListQuery) ([]response.UserResponse, error)
	ListStores(ctx context.Context, query request.ListQuery) ([]response.AdminStoreResponse, error)
	// DeleteUser and DeleteStore succeed whether or not the row existed.
	DeleteUser(ctx context.Context, id uuid.UUID) error
	DeleteStore(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (as *adminService) Dashboard(ctx context.Context) (*response.AdminDashboardResponse, error) {
	users, err := as.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	stores, err := as.repo.Store.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stores: %w", err)
	}

	ratings, err := as.repo.Rating.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	return &response.AdminDashboardResponse{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}

func (as *adminService) ListUsers(ctx context.Context, query request.ListQuery) ([]response.UserResponse, error) {
	users, err := as.repo.User.FindAll(ctx, query.SortBy, query.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, response.UserToResponse(u))
	}
	return result, nil
}

func (as *adminService) ListStores(ctx context.Context, query request.ListQuery) ([]response.AdminStoreResponse, error) {
	stores, err := as.repo.Store.ListForAdmin(ctx, query.SortBy, query.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	result := make([]response.AdminStoreResponse, 0, len(stores))
	for _, s := range stores {
		result = append(result, response.StoreSummaryToResponse(s))
	}
	return result, nil
}

func (as *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	deleted, err := as.repo.User.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	as.log.Info("Admin deleted user", zap.String("user_id", id.String()), zap.Bool("existed", deleted))
	return nil
}

func (as *adminService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	deleted, err := as.repo.Store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}

	as.log.Info("Admin deleted store", zap.String("store_id", id.String()), zap.Bool("existed", deleted))
	return nil
}
