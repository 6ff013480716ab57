package usecase

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OwnerService interface {
	Dashboard(ctx context.Context, storeID uuid.UUID) (*response.OwnerDashboardResponse, error)
}

type ownerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOwnerService(repo *repository.Repository, log *zap.Logger) OwnerService {
	return &ownerService{
		repo: repo,
		log:  log.With(zap.String("service", "owner")),
	}
}

func (o *ownerService) Dashboard(ctx context.Context, storeID uuid.UUID) (*response.OwnerDashboardResponse, error) {
	store, err := o.repo.Store.FindByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		o.log.Warn("Dashboard for deleted store", zap.String("store_id", storeID.String()))
		return nil, entity.ErrNotFound
	}

	ratings, err := o.repo.Rating.FindByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("list received ratings: %w", err)
	}

	stats, err := o.repo.Rating.Stats(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}

	dashboard := response.NewOwnerDashboard(ratings, stats)
	return &dashboard, nil
}
