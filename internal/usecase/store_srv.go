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

type StoreService interface {
	// List returns every store matching the search, with the viewer's own rating when present.
	List(ctx context.Context, viewerID uuid.UUID, query request.ListQuery) ([]response.StoreResponse, error)
}

type storeService struct {
	storeRepo repository.StoreRepository
	log       *zap.Logger
}

func NewStoreService(storeRepo repository.StoreRepository, log *zap.Logger) StoreService {
	return &storeService{
		storeRepo: storeRepo,
		log:       log.With(zap.String("service", "store")),
	}
}

func (ss *storeService) List(ctx context.Context, viewerID uuid.UUID, query request.ListQuery) ([]response.StoreResponse, error) {
	stores, err := ss.storeRepo.ListForViewer(ctx, viewerID, query.Search, query.SortBy, query.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	result := make([]response.StoreResponse, 0, len(stores))
	for _, s := range stores {
		result = append(result, response.StoreListingToResponse(s))
	}

	ss.log.Debug("Stores listed",
		zap.String("viewer_id", viewerID.String()),
		zap.Int("count", len(result)))
	return result, nil
}
