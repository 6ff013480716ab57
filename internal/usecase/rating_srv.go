package usecase

import (
	"context"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	// Submit creates the rater's rating for a store or replaces its value.
	Submit(ctx context.Context, raterID uuid.UUID, req *request.RatingRequest) error
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (rs *ratingService) Submit(ctx context.Context, raterID uuid.UUID, req *request.RatingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		rs.log.Warn("Rating validation failed", zap.Any("errors", errs))
		return entity.NewValidationError(errs)
	}

	storeID, err := utils.ParseUUID(req.StoreID)
	if err != nil {
		return entity.NewValidationError(map[string]string{"storeId": "Must be a valid UUID"})
	}

	store, err := rs.repo.Store.FindByID(ctx, storeID)
	if err != nil {
		return fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return entity.ErrNotFound
	}

	now := time.Now()
	saved, err := rs.repo.Rating.Upsert(ctx, &entity.Rating{
		BaseTracked: entity.BaseTracked{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  raterID,
		StoreID: storeID,
		Rating:  req.Rating,
	})
	if err != nil {
		// the store or the rater was deleted after the existence check
		if repository.IsForeignKeyViolation(err) {
			return entity.ErrNotFound
		}
		return fmt.Errorf("submit rating: %w", err)
	}

	rs.log.Info("Rating submitted",
		zap.String("rating_id", saved.ID.String()),
		zap.String("user_id", raterID.String()),
		zap.String("store_id", storeID.String()),
		zap.Int("rating", saved.Rating))
	return nil
}
