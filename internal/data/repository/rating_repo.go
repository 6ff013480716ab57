package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *entity.Rating) (*entity.Rating, error)
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.ReceivedRating, error)
	CountAll(ctx context.Context) (int64, error)

	// Business queries
	Stats(ctx context.Context, storeID uuid.UUID) (*entity.RatingStats, error)

	WithTx(q database.Querier) RatingRepository
}

type ratingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRatingRepository(db database.Querier, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) WithTx(q database.Querier) RatingRepository {
	return &ratingRepository{db: q, log: r.log}
}

// Upsert inserts the rating or overwrites the value of the existing (user, store) pair.
// Timestamps come from the caller's clock only and updated_at never precedes created_at.
// The returned row carries the id and created_at of whichever row survived.
func (r *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	query := `
		INSERT INTO ratings (id, user_id, store_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating,
			updated_at = GREATEST(EXCLUDED.updated_at, ratings.created_at)
		RETURNING id, user_id, store_id, rating, created_at, updated_at
	`

	var saved entity.Rating
	err := r.db.QueryRow(ctx, query,
		rating.ID,
		rating.UserID,
		rating.StoreID,
		rating.Rating,
		rating.CreatedAt,
	).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.StoreID,
		&saved.Rating,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", rating.UserID.String()),
			zap.String("store_id", rating.StoreID.String()),
		)
		return nil, fmt.Errorf("upsert rating for store %s by user %s: %w",
			rating.StoreID.String(), rating.UserID.String(), err)
	}

	return &saved, nil
}

// FindByStore returns the store's ratings with their raters, newest first.
func (r *ratingRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.ReceivedRating, error) {
	query := `
		SELECT r.id, r.rating, r.created_at, u.name, u.email
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		r.log.Error("Failed to find ratings by store", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("find ratings by store %s: %w", storeID.String(), err)
	}
	defer rows.Close()

	ratings := make([]*entity.ReceivedRating, 0)
	for rows.Next() {
		var rr entity.ReceivedRating
		if err := rows.Scan(&rr.ID, &rr.Rating, &rr.CreatedAt, &rr.UserName, &rr.UserEmail); err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

func (r *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Database error counting ratings", zap.Error(err))
		return 0, fmt.Errorf("count all ratings: %w", err)
	}

	return count, nil
}

func (r *ratingRepository) Stats(ctx context.Context, storeID uuid.UUID) (*entity.RatingStats, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0)::float8 AS avg_rating,
			COUNT(*) AS rating_count
		FROM ratings
		WHERE store_id = $1
	`

	var stats entity.RatingStats
	if err := r.db.QueryRow(ctx, query, storeID).Scan(&stats.Average, &stats.Count); err != nil {
		r.log.Error("Failed to get store rating stats",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("get rating stats for store %s: %w", storeID.String(), err)
	}

	return &stats, nil
}
