package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type StoreResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	AverageRating float64 `json:"average_rating"`
	ViewerRating  *int    `json:"viewer_rating"`
}

type AdminStoreResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int64     `json:"total_ratings"`
}

func StoreListingToResponse(s *entity.StoreListing) StoreResponse {
	return StoreResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		Address:       s.Address,
		AverageRating: s.AverageRating,
		ViewerRating:  s.ViewerRating,
	}
}

func StoreSummaryToResponse(s *entity.StoreSummary) AdminStoreResponse {
	return AdminStoreResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		AverageRating: s.AverageRating,
		TotalRatings:  s.TotalRatings,
	}
}
