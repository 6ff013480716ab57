package response

import (
	"math"
	"time"

	"store-rating/internal/data/entity"
)

type AdminDashboardResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

type OwnerDashboardResponse struct {
	Ratings       []ReceivedRatingResponse `json:"ratings"`
	AverageRating float64                  `json:"averageRating"`
	TotalRatings  int64                    `json:"totalRatings"`
}

type ReceivedRatingResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
}

func NewOwnerDashboard(ratings []*entity.ReceivedRating, stats *entity.RatingStats) OwnerDashboardResponse {
	rows := make([]ReceivedRatingResponse, 0, len(ratings))
	for _, r := range ratings {
		rows = append(rows, ReceivedRatingResponse{
			ID:        r.ID.String(),
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			UserName:  r.UserName,
			UserEmail: r.UserEmail,
		})
	}

	return OwnerDashboardResponse{
		Ratings:       rows,
		AverageRating: RoundOneDecimal(stats.Average),
		TotalRatings:  stats.Count,
	}
}

func RoundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
