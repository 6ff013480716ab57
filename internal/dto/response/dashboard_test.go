package response

import (
	"testing"
	"time"

	"store-rating/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundOneDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{3, 3},
		{3.333333, 3.3},
		{3.666666, 3.7},
		{4.25, 4.3},
		{5, 5},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundOneDecimal(tt.in), 1e-9, "input %v", tt.in)
	}
}

func TestNewOwnerDashboard(t *testing.T) {
	now := time.Now()
	ratings := []*entity.ReceivedRating{
		{ID: uuid.New(), Rating: 5, CreatedAt: now, UserName: "Second Rater", UserEmail: "b@x.com"},
		{ID: uuid.New(), Rating: 4, CreatedAt: now.Add(-time.Hour), UserName: "First Rater", UserEmail: "a@x.com"},
	}

	dash := NewOwnerDashboard(ratings, &entity.RatingStats{Average: 4.5, Count: 2})

	require.Len(t, dash.Ratings, 2)
	assert.Equal(t, "b@x.com", dash.Ratings[0].UserEmail)
	assert.Equal(t, 4.5, dash.AverageRating)
	assert.Equal(t, int64(2), dash.TotalRatings)
}

func TestNewOwnerDashboard_Empty(t *testing.T) {
	dash := NewOwnerDashboard(nil, &entity.RatingStats{})

	assert.NotNil(t, dash.Ratings)
	assert.Empty(t, dash.Ratings)
	assert.Equal(t, 0.0, dash.AverageRating)
}
