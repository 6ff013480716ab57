package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is unique per (UserID, StoreID).
type Rating struct {
	BaseTracked
	UserID  uuid.UUID `db:"user_id"`
	StoreID uuid.UUID `db:"store_id"`
	Rating  int       `db:"rating"`
}

// ReceivedRating is a rating joined with its rater, as shown to the store owner.
type ReceivedRating struct {
	ID        uuid.UUID
	Rating    int
	CreatedAt time.Time
	UserName  string
	UserEmail string
}

// RatingStats is the aggregate over every rating of a store.
type RatingStats struct {
	Average float64
	Count   int64
}
