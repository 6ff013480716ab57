package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a row of the stores population. Its ID is also the login subject of the owner.
type Store struct {
	BaseSimple
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Address      string   `db:"address"`
	Role         UserRole `db:"role"`
}

// StoreListing is one row of the store list as seen by a given viewer.
type StoreListing struct {
	ID            uuid.UUID
	Name          string
	Address       string
	AverageRating float64
	ViewerRating  *int
}

// StoreSummary is one row of the admin store list.
type StoreSummary struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Address       string
	CreatedAt     time.Time
	AverageRating float64
	TotalRatings  int64
}
