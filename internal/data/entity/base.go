package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseTracked is embedded by rows that record both creation and last update.
type BaseTracked struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BaseSimple is embedded by rows that are only ever inserted or deleted.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
