package repository

import (
	"store-rating/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Store    StoreRepository
	Rating   RatingRepository
	Identity IdentityRepository
}

func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Store:    NewStoreRepository(db, log),
		Rating:   NewRatingRepository(db, log),
		Identity: NewIdentityRepository(db, log),
	}
}

// WithTx rebinds every repository to q.
func (r *Repository) WithTx(q database.Querier) *Repository {
	return &Repository{
		User:     r.User.WithTx(q),
		Store:    r.Store.WithTx(q),
		Rating:   r.Rating.WithTx(q),
		Identity: r.Identity.WithTx(q),
	}
}
