package usecase

import (
	"store-rating/internal/data/repository"
	"store-rating/pkg/database"
	"store-rating/pkg/token"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Promotion PromotionService
	Store     StoreService
	Rating    RatingService
	Admin     AdminService
	Owner     OwnerService
}

func NewService(
	repo *repository.Repository,
	tx database.TxManager,
	tokens token.Manager,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo, tx, tokens, config, log),
		User:      NewUserService(repo, log),
		Promotion: NewPromotionService(repo, tx, log),
		Store:     NewStoreService(repo.Store, log),
		Rating:    NewRatingService(repo, log),
		Admin:     NewAdminService(repo, log),
		Owner:     NewOwnerService(repo, log),
	}
}
