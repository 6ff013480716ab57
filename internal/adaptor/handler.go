package adaptor

import (
	"store-rating/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Store  *StoreHandler
	Rating *RatingHandler
	Admin  *AdminHandler
	Owner  *OwnerHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, service.Promotion, log),
		Store:  NewStoreHandler(service.Store, log),
		Rating: NewRatingHandler(service.Rating, log),
		Admin:  NewAdminHandler(service.Admin, service.Promotion, log),
		Owner:  NewOwnerHandler(service.Owner, log),
	}
}
