package wire

import (
	"net/http"

	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOwner(
	r chi.Router,
	ownerHandler *adaptor.OwnerHandler,
	authenticated func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.With(authenticated, middleware.RequireRole(log, entity.RoleStoreOwner)).
		Get("/store-owner/dashboard", ownerHandler.Dashboard)
}
