package wire

import (
	"net/http"

	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	authenticated func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticated)

		// GET /users/profile - any authenticated subject
		r.Get("/users/profile", userHandler.GetProfile)

		// POST /users/claim-store-owner - normal users only
		r.With(middleware.RequireRole(log, entity.RoleNormalUser)).
			Post("/users/claim-store-owner", userHandler.ClaimStoreOwner)
	})
}
