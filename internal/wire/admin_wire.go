package wire

import (
	"net/http"

	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	authenticated func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticated)
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Get("/dashboard", adminHandler.Dashboard)
		r.Get("/users", adminHandler.ListUsers)
		r.Get("/stores", adminHandler.ListStores)
		r.Post("/users/{id}/verify", adminHandler.VerifyUser)
		r.Delete("/users/{id}", adminHandler.DeleteUser)
		r.Delete("/stores/{id}", adminHandler.DeleteStore)
	})
}
