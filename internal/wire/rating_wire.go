package wire

import (
	"net/http"

	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	authenticated func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.With(authenticated, middleware.RequireRole(log, entity.RoleNormalUser)).
		Post("/ratings", ratingHandler.SubmitRating)
}
