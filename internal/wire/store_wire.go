package wire

import (
	"net/http"

	"store-rating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStore(r chi.Router, storeHandler *adaptor.StoreHandler, authenticated func(http.Handler) http.Handler) {
	// GET /stores - any authenticated subject
	r.With(authenticated).Get("/stores", storeHandler.ListStores)
}
