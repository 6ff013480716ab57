package adaptor

import (
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log.With(zap.String("handler", "store")),
	}
}

// ListStores handles GET /stores?search=&sortBy=&sortOrder=
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	viewerID, _, ok := subjectFromContext(w, r)
	if !ok {
		return
	}

	stores, err := h.service.List(r.Context(), viewerID, request.ListQueryFromValues(r.URL.Query()))
	if err != nil {
		handleServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, stores)
}
