package adaptor

import (
	"net/http"

	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type OwnerHandler struct {
	service usecase.OwnerService
	log     *zap.Logger
}

func NewOwnerHandler(service usecase.OwnerService, log *zap.Logger) *OwnerHandler {
	return &OwnerHandler{
		service: service,
		log:     log.With(zap.String("handler", "owner")),
	}
}

// Dashboard handles GET /store-owner/dashboard. The owner's subject id is its store id.
func (h *OwnerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	storeID, _, ok := subjectFromContext(w, r)
	if !ok {
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), storeID)
	if err != nil {
		handleServiceError(w, h.log, err, "load owner dashboard")
		return
	}

	utils.ResponseSuccess(w, dashboard)
}
