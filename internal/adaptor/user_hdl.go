package adaptor

import (
	"net/http"

	"store-rating/internal/dto/response"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service   usecase.UserService
	promotion usecase.PromotionService
	log       *zap.Logger
}

func NewUserHandler(service usecase.UserService, promotion usecase.PromotionService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:   service,
		promotion: promotion,
		log:       log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /users/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	subjectID, role, ok := subjectFromContext(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), subjectID, role)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// ClaimStoreOwner handles POST /users/claim-store-owner
func (h *UserHandler) ClaimStoreOwner(w http.ResponseWriter, r *http.Request) {
	subjectID, _, ok := subjectFromContext(w, r)
	if !ok {
		return
	}

	if err := h.promotion.Claim(r.Context(), subjectID); err != nil {
		handleServiceError(w, h.log, err, "claim store owner")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, response.MsgClaimSubmitted)
}
