package adaptor

import (
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service   usecase.AdminService
	promotion usecase.PromotionService
	log       *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, promotion usecase.PromotionService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service:   service,
		promotion: promotion,
		log:       log.With(zap.String("handler", "admin")),
	}
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "load admin dashboard")
		return
	}

	utils.ResponseSuccess(w, dashboard)
}

// ListUsers handles GET /admin/users?sortBy=&sortOrder=
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context(), request.ListQueryFromValues(r.URL.Query()))
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// ListStores handles GET /admin/stores?sortBy=&sortOrder=
func (h *AdminHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListStores(r.Context(), request.ListQueryFromValues(r.URL.Query()))
	if err != nil {
		handleServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, stores)
}

// VerifyUser handles POST /admin/users/{id}/verify
func (h *AdminHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.promotion.Verify(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "verify user")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, response.MsgUserVerified)
}

// DeleteUser handles DELETE /admin/users/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteStore handles DELETE /admin/stores/{id}
func (h *AdminHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	storeID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteStore(r.Context(), storeID); err != nil {
		handleServiceError(w, h.log, err, "delete store")
		return
	}

	utils.ResponseNoContent(w)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
