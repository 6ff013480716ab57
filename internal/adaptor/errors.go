package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"store-rating/internal/data/entity"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const msgInvalidInput = "Invalid input data. Check all fields meet requirements."

// handleServiceError maps domain errors onto HTTP statuses; anything unmapped is a 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, action string) {
	var validationErr *entity.ValidationError

	switch {
	case errors.As(err, &validationErr):
		utils.ResponseBadRequest(w, msgInvalidInput, validationErr.Fields)
	case errors.Is(err, entity.ErrEmailTaken):
		utils.ResponseBadRequest(w, "Email already registered", nil)
	case errors.Is(err, entity.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid credentials")
	case errors.Is(err, entity.ErrAuthMissing):
		utils.ResponseUnauthorized(w, "Access token required")
	case errors.Is(err, entity.ErrAuthInvalid):
		utils.ResponseForbidden(w, "Invalid token")
	case errors.Is(err, entity.ErrForbidden):
		utils.ResponseForbidden(w, "Insufficient permissions")
	case errors.Is(err, entity.ErrNotEligible):
		utils.ResponseNotFound(w, "Normal user not found or is not eligible for verification.")
	case errors.Is(err, entity.ErrNotFound):
		utils.ResponseNotFound(w, "Not found")
	default:
		log.Error("Failed to "+action, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeJSON reads the request body into dst, answering 400 itself on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// subjectFromContext returns the authenticated subject; Authenticate guarantees it on protected routes.
func subjectFromContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, entity.UserRole, bool) {
	id, ok := utils.GetSubjectIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Access token required")
		return uuid.Nil, "", false
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	return id, role, true
}
