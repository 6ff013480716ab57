package middleware

import (
	"net/http"
	"slices"
	"strings"

	"store-rating/internal/data/entity"
	"store-rating/pkg/token"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and puts its subject and role into the request context.
// A missing token is 401; a token that fails verification is 403.
func Authenticate(tokens token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				utils.ResponseUnauthorized(w, "Access token required")
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				logger.Warn("Rejected bearer token",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Invalid token")
				return
			}

			ctx := utils.SetSubjectContext(r.Context(), claims.SubjectID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole admits only subjects whose token role is one of roles. It must run after Authenticate.
func RequireRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || !slices.Contains(roles, role) {
				subjectID, _ := utils.GetSubjectIDFromContext(r.Context())
				logger.Warn("Role check failed",
					zap.String("subject_id", subjectID.String()),
					zap.String("role", string(role)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, value, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
