package middleware

import (
	"net/http"

	"pawpoint/internal/domain/entity"
	"pawpoint/pkg/response"
)

// RequireRole checks that the authenticated user carries one of the allowed
// roles. Role is read from context, set by AuthMiddleware from JWT claims.
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireOwnerOrAdmin covers pet management endpoints
func RequireOwnerOrAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPetOwner, entity.RoleIDAdmin)(next)
}

// RequireVetOrAdmin covers treatment and schedule management endpoints
func RequireVetOrAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDVeterinarian, entity.RoleIDAdmin)(next)
}
