package handler

import (
	"net/http"
	"strconv"

	"pawpoint/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// parseIDVar reads a numeric path variable from the mux route.
func parseIDVar(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

// identity pulls the authenticated user ID and role out of the request
// context. Both are set by the auth middleware.
func identity(r *http.Request) (uuid.UUID, int, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, 0, false
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, 0, false
	}
	return userID, roleID, true
}
