package httpapi

import (
	"context"
	"errors"
	"net/http"

	"pos-admin/internal/common"
	"pos-admin/internal/server/models"
)

type ctxKey string

const userContextKey ctxKey = "authUser"

// RequireSession guards an endpoint behind a valid session cookie and places
// the authenticated user in the request context. check, when non-nil, is an
// additional predicate over the user's capability set; endpoints outside the
// auth core (products, suppliers, user management) mount this to get their
// session-validation call and permission check.
func (s *Server) RequireSession(check func(models.PermissionSet) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "No session")
				return
			}

			user, _, err := s.auth.ValidateSession(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, common.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "No session")
					return
				}
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}

			if check != nil && !check(user.Role.Permissions()) {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user placed in the context by RequireSession.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
