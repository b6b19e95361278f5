package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pos-admin/internal/common"
	"pos-admin/internal/server/models"
)

// loginRequest is the normalized login body. Identifier is the preferred
// field; Email is a compatibility alias kept for clients that predate
// identifier-based login. Identifier is a pointer because the fallback is
// by presence: an identifier that is sent but empty must fail validation,
// not fall through to the legacy field.
type loginRequest struct {
	Identifier *string `json:"identifier"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
}

// userPayload is the response body shared by login and me.
type userPayload struct {
	ID       string               `json:"id"`
	Email    *string              `json:"email"`
	Username *string              `json:"username"`
	Role     models.Role          `json:"role"`
	BranchID *string              `json:"branch_id"`
	FullName *string              `json:"full_name"`
	Perms    models.PermissionSet `json:"perms"`
}

func newUserPayload(u *models.User) userPayload {
	return userPayload{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
		BranchID: u.BranchID,
		FullName: u.FullName,
		Perms:    u.Role.Permissions(),
	}
}

// handleLogin implements POST /api/auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w, r, loginMethods)

	// A malformed or absent body decodes into the zero request so the
	// validation step can produce the precise error.
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	identifier := req.Email
	if req.Identifier != nil {
		identifier = *req.Identifier
	}

	user, session, err := s.auth.Login(r.Context(), identifier, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.setSessionCookie(w, session.ID)
	writeJSON(w, http.StatusOK, newUserPayload(user))
}

// handleMe implements GET /api/auth/me. The cookie is not reissued; its
// lifetime is fixed at login.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w, r, meMethods)

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

	writeJSON(w, http.StatusOK, newUserPayload(user))
}

// handleHealth implements GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	hasDB := false
	if s.db != nil {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		hasDB = s.db.PingContext(pingCtx) == nil
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "hasDB": hasDB})
}
