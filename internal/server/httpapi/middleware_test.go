package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-admin/internal/common"
	"pos-admin/internal/server/models"
)

func guardedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok, "guarded handler must see the authenticated user")
		writeJSON(w, http.StatusOK, map[string]string{"user_id": user.ID})
	})
}

func TestRequireSession_PassesAuthenticatedUser(t *testing.T) {
	auth := &fakeAuthService{
		validateUser:    adminUser(),
		validateSession: &models.Session{ID: "tok-1", UserID: "u-1"},
	}
	srv := newTestServer(t, auth)
	handler := srv.RequireSession(nil)(guardedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/users/list", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"u-1"}`, rec.Body.String())
}

func TestRequireSession_NoCookie(t *testing.T) {
	srv := newTestServer(t, &fakeAuthService{})
	handler := srv.RequireSession(nil)(guardedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/users/list", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"No session"}`, rec.Body.String())
}

func TestRequireSession_DeadSession(t *testing.T) {
	srv := newTestServer(t, &fakeAuthService{validateErr: common.ErrUnauthorized})
	handler := srv.RequireSession(nil)(guardedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/users/list", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "dead"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSession_PermissionCheck(t *testing.T) {
	seller := adminUser()
	seller.Role = models.RoleSeller

	auth := &fakeAuthService{
		validateUser:    seller,
		validateSession: &models.Session{ID: "tok-1"},
	}
	srv := newTestServer(t, auth)

	needsSettings := func(p models.PermissionSet) bool { return p.Settings || p.All }
	handler := srv.RequireSession(needsSettings)(guardedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, rec.Body.String())

	// The same check passes for an admin.
	auth.validateUser = adminUser()
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
