package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-admin/internal/server/models"
)

func TestPreflight_EchoesOriginWithEmptyBody(t *testing.T) {
	srv := newTestServer(t, &fakeAuthService{})

	for _, path := range []string{"/api/auth/login", "/api/auth/me"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set("Origin", "https://admin.pos.example")
			rec := doRequest(t, srv, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())

			h := rec.Header()
			assert.Equal(t, "https://admin.pos.example", h.Get("Access-Control-Allow-Origin"),
				"exact origin must be echoed, never a wildcard")
			assert.Equal(t, "Origin", h.Get("Vary"))
			assert.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
			assert.NotEmpty(t, h.Get("Access-Control-Allow-Methods"))
		})
	}
}

func TestPreflight_MethodListsPerEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeAuthService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "https://admin.pos.example")
	assert.Equal(t, loginMethods, doRequest(t, srv, req).Header().Get("Access-Control-Allow-Methods"))

	req = httptest.NewRequest(http.MethodOptions, "/api/auth/me", nil)
	req.Header.Set("Origin", "https://admin.pos.example")
	assert.Equal(t, meMethods, doRequest(t, srv, req).Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_AppliedToActualRequests(t *testing.T) {
	auth := &fakeAuthService{
		loginUser:    adminUser(),
		loginSession: &models.Session{ID: "tok-1"},
	}
	srv := newTestServer(t, auth)

	body := strings.NewReader(`{"identifier":"admin","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Origin", "https://admin.pos.example")
	rec := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://admin.pos.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_AbsentWithoutOrigin(t *testing.T) {
	srv := newTestServer(t, &fakeAuthService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	rec := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
