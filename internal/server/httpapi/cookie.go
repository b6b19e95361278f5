package httpapi

import "net/http"

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "sid"

// setSessionCookie issues the session cookie. Lifetime matches the session
// row exactly; HttpOnly keeps it away from page scripts and SameSite=Lax
// still allows top-level navigation back into the app.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
