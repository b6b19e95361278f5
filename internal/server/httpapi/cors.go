package httpapi

import "net/http"

// setCORSHeaders applies the cross-origin policy for credentialed SPA
// requests: the exact Origin is echoed back (browsers reject a wildcard when
// credentials are on) together with Vary: Origin so caches key on it.
// Requests without an Origin header get no CORS headers at all.
func setCORSHeaders(w http.ResponseWriter, r *http.Request, methods string) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}

	h := w.Header()
	h.Set("Access-Control-Allow-Origin", origin)
	h.Add("Vary", "Origin")
	h.Set("Access-Control-Allow-Credentials", "true")
	h.Set("Access-Control-Allow-Methods", methods)
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

// preflight answers an OPTIONS request with the CORS headers and an empty
// body.
func (s *Server) preflight(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w, r, methods)
		w.WriteHeader(http.StatusOK)
	}
}
