package middleware

import (
	"net/http"
)

const (
	xContentTypeOptions = "X-Content-Type-Options"
	cacheControl        = "Cache-Control"
)

// Security adds essential security headers.
//
// NOTE: This middleware does not include headers like "Strict-Transport-Security", "X-Frame-Options",
// "Content-Security-Policy", "Referrer-Policy" etc. because they are better managed by a reverse proxy.
func (m Middleware) Security(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Browsers should not try to guess the Content-Type if it is not provided.
		w.Header().Set(xContentTypeOptions, "nosniff")

		// Prevent caching of sensitive data. The success redirect of the OAuth flow
		// carries tokens in the URL, so cached responses are a real risk here.
		w.Header().Set(cacheControl, "no-store, max-age=0")

		// Call the next handler
		next.ServeHTTP(w, r)
	})
}
