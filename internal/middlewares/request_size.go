package middlewares

import (
	"encoding/json"
	"net/http"
)

// RequestSizeLimitMiddleware rejects request bodies larger than
// maxRequestSize bytes. Declared lengths are checked up front; chunked
// bodies are capped while reading.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}

// respondError writes the handlers' error envelope from middleware,
// where no BaseHandler is in scope.
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": message})
}
