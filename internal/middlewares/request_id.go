package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// headerRequestID carries the request ID between client and server.
const headerRequestID = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestIDMiddleware tags each request with an ID and echoes it in the
// response. A client-supplied ID is kept only when it is a valid UUID;
// anything else is replaced.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		w.Header().Set(headerRequestID, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
