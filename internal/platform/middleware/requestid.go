package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxRequestIDLength limits request ID size to prevent unbounded memory usage.
const maxRequestIDLength = 128

// isValidRequestID validates a request ID before it is logged and echoed back.
// Only printable ASCII (0x20-0x7E) is allowed, which rules out control characters,
// newlines and high bytes that could enable log or header injection. Empty IDs and
// IDs longer than maxRequestIDLength are rejected too.
func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		c := id[i]
		// Allow space (0x20) through tilde (0x7E); this excludes 0x00-0x1F, DEL (0x7F)
		// and 0x80-0xFF.
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// RequestID returns middleware that tags each request with an identifier. A valid
// incoming X-Request-Id is reused; otherwise a UUIDv4 is generated. The value is echoed
// in the response and stored where chimiddleware.GetReqID finds it.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(chimiddleware.RequestIDHeader)
			if !isValidRequestID(reqID) {
				reqID = uuid.NewString()
			}

			r = r.WithContext(context.WithValue(r.Context(), chimiddleware.RequestIDKey, reqID))
			w.Header().Set(chimiddleware.RequestIDHeader, reqID)
			next.ServeHTTP(w, r)
		})
	}
}
