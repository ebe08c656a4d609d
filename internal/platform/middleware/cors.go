package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns permissive cross-origin middleware. Preflight requests are passed
// through to the next handler so that OPTIONS answers like every other method.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
			"traceparent",
		},
		ExposedHeaders:     []string{"X-Request-Id"},
		OptionsPassthrough: true,
		MaxAge:             300,
	})
}
