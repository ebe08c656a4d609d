package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/hello-server/internal/http/hello"
)

// Config returns the huma configuration for the server. The docs, OpenAPI and schema
// routes are switched off because every path belongs to the greeting; the document is
// available through the openapi command instead.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig("Hello World", version)
	cfg.Info.Description = "Answers every request with a fixed plaintext greeting."
	cfg.DocsPath = ""
	cfg.OpenAPIPath = ""
	cfg.SchemasPath = ""
	return cfg
}

// Register wires all HTTP routes into the provided API and router.
func Register(api huma.API, router chi.Router) {
	hello.Register(api, router)
}
