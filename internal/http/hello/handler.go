// Package hello answers every request with a fixed plaintext greeting.
package hello

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/hello-server/internal/platform/respond"
)

const (
	// Message is the exact response body.
	Message = "Hello World!"
	// ContentType is the exact Content-Type header value.
	ContentType = respond.PlainText
)

var body = []byte(Message)

// describedMethods are exposed as huma operations on "/" so they appear in the
// OpenAPI document. Every other method and path is answered by the chi fallback.
var describedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Output is the huma response for the greeting.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// Handler writes the greeting. The request is never inspected.
func Handler(w http.ResponseWriter, _ *http.Request) {
	_ = respond.Text(w, http.StatusOK, body)
}

// Register describes the greeting on api and makes router answer every remaining
// method and path with Handler. chi rejects verbs it does not know with 405, so the
// MethodNotAllowed handler is replaced as well.
func Register(api huma.API, router chi.Router) {
	for _, method := range describedMethods {
		huma.Register(api, huma.Operation{
			OperationID: "hello-" + strings.ToLower(method),
			Method:      method,
			Path:        "/",
			Summary:     "Say hello",
			Description: "Returns the fixed greeting. The request is ignored.",
			Tags:        []string{"Hello"},
			Responses: map[string]*huma.Response{
				"200": {
					Description: "Greeting",
					Content: map[string]*huma.MediaType{
						ContentType: {Schema: &huma.Schema{Type: huma.TypeString, Examples: []any{Message}}},
					},
				},
			},
		}, operationHandler)
	}

	router.HandleFunc("/*", Handler)
	router.NotFound(Handler)
	router.MethodNotAllowed(Handler)
}

func operationHandler(_ context.Context, _ *struct{}) (*Output, error) {
	return &Output{ContentType: ContentType, Body: body}, nil
}
