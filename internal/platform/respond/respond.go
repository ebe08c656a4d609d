package respond

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-server/internal/platform/logging"
)

// PlainText is the media type for every body this server writes.
const PlainText = "text/plain"

// Text writes body with the given status and a text/plain content type. Write errors
// mean the client went away; they are returned for callers that care.
func Text(w http.ResponseWriter, status int, body []byte) error {
	w.Header().Set("Content-Type", PlainText)
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}

// Recoverer converts panics into a plaintext 500 and logs the stack. A panic with
// http.ErrAbortHandler is re-raised so net/http can abort the connection quietly, and
// nothing is written when the handler already sent its status line.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				err := panicError(rec)
				applog.LogError(r.Context(), "panic recovered", err,
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				if ww.Status() != 0 {
					return
				}
				body := []byte(http.StatusText(http.StatusInternalServerError))
				if writeErr := Text(ww, http.StatusInternalServerError, body); writeErr != nil {
					applog.LogError(r.Context(), "failed to render internal error", writeErr)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", rec)
}
