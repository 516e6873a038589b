// Package recovery converts handler panics into the service's standard 500
// envelope so a bad chat turn or store driver bug never drops the
// connection without a response.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/notepadhq/notepad-backend/internal/api/respond"
)

// Middleware recovers panics from downstream handlers, logs the stack and
// answers with the standard JSON error envelope.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Str("remote", r.RemoteAddr).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				respond.WriteInternalError(w, "Internal Server Error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
