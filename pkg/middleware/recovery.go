package middleware

import (
	"net/http"
	"runtime/debug"

	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/logger"
)

// Recovery turns a handler panic into a 500 carrying the request id.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				requestID := RequestID(r.Context())
				if requestID == "" {
					requestID = w.Header().Get(RequestIDHeader)
				}
				log.Error("Panic recovered",
					"request_id", requestID,
					"panic", p,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				appErr := apperrors.Internal("Internal server error", nil)
				if requestID != "" {
					appErr = appErr.WithDetail("request_id", requestID)
				}
				reject(w, appErr)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
