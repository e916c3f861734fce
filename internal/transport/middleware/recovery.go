package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/aiyyappann/EchoVision/pkg/ctxutil"
)

// Recovery returns middleware that turns a handler panic into a logged
// 500 response carrying the generic processing error message.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					ctxutil.RequestIDAttr(r.Context()),
				)
				http.Error(w, "An error occurred while processing your request.", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
