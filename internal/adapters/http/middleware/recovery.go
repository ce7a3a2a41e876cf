package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/identifiers/internal/adapters/http/dto"
)

// errPanic is what clients see after a recovered panic. The panic value and
// stack go to the log only.
var errPanic = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into an RFC 9457 500
// response and an error log carrying the stack. When the handler had already
// started its response, only the log is written.
//
// http.ErrAbortHandler is re-panicked so net/http aborts the connection
// without logging, as it would without this middleware.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.String("stack", string(debug.Stack())),
				)
				if !sr.wroteHeader {
					dto.WriteErrorResponse(sr, r, errPanic)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
