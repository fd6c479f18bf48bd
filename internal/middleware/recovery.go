package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"darkparadise-rest-api/pkg/apierror"
	"darkparadise-rest-api/pkg/response"
)

// Recovery is a middleware that turns panics into a 500 error body.
// A response that already started is left as is.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracked := &headerTracker{ResponseWriter: w}

		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Printf("[Recovery] PANIC rid=%s: %v\n%s", GetRequestID(r.Context()), err, debug.Stack())

				if tracked.started {
					return
				}
				response.Error(w, apierror.InternalError("internal server error"))
			}
		}()

		next.ServeHTTP(tracked, r)
	})
}

// headerTracker records whether the status line has been sent.
type headerTracker struct {
	http.ResponseWriter
	started bool
}

func (t *headerTracker) WriteHeader(code int) {
	t.started = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *headerTracker) Write(b []byte) (int, error) {
	t.started = true
	return t.ResponseWriter.Write(b)
}
