// HTTP request logging
package middleware

import (
	"net/http"
	"time"

	"github.com/fbivlabs/fbiv-vpn/internal/shared/logger"
)

// ResponseWriter records the status and body size of a response as it
// is written, for the request log line.
type ResponseWriter struct {
	http.ResponseWriter
	Status int
	Size   int
}

func (w *ResponseWriter) WriteHeader(status int) {
	w.Status = status
	w.ResponseWriter.WriteHeader(status)
}

// Write counts body bytes. A handler that never calls WriteHeader gets
// the implicit 200 recorded here.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.Size += n
	return n, err
}

// LoggerMiddleware logs every request to the rotated HTTP log:
// method, URI, status, response size and handling time in ms.
// level and format configure the underlying logger.
func LoggerMiddleware(level, format string) func(http.Handler) http.Handler {
	httpLog := logger.NewHTTPLoggerWith(level, format)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &ResponseWriter{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			elapsed := float64(time.Since(start).Microseconds()) / 1000
			httpLog.LogRequest(r.Method, r.RequestURI, rec.Status, rec.Size, elapsed)
		})
	}
}
