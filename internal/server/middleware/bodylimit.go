// Request body size limiting
package middleware

import "net/http"

// MaxBody returns middleware capping request bodies at limit bytes.
// A handler reading past the cap gets an error from Body.Read, and the
// connection is flagged so the server closes it after the response.
func MaxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
