// Panic recovery
package middleware

import (
	"net/http"

	"github.com/fbivlabs/fbiv-vpn/internal/shared/logger"

	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
)

// Recover converts a handler panic into the generic 500 body. The
// panic value goes to the log only, never to the client.
func Recover() func(http.Handler) http.Handler {
	log := logger.NewHTTPLogger().Logger.Sugar()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Errorf("panic in %s %s: %v", r.Method, r.RequestURI, rec)
					writeAuthError(w, http.StatusInternalServerError, serr.ErrInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
