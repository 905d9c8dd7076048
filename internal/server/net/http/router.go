// Package http wires the HTTP routing of the FBIV VPN backend.
//
// The package is responsible for:
//   - registering routes on the chi router;
//   - request logging, CORS, rate limiting and panic recovery;
//   - grouping token-gated and optionally-authenticated endpoints.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/fbivlabs/fbiv-vpn/internal/server/api"
	"github.com/fbivlabs/fbiv-vpn/internal/server/config"
	"github.com/fbivlabs/fbiv-vpn/internal/server/middleware"
)

// NewRouter creates and configures the server router.
//
// Three auth levels exist under /api:
//   - public: auth, servers, stats, health;
//   - optional bearer: connect, disconnect, speedtest (work anonymously,
//     attach the caller identity when a valid token is present);
//   - required bearer: auth/me and the /api/user pages.
func NewRouter(h *api.Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recover())
	r.Use(middleware.LoggerMiddleware(cfg.Log.Level, cfg.Log.Format))
	if cfg.Server.MaxBodyBytes > 0 {
		r.Use(middleware.MaxBody(cfg.Server.MaxBodyBytes))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin()},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		if cfg.Security.RateLimit.Enabled {
			r.Use(middleware.RateLimit(cfg.Security.RateLimit.RPS, cfg.Security.RateLimit.Burst))
		}

		// public
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(h.Verifier.RequireAuth())
				r.Get("/me", h.Me)
			})
		})
		r.Get("/servers", h.Servers)
		r.Get("/stats", h.Stats)
		r.Get("/health", h.Health)

		// anonymous or authenticated
		r.Group(func(r chi.Router) {
			r.Use(h.Verifier.OptionalAuth())
			r.Post("/connect", h.Connect)
			r.Post("/disconnect", h.Disconnect)
			r.Post("/speedtest", h.SpeedTest)
			r.Get("/speedtest/history", h.SpeedTestHistory)
		})

		// token-gated account pages
		r.Route("/user", func(r chi.Router) {
			r.Use(h.Verifier.RequireAuth())
			r.Get("/profile", h.Profile)
			r.Get("/usage", h.Usage)
			r.Get("/subscription", h.Subscription)
			r.Get("/devices", h.Devices)
			r.Get("/sessions", h.Sessions)
		})
	})

	r.NotFound(h.NotFound)

	return r
}
