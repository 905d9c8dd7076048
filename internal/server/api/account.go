// HTTP handlers for the account pages (profile, usage, subscription,
// devices, sessions). All of them are token-gated.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/middleware"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
)

// accountCall runs one account-service call for the authenticated
// caller and writes the result. Keeps the five thin handlers below from
// repeating the same identity/error plumbing.
func (h *Handler) accountCall(w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context, userID uuid.UUID) (any, error)) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthenticated)
		return
	}

	body, err := fn(r.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
			return
		}
		h.writeInternal(w, op, err)
		return
	}

	WriteJSON(w, http.StatusOK, body)
}

// Profile returns the extended account view.
//
// @Summary      Account profile
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.Profile
// @Failure      401 {object} models.ErrorResponse "Missing bearer token"
// @Failure      404 {object} models.ErrorResponse "Account no longer exists"
// @Router       /api/user/profile [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	h.accountCall(w, r, "profile", func(ctx context.Context, userID uuid.UUID) (any, error) {
		return h.Svc.Account.Profile(ctx, userID)
	})
}

// Usage returns the account usage summary.
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	h.accountCall(w, r, "usage", func(ctx context.Context, userID uuid.UUID) (any, error) {
		return h.Svc.Account.Usage(ctx, userID)
	})
}

// Subscription returns the account's plan sheet.
func (h *Handler) Subscription(w http.ResponseWriter, r *http.Request) {
	h.accountCall(w, r, "subscription", func(ctx context.Context, userID uuid.UUID) (any, error) {
		return h.Svc.Account.Subscription(ctx, userID)
	})
}

// Devices returns the account's registered devices.
func (h *Handler) Devices(w http.ResponseWriter, r *http.Request) {
	h.accountCall(w, r, "devices", func(ctx context.Context, userID uuid.UUID) (any, error) {
		return h.Svc.Account.Devices(ctx, userID)
	})
}

// Sessions lists the account's recent VPN connections.
func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	h.accountCall(w, r, "sessions", func(ctx context.Context, userID uuid.UUID) (any, error) {
		return h.Svc.Account.Sessions(ctx, userID)
	})
}
