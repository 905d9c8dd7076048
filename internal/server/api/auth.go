// HTTP handlers for registration, login and identity lookup
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fbivlabs/fbiv-vpn/internal/server/middleware"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// RegisterRequest is the registration request body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles account creation.
//
// @Summary      Register account
// @Description  Creates an account with the default free subscription and returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration request"
// @Success      201 {object} models.AuthResponse
// @Failure      400 {object} models.ErrorResponse "Invalid input, bad JSON or duplicate email"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, user, err := h.Svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrAlreadyExists):
			// 400, not 409: the client treats every auth failure the
			// same way and the source contract uses 400 here
			WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
		default:
			h.writeInternal(w, "register", err)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, sm.AuthResponse{
		Success: true,
		Message: "Account created successfully",
		Token:   token,
		User:    toProjection(user),
	})
}

// Login handles credential verification and token issuance.
//
// @Summary      Login
// @Description  Verifies credentials and returns a fresh session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} models.AuthResponse
// @Failure      400 {object} models.ErrorResponse "Invalid input or invalid credentials"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, user, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrInvalidCredentials):
			// 400, not 401: no signal about whether the email exists
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidCredentials)
		default:
			h.writeInternal(w, "login", err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, sm.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    toProjection(user),
	})
}

// Me returns the caller's own account.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.UserProjection
// @Failure      401 {object} models.ErrorResponse "Missing bearer token"
// @Failure      403 {object} models.ErrorResponse "Invalid or expired token"
// @Failure      404 {object} models.ErrorResponse "Account no longer exists"
// @Router       /api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthenticated)
		return
	}

	user, err := h.Svc.Auth.Me(r.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
			return
		}
		h.writeInternal(w, "me", err)
		return
	}

	WriteJSON(w, http.StatusOK, toProjection(user))
}
