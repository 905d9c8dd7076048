// Package api implements the HTTP layer of the FBIV VPN backend.
//
// The package is responsible for:
//   - decoding requests and encoding JSON responses;
//   - mapping domain errors (service/repository) to HTTP statuses;
//   - the swagger annotations the API docs are generated from.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/middleware"
	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	"github.com/fbivlabs/fbiv-vpn/internal/server/service"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
	"github.com/fbivlabs/fbiv-vpn/internal/shared/logger"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// Every response body is JSON.
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler aggregates the HTTP-layer dependencies and provides the
// handler methods registered by the router.
//
// Handler holds:
//   - Svc: the service layer (business logic);
//   - Log: the logger for events and errors;
//   - Verifier: JWT verification and the auth middleware.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// WriteError replies with the API error shape {"message": "..."}.
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(sm.ErrorResponse{
		Message: err.Error(),
	})
}

// WriteJSON replies with an arbitrary JSON body.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// toProjection maps a stored user onto its public shape. The password
// hash stays behind on purpose.
func toProjection(u models.User) sm.UserProjection {
	return sm.UserProjection{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		Subscription: u.Subscription,
	}
}

// toServer maps a stored server record to the wire shape.
func toServer(s models.Server) sm.Server {
	return sm.Server{
		ID:       s.ID,
		Name:     s.Name,
		Location: s.Location,
		Country:  s.Country,
		Flag:     s.Flag,
		IP:       s.IP,
		Load:     s.Load,
		Ping:     s.Ping,
		Premium:  s.Premium,
	}
}

// toSpeedTest maps a stored sample to the wire shape.
func toSpeedTest(st models.SpeedTest) sm.SpeedTest {
	return sm.SpeedTest{
		ID:            st.ID.String(),
		DownloadSpeed: st.DownloadSpeed,
		UploadSpeed:   st.UploadSpeed,
		Ping:          st.Ping,
		Jitter:        st.Jitter,
		Server:        st.ServerLabel,
		Timestamp:     st.CreatedAt,
	}
}

// callerID returns the authenticated caller's user id, or nil on
// anonymous requests (optional-auth routes).
func callerID(r *http.Request) *uuid.UUID {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		return nil
	}
	uid := id.UserID
	return &uid
}

// writeInternal logs the unexpected error and replies with the generic
// 500 body. Internals never leak to the client.
func (h *Handler) writeInternal(w http.ResponseWriter, op string, err error) {
	h.Log.Logger.Sugar().Errorf("%s failed: %v", op, err)
	WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
}

// NotFound is the catch-all for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, errors.New("API endpoint not found"))
}
