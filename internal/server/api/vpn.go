// HTTP handlers for the server list and the mock connect flow
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// Servers lists the fleet with per-request load/ping jitter.
//
// @Summary      List servers
// @Tags         vpn
// @Produce      json
// @Success      200 {array} models.Server
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/servers [get]
func (h *Handler) Servers(w http.ResponseWriter, r *http.Request) {
	servers, err := h.Svc.VPN.ListServers(r.Context())
	if err != nil {
		h.writeInternal(w, "list servers", err)
		return
	}

	out := make([]sm.Server, 0, len(servers))
	for _, s := range servers {
		out = append(out, toServer(s))
	}
	WriteJSON(w, http.StatusOK, out)
}

// Connect records a mock connection to the selected server.
//
// @Summary      Connect
// @Description  Records a connection to the selected server. No tunnel is established.
// @Tags         vpn
// @Accept       json
// @Produce      json
// @Param        request body models.ConnectRequest true "Connect request"
// @Success      200 {object} models.ConnectResponse
// @Failure      400 {object} models.ErrorResponse "Bad JSON"
// @Failure      404 {object} models.ErrorResponse "Server not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/connect [post]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	var req sm.ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	server, msg, err := h.Svc.VPN.Connect(r.Context(), callerID(r), req.ServerID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteError(w, http.StatusNotFound, errors.New("server not found"))
			return
		}
		h.writeInternal(w, "connect", err)
		return
	}

	WriteJSON(w, http.StatusOK, sm.ConnectResponse{
		Success: true,
		Message: msg,
		Server:  toServer(server),
	})
}

// Disconnect clears the caller's mock connection. Disconnecting while
// already disconnected succeeds with the same body.
//
// @Summary      Disconnect
// @Tags         vpn
// @Produce      json
// @Success      200 {object} models.DisconnectResponse
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/disconnect [post]
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.VPN.Disconnect(r.Context(), callerID(r)); err != nil {
		h.writeInternal(w, "disconnect", err)
		return
	}

	WriteJSON(w, http.StatusOK, sm.DisconnectResponse{
		Success: true,
		Message: "Disconnected from VPN",
	})
}

// Stats returns the randomized global counters.
//
// @Summary      Global stats
// @Tags         vpn
// @Produce      json
// @Success      200 {object} models.Stats
// @Router       /api/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.VPN.Stats(r.Context())
	if err != nil {
		h.writeInternal(w, "stats", err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
