// HTTP handlers for speed-test submission and history
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// SpeedTest stores a submitted sample and echoes the stored record.
//
// @Summary      Submit speed test
// @Tags         speedtest
// @Accept       json
// @Produce      json
// @Param        request body models.SpeedTestRequest true "Speed test sample"
// @Success      200 {object} models.SpeedTest
// @Failure      400 {object} models.ErrorResponse "Bad JSON or invalid sample"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/speedtest [post]
func (h *Handler) SpeedTest(w http.ResponseWriter, r *http.Request) {
	var req sm.SpeedTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	st, err := h.Svc.SpeedTest.Record(r.Context(), callerID(r), req)
	if err != nil {
		if errors.Is(err, serr.ErrInvalidInput) {
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
			return
		}
		h.writeInternal(w, "speedtest", err)
		return
	}

	WriteJSON(w, http.StatusOK, toSpeedTest(st))
}

// SpeedTestHistory lists the most recent samples, newest first, capped.
//
// @Summary      Speed test history
// @Tags         speedtest
// @Produce      json
// @Success      200 {array} models.SpeedTest
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/speedtest/history [get]
func (h *Handler) SpeedTestHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Svc.SpeedTest.History(r.Context(), callerID(r))
	if err != nil {
		h.writeInternal(w, "speedtest history", err)
		return
	}

	out := make([]sm.SpeedTest, 0, len(history))
	for _, st := range history {
		out = append(out, toSpeedTest(st))
	}
	WriteJSON(w, http.StatusOK, out)
}
