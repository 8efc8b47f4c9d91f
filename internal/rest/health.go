package rest

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Time    int64  `json:"time,omitempty"`
}

// Health responds to GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, healthResponse{
		Status:  "ok",
		Service: "vgi-server",
		Time:    time.Now().Unix(),
	}, http.StatusOK)
}

// Ready responds to GET /ready.
func (h *Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, healthResponse{Status: "ready"}, http.StatusOK)
}
