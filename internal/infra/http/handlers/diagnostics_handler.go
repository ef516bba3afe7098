package handlers

import (
	"net/http"

	"github.com/xavierca1/lembrete-consorcio/internal/logcapture"
)

type DiagnosticsHandler struct {
	capture *logcapture.Capture
}

func NewDiagnosticsHandler(capture *logcapture.Capture) *DiagnosticsHandler {
	return &DiagnosticsHandler{capture: capture}
}

func (h *DiagnosticsHandler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.capture.Entries())
}

func (h *DiagnosticsHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.capture.Clear()
	w.WriteHeader(http.StatusNoContent)
}
