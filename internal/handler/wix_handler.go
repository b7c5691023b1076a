package handler

import (
	"net/http"

	"github.com/VETechnologiesCo/VPCO/internal/model"
)

// WixIntegration reports on the Wix API credentials.
type WixIntegration interface {
	Status() model.WixStatus
	CheckCredentials() error
}

// WixHandler serves the Wix integration endpoints.
type WixHandler struct {
	wix WixIntegration
}

// NewWixHandler creates a WixHandler.
func NewWixHandler(wix WixIntegration) *WixHandler {
	return &WixHandler{wix: wix}
}

// Status handles GET /api/wix/status.
func (h *WixHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.wix.Status())
}

// Example handles GET /api/wix/example: 503 until credentials are set.
func (h *WixHandler) Example(w http.ResponseWriter, r *http.Request) {
	if err := h.wix.CheckCredentials(); err != nil {
		writeError(w, http.StatusServiceUnavailable, "Wix API not configured. Please set up .env file.")
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Wix API credentials are configured",
		Note:    "Add your Wix API calls here",
	})
}
