package handler

import (
	"log/slog"
	"net/http"

	"github.com/VETechnologiesCo/VPCO/internal/model"
)

type healthData struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /api/health. When a database backs the API it is
// pinged and an unreachable database reports 503.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			slog.Warn("health check: database ping failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
	}

	writeData(w, http.StatusOK, healthData{
		Status:    "ok",
		Timestamp: model.FormatTimestamp(h.now()),
	})
}
