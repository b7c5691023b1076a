package handler

import (
	"net/http"
	"time"

	"github.com/VETechnologiesCo/VPCO/internal/repository"
)

// Handler serves the cross-cutting endpoints (health) and CORS.
type Handler struct {
	db         repository.DB
	corsOrigin string
	now        func() time.Time
}

// New creates a Handler. db may be nil when no database backs the API.
func New(db repository.DB, corsOrigin string) *Handler {
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	return &Handler{db: db, corsOrigin: corsOrigin, now: time.Now}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		if h.corsOrigin != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
