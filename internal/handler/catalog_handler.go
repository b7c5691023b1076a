package handler

import (
	"errors"
	"net/http"

	"github.com/VETechnologiesCo/VPCO/internal/repository"
	"github.com/VETechnologiesCo/VPCO/internal/service"
)

const msgServiceNotFound = "Service not found"

// CatalogHandler serves the service catalogue and the company profile.
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Services handles GET /api/services.
func (h *CatalogHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.svc.Services(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, services)
}

// Service handles GET /api/services/{id}. Ids are read the way JavaScript's
// parseInt does, so "2abc" finds service 2 and "abc" finds nothing.
func (h *CatalogHandler) Service(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLeadingInt(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, msgServiceNotFound)
		return
	}

	s, err := h.svc.Service(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgServiceNotFound)
		return
	}
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, s)
}

// About handles GET /api/about.
func (h *CatalogHandler) About(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.svc.About(r.Context()))
}

// parseLeadingInt parses an optional sign followed by decimal digits after
// leading white space, ignoring whatever follows the digits.
func parseLeadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f' || s[i] == '\v') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n > (1<<31)/10 {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
