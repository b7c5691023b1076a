package handler

import "net/http"

// Router bundles the handlers that make up the HTTP surface.
type Router struct {
	Base    *Handler
	Contact *ContactHandler
	Catalog *CatalogHandler
	Wix     *WixHandler

	// Site serves every path outside /api/. Optional.
	Site http.Handler

	// ContactLimiter throttles POST /api/contact per client IP. Optional.
	ContactLimiter *RateLimiter
}

// Handler returns the fully wrapped route table.
func (rt Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", rt.Base.Health)
	mux.HandleFunc("GET /api/services", rt.Catalog.Services)
	mux.HandleFunc("GET /api/services/{id}", rt.Catalog.Service)
	mux.HandleFunc("GET /api/about", rt.Catalog.About)
	mux.HandleFunc("GET /api/contacts", rt.Contact.List)
	mux.HandleFunc("GET /api/wix/status", rt.Wix.Status)
	mux.HandleFunc("GET /api/wix/example", rt.Wix.Example)

	var submit http.Handler = http.HandlerFunc(rt.Contact.Submit)
	if rt.ContactLimiter != nil {
		submit = rt.ContactLimiter.Middleware(submit)
	}
	mux.Handle("POST /api/contact", submit)

	mux.HandleFunc("/api/", APINotFound)
	if rt.Site != nil {
		mux.Handle("/", rt.Site)
	}

	return RequestLogger(Recover(SecurityHeaders(rt.Base.CORS(mux))))
}

// APINotFound answers every unmatched /api/ path.
func APINotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "API endpoint not found")
}
