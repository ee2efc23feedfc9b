// internal/handlers/http/admin_handler.go
package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"weatherpro/internal/kv"
	"weatherpro/internal/quickaccess"
	"weatherpro/internal/util"
)

type AdminHandler struct {
	Store *quickaccess.Store
}

// GET /admin/cache: daftar kota yang punya record cache (termasuk yang expired)
func (h *AdminHandler) ListCache(w http.ResponseWriter, r *http.Request) {
	cities, err := h.Store.Cache.Cities(r.Context())
	if errors.Is(err, kv.ErrUnsupported) {
		writeError(w, r, util.Unavailable("store backend cannot list keys"), "")
		return
	}
	if err != nil {
		writeError(w, r, err, "Unable to list cache.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cities":      cities,
		"ttl_seconds": int(h.Store.Cache.TTL().Seconds()),
	})
}

// DELETE /admin/cache/{city}
func (h *AdminHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	if err := h.Store.Cache.Invalidate(r.Context(), city); err != nil {
		if errors.Is(err, quickaccess.ErrEmptyCity) {
			badRequest(w, r, "city required")
			return
		}
		writeError(w, r, err, "Unable to invalidate cache.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
