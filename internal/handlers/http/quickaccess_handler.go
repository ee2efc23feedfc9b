// internal/handlers/http/quickaccess_handler.go
// Recent searches, favorites, suggestions & theme untuk UI quick access

package http

import (
	"errors"
	"fmt"
	"net/http"

	"weatherpro/internal/quickaccess"
	"weatherpro/internal/util"
)

type QuickAccessHandler struct {
	Store *quickaccess.Store
}

type toggleReq struct {
	City string `json:"city"`
}

type toggleResp struct {
	City      string                   `json:"city"`
	Result    quickaccess.ToggleResult `json:"result"`
	Favorites []string                 `json:"favorites"`
	Message   string                   `json:"message,omitempty"`
}

type themeBody struct {
	Theme quickaccess.Theme `json:"theme"`
}

// GET /api/recent
func (h *QuickAccessHandler) Recent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"recent": h.Store.Recents.List(r.Context())})
}

// GET /api/favorites
func (h *QuickAccessHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"favorites": h.Store.Favorites.List(r.Context()),
		"max":       h.Store.Favorites.Max(),
	})
}

// POST /api/favorites/toggle {"city":"Tokyo"}
// Capacity penuh -> 409 dengan result "capacity_exceeded", set tidak berubah.
func (h *QuickAccessHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var in toggleReq
	if err := decodeJSON(r, &in); err != nil {
		badRequest(w, r, "bad json")
		return
	}
	res, err := h.Store.Favorites.Toggle(r.Context(), in.City)
	if err != nil {
		if errors.Is(err, quickaccess.ErrEmptyCity) {
			badRequest(w, r, "Please enter a valid city name.")
			return
		}
		writeError(w, r, err, "Unable to save favorites.")
		return
	}

	out := toggleResp{City: in.City, Result: res, Favorites: h.Store.Favorites.List(r.Context())}
	status := http.StatusOK
	if res == quickaccess.CapacityExceeded {
		status = http.StatusConflict
		out.Message = fmt.Sprintf("Maximum %d favorites allowed", h.Store.Favorites.Max())
	}
	writeJSON(w, status, out)
}

// GET /api/suggestions?q=pa
func (h *QuickAccessHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": h.Store.Suggest(r.Context(), r.URL.Query().Get("q"))})
}

// GET /api/theme
func (h *QuickAccessHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeBody{Theme: h.Store.Theme.Get(r.Context())})
}

// PUT /api/theme {"theme":"dark"}
func (h *QuickAccessHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var in themeBody
	if err := decodeJSON(r, &in); err != nil {
		badRequest(w, r, "bad json")
		return
	}
	if err := h.Store.Theme.Set(r.Context(), in.Theme); err != nil {
		if errors.Is(err, quickaccess.ErrInvalidTheme) {
			writeError(w, r, util.BadInput("theme must be light or dark"), "")
			return
		}
		writeError(w, r, err, "Unable to save theme.")
		return
	}
	writeJSON(w, http.StatusOK, in)
}
