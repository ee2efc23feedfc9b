// internal/handlers/http/weather_handler.go
// Endpoint cuaca: by city (pakai cache), by koordinat, kualitas udara, geocoding, briefing

package http

import (
	"net/http"
	"strconv"
	"strings"

	"weatherpro/internal/services"
)

type WeatherHandler struct {
	Svc *services.WeatherService
}

// GET /api/weather?city=Paris
func (h *WeatherHandler) ByCity(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.ByCity(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeError(w, r, err, services.MsgAPIError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /api/weather/coords?lat=..&lon=..
func (h *WeatherHandler) ByCoords(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseCoords(r)
	if !ok {
		badRequest(w, r, "lat and lon are required numbers")
		return
	}
	res, err := h.Svc.ByCoords(r.Context(), lat, lon)
	if err != nil {
		writeError(w, r, err, services.MsgAPIError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /api/weather/air?lat=..&lon=.. ; data null kalau provider gagal
func (h *WeatherHandler) AirQuality(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseCoords(r)
	if !ok {
		badRequest(w, r, "lat and lon are required numbers")
		return
	}
	raw, err := h.Svc.AirQuality(r.Context(), lat, lon)
	if err != nil {
		writeError(w, r, err, services.MsgAPIError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if raw == nil {
		w.Write([]byte("null"))
		return
	}
	w.Write(raw)
}

// GET /api/cities?q=Par
func (h *WeatherHandler) SearchCities(w http.ResponseWriter, r *http.Request) {
	raw := h.Svc.SearchCities(r.Context(), r.URL.Query().Get("q"))
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

// GET /api/weather/briefing?city=Paris
func (h *WeatherHandler) Briefing(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	text, err := h.Svc.Briefing(r.Context(), city)
	if err != nil {
		writeError(w, r, err, services.MsgAPIError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"city": city, "briefing": text})
}

func parseCoords(r *http.Request) (float64, float64, bool) {
	q := r.URL.Query()
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(q.Get("lat")), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(q.Get("lon")), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
