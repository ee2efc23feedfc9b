// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	hh "weatherpro/internal/handlers/http"
	"weatherpro/internal/middleware"
	"weatherpro/internal/services"
)

type RouteDeps struct {
	Service *services.WeatherService
	Admin   hh.AdminCredentials
	APIKey  string
}

// Wrap applies the middleware every request goes through, matched or not.
func Wrap(h http.Handler) http.Handler {
	return middleware.RequestID(middleware.AccessLog(middleware.CORS(h)))
}

// RegisterRoutes menambahkan semua route HTTP.
func RegisterRoutes(r *mux.Router, deps RouteDeps) {
	store := deps.Service.Store()
	wh := &hh.WeatherHandler{Svc: deps.Service}
	qh := &hh.QuickAccessHandler{Store: store}
	ready := hh.ReadyHandler(store.KV())
	metrics := hh.MetricsHandler(deps.Service.Stats())

	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", ready).Methods(http.MethodGet)
	r.HandleFunc("/metrics", metrics).Methods(http.MethodGet)
	r.HandleFunc("/login", hh.LoginHandler(deps.Admin)).Methods(http.MethodPost)
	r.HandleFunc("/login", hh.PreflightHandler).Methods(http.MethodOptions)

	// --- /api prefix (supaya FE bisa pakai /api/...) ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.APIKey(deps.APIKey))
	api.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/readyz", ready).Methods(http.MethodGet)

	// Weather lookup
	api.HandleFunc("/weather", wh.ByCity).Methods(http.MethodGet)
	api.HandleFunc("/weather/coords", wh.ByCoords).Methods(http.MethodGet)
	api.HandleFunc("/weather/air", wh.AirQuality).Methods(http.MethodGet)
	api.HandleFunc("/weather/briefing", wh.Briefing).Methods(http.MethodGet)
	api.HandleFunc("/cities", wh.SearchCities).Methods(http.MethodGet)

	// Quick access
	api.HandleFunc("/recent", qh.Recent).Methods(http.MethodGet)
	api.HandleFunc("/favorites", qh.Favorites).Methods(http.MethodGet)
	api.HandleFunc("/favorites/toggle", qh.ToggleFavorite).Methods(http.MethodPost)
	api.HandleFunc("/suggestions", qh.Suggestions).Methods(http.MethodGet)
	api.HandleFunc("/theme", qh.GetTheme).Methods(http.MethodGet)
	api.HandleFunc("/theme", qh.SetTheme).Methods(http.MethodPut)

	// Preflight catch-all
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)

	// Admin (JWT protected), dilayani chi
	r.PathPrefix("/admin").Handler(AdminRouter(deps))
}
