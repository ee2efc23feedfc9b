// internal/app/app.go
package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"weatherpro/internal/config"
	hh "weatherpro/internal/handlers/http"
	"weatherpro/internal/kv"
	"weatherpro/internal/llm"
	"weatherpro/internal/quickaccess"
	"weatherpro/internal/services"
	"weatherpro/internal/util"
	"weatherpro/pkg/weather"
)

// App menampung router utama + service yang dipakai worker
type App struct {
	Router  *mux.Router
	Service *services.WeatherService
	kv      kv.Store
}

// Deps are the collaborators of the app; tests pass fakes here.
type Deps struct {
	KV       kv.Store
	Provider services.Provider
	LLM      llm.Client // nil = briefing off
	Clock    util.Clock
	Cache    quickaccess.Config
	Admin    hh.AdminCredentials
	APIKey   string
}

// New membuat App dari config: buka store, client weather, LLM (opsional)
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	provider := weather.NewClient(weather.Options{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		GeoURL:  cfg.Weather.GeoURL,
		Units:   cfg.Weather.Units,
		Timeout: cfg.Weather.Timeout,
	})

	var llmClient llm.Client
	if cfg.LLM.APIKey != "" {
		c, err := llm.New(llm.Options{APIKey: cfg.LLM.APIKey, BaseURL: cfg.LLM.APIBase, Model: cfg.LLM.Model})
		if err != nil {
			log.Printf("[WARN] init llm client: %v", err)
		} else {
			llmClient = c
		}
	}

	qc := quickaccess.DefaultConfig()
	qc.ExpiryTime = cfg.Cache.ExpiryTime
	qc.MaxRecentSearches = cfg.Cache.MaxRecentSearches
	qc.MaxFavorites = cfg.Cache.MaxFavorites

	return NewWithDeps(Deps{
		KV:       store,
		Provider: provider,
		LLM:      llmClient,
		Clock:    util.RealClock{},
		Cache:    qc,
		Admin: hh.AdminCredentials{
			User:      cfg.Admin.User,
			PassHash:  cfg.Admin.PassHash,
			JWTSecret: cfg.Admin.JWTSecret,
		},
		APIKey: cfg.APIKey,
	}), nil
}

// NewWithDeps merakit store, service dan semua routes
func NewWithDeps(d Deps) *App {
	store := quickaccess.New(d.Cache, d.KV, d.Clock)
	svc := services.NewWeatherService(store, d.Provider, d.LLM, d.Clock)

	r := mux.NewRouter()
	RegisterRoutes(r, RouteDeps{
		Service: svc,
		Admin:   d.Admin,
		APIKey:  d.APIKey,
	})
	return &App{Router: r, Service: svc, kv: d.KV}
}

// Close menutup koneksi store
func (a *App) Close() error {
	return a.kv.Close()
}

// Handler returns the router wrapped with request-id, access log and CORS.
func (a *App) Handler() http.Handler {
	return Wrap(a.Router)
}
