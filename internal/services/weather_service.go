// internal/services/weather_service.go
// Controller aplikasi: cek cache dulu, kalau miss fetch ke provider lalu simpan
// (cache + recent searches). Semua state lewat quickaccess.Store, tanpa global.

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"weatherpro/internal/llm"
	"weatherpro/internal/quickaccess"
	"weatherpro/internal/util"
	"weatherpro/pkg/weather"
)

// Provider is the subset of the weather API client the service needs.
type Provider interface {
	Current(ctx context.Context, q weather.Query) (json.RawMessage, error)
	Forecast(ctx context.Context, q weather.Query) (json.RawMessage, error)
	AirQuality(ctx context.Context, lat, lon float64) (json.RawMessage, error)
	SearchCities(ctx context.Context, query string, limit int) (json.RawMessage, error)
}

const (
	SourceCache   = "cache"
	SourceNetwork = "network"
)

type Result struct {
	City       string          `json:"city"`
	Source     string          `json:"source"`
	Current    json.RawMessage `json:"current"`
	Forecast   json.RawMessage `json:"forecast"`
	Daily      []DayCard       `json:"daily"`
	Overview   *Overview       `json:"overview,omitempty"`
	CachedAt   *time.Time      `json:"cached_at,omitempty"`
	Night      bool            `json:"night"`
	Background string          `json:"background"`
	Favorite   bool            `json:"favorite"`
}

// Stats are process-lifetime counters exposed on /metrics.
type Stats struct {
	CacheHits      atomic.Int64
	CacheMisses    atomic.Int64
	CacheCorrupt   atomic.Int64
	ProviderCalls  atomic.Int64
	ProviderErrors atomic.Int64
}

type WeatherService struct {
	store    *quickaccess.Store
	provider Provider
	llm      llm.Client
	clock    util.Clock
	stats    Stats
}

// NewWeatherService wires the service. llmClient may be nil.
func NewWeatherService(store *quickaccess.Store, provider Provider, llmClient llm.Client, clock util.Clock) *WeatherService {
	if clock == nil {
		clock = util.RealClock{}
	}
	return &WeatherService{store: store, provider: provider, llm: llmClient, clock: clock}
}

func (s *WeatherService) Store() *quickaccess.Store { return s.store }
func (s *WeatherService) Stats() *Stats             { return &s.stats }

// ByCity serves from cache when fresh, otherwise fetches current weather and
// forecast, caches them under the requested name and records the search.
func (s *WeatherService) ByCity(ctx context.Context, city string) (*Result, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, util.BadInput(MsgInvalidInput)
	}

	lk := s.store.Cache.Get(ctx, city)
	switch lk.Status {
	case quickaccess.Found:
		s.stats.CacheHits.Add(1)
		at := lk.Entry.CreatedAt().UTC()
		res := s.buildResult(ctx, city, SourceCache, lk.Entry.Current, lk.Entry.Forecast)
		res.CachedAt = &at
		return res, nil
	case quickaccess.Corrupt:
		s.stats.CacheCorrupt.Add(1)
	}
	s.stats.CacheMisses.Add(1)

	current, forecast, err := s.fetch(ctx, weather.ByCity(city))
	if err != nil {
		return nil, err
	}
	if err := s.store.Cache.Put(ctx, city, current, forecast); err != nil {
		log.Printf("[ERROR] cache put %q: %v", city, err)
		return nil, fmt.Errorf("%w: %v", util.Internal(MsgStorageError), err)
	}
	if err := s.store.Recents.Record(ctx, city); err != nil {
		log.Printf("[ERROR] record search %q: %v", city, err)
		return nil, fmt.Errorf("%w: %v", util.Internal(MsgStorageError), err)
	}
	return s.buildResult(ctx, city, SourceNetwork, current, forecast), nil
}

// ByCoords always goes to the provider; results are not cached because the
// cache is keyed by city name.
func (s *WeatherService) ByCoords(ctx context.Context, lat, lon float64) (*Result, error) {
	if !validCoords(lat, lon) {
		return nil, util.BadInput("Invalid coordinates.")
	}
	current, forecast, err := s.fetch(ctx, weather.ByCoords(lat, lon))
	if err != nil {
		return nil, err
	}
	return s.buildResult(ctx, "", SourceNetwork, current, forecast), nil
}

// AirQuality returns nil data (not an error) when the provider fails.
func (s *WeatherService) AirQuality(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	if !validCoords(lat, lon) {
		return nil, util.BadInput("Invalid coordinates.")
	}
	s.stats.ProviderCalls.Add(1)
	raw, err := s.provider.AirQuality(ctx, lat, lon)
	if err != nil {
		s.stats.ProviderErrors.Add(1)
		log.Printf("[WARN] air quality %.4f,%.4f: %v", lat, lon, err)
		return nil, nil
	}
	return raw, nil
}

// SearchCities returns an empty list when the geocoder fails.
func (s *WeatherService) SearchCities(ctx context.Context, query string) json.RawMessage {
	if strings.TrimSpace(query) == "" {
		return json.RawMessage("[]")
	}
	s.stats.ProviderCalls.Add(1)
	raw, err := s.provider.SearchCities(ctx, query, 5)
	if err != nil {
		s.stats.ProviderErrors.Add(1)
		log.Printf("[WARN] search cities %q: %v", query, err)
		return json.RawMessage("[]")
	}
	return raw
}

// Briefing narrates the weather for city with the LLM.
func (s *WeatherService) Briefing(ctx context.Context, city string) (string, error) {
	if s.llm == nil {
		return "", util.Unavailable(MsgNoBriefing)
	}
	res, err := s.ByCity(ctx, city)
	if err != nil {
		return "", err
	}
	sum, err := weather.Summarize(res.Current)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.Upstream(MsgAPIError), err)
	}
	text, err := llm.Brief(ctx, s.llm, sum, res.Forecast)
	if err != nil {
		log.Printf("[WARN] briefing %q: %v", city, err)
		return "", fmt.Errorf("%w: %v", util.Upstream("Briefing is unavailable right now."), err)
	}
	return text, nil
}

// WarmFavorites refreshes cache records of favorites that are missing or
// expired. It does not touch the recent-search list.
func (s *WeatherService) WarmFavorites(ctx context.Context) (int, error) {
	var (
		warmed int
		errs   []error
	)
	for _, city := range s.store.Favorites.List(ctx) {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if s.store.Cache.Get(ctx, city).Hit() {
			continue
		}
		current, forecast, err := s.fetch(ctx, weather.ByCity(city))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", city, err))
			continue
		}
		if err := s.store.Cache.Put(ctx, city, current, forecast); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", city, err))
			continue
		}
		warmed++
	}
	return warmed, errors.Join(errs...)
}

func (s *WeatherService) fetch(ctx context.Context, q weather.Query) (json.RawMessage, json.RawMessage, error) {
	s.stats.ProviderCalls.Add(1)
	current, err := s.provider.Current(ctx, q)
	if err != nil {
		s.stats.ProviderErrors.Add(1)
		return nil, nil, providerError(err)
	}
	s.stats.ProviderCalls.Add(1)
	forecast, err := s.provider.Forecast(ctx, q)
	if err != nil {
		s.stats.ProviderErrors.Add(1)
		return nil, nil, providerError(err)
	}
	return current, forecast, nil
}

func (s *WeatherService) buildResult(ctx context.Context, city, source string, current, forecast json.RawMessage) *Result {
	res := &Result{
		City:       city,
		Source:     source,
		Current:    current,
		Forecast:   forecast,
		Daily:      []DayCard{},
		Background: DefaultBackground,
	}
	if sum, err := weather.Summarize(current); err == nil {
		if sum.Name != "" {
			res.City = sum.Name
		}
		res.Night = IsNight(sum.Sunset, s.clock.Now())
		res.Background = Background(sum.Condition, res.Night)
	} else {
		log.Printf("[WARN] summarize current for %q: %v", city, err)
	}
	if cards, err := DailyCards(forecast); err == nil {
		res.Daily = cards
	}
	if ov, err := ForecastOverview(forecast); err == nil {
		res.Overview = &ov
	}
	if res.City != "" {
		res.Favorite = s.store.Favorites.Contains(ctx, res.City)
	}
	return res
}

func providerError(err error) error {
	switch {
	case errors.Is(err, weather.ErrCityNotFound):
		return fmt.Errorf("%w: %v", util.NotFound(MsgCityNotFound), err)
	case errors.Is(err, weather.ErrRateLimited):
		return fmt.Errorf("%w: %v", util.RateLimited(MsgRateLimit), err)
	case errors.Is(err, weather.ErrNoQuery):
		return fmt.Errorf("%w: %v", util.BadInput(MsgInvalidInput), err)
	}
	var se *weather.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %v", util.Upstream(MsgAPIError), err)
	}
	return fmt.Errorf("%w: %v", util.Upstream(MsgNetworkError), err)
}

func validCoords(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
