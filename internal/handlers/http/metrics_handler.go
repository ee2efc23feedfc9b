// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus format sederhana

package http

import (
	"fmt"
	"net/http"

	"weatherpro/internal/services"
)

func MetricsHandler(stats *services.Stats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")
		counter(w, "weather_cache_hits_total", "Lookups served from the local cache.", stats.CacheHits.Load())
		counter(w, "weather_cache_misses_total", "Lookups that went to the provider.", stats.CacheMisses.Load())
		counter(w, "weather_cache_corrupt_total", "Cache records that failed to decode.", stats.CacheCorrupt.Load())
		counter(w, "weather_provider_calls_total", "Requests sent to the weather provider.", stats.ProviderCalls.Load())
		counter(w, "weather_provider_errors_total", "Failed weather provider requests.", stats.ProviderErrors.Load())
	}
}

func counter(w http.ResponseWriter, name, help string, v int64) {
	fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s counter\n%s %d\n", name, help, name, name, v)
}
