// internal/quickaccess/config.go
package quickaccess

import "time"

// Keys are the storage keys shared with the browser front end.
type Keys struct {
	Theme          string
	RecentSearches string
	Favorites      string
	CachePrefix    string
}

// Config holds the thresholds of the store. It is built once at startup and
// passed by value, so subsystems cannot change each other's limits.
type Config struct {
	ExpiryTime        time.Duration
	MaxRecentSearches int
	MaxFavorites      int
	Keys              Keys
}

func DefaultConfig() Config {
	return Config{
		ExpiryTime:        10 * time.Minute,
		MaxRecentSearches: 5,
		MaxFavorites:      5,
		Keys: Keys{
			Theme:          "weather_app_theme",
			RecentSearches: "weather_app_recent",
			Favorites:      "weather_app_favorites",
			CachePrefix:    "weather_cache_",
		},
	}
}

// withDefaults fills zero values so a partially set Config stays usable.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ExpiryTime <= 0 {
		c.ExpiryTime = d.ExpiryTime
	}
	if c.MaxRecentSearches <= 0 {
		c.MaxRecentSearches = d.MaxRecentSearches
	}
	if c.MaxFavorites <= 0 {
		c.MaxFavorites = d.MaxFavorites
	}
	if c.Keys.Theme == "" {
		c.Keys.Theme = d.Keys.Theme
	}
	if c.Keys.RecentSearches == "" {
		c.Keys.RecentSearches = d.Keys.RecentSearches
	}
	if c.Keys.Favorites == "" {
		c.Keys.Favorites = d.Keys.Favorites
	}
	if c.Keys.CachePrefix == "" {
		c.Keys.CachePrefix = d.Keys.CachePrefix
	}
	return c
}
