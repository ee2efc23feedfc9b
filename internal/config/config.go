// internal/config/config.go
// Loader konfigurasi dari environment variables (caarlos0/env)

package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type MySQL struct {
	Host     string `env:"MYSQL_HOST" envDefault:"localhost"`
	Port     string `env:"MYSQL_PORT" envDefault:"3306"`
	DB       string `env:"MYSQL_DB" envDefault:"weatherpro"`
	User     string `env:"MYSQL_USER" envDefault:"root"`
	Password string `env:"MYSQL_PASSWORD"`
	MaxOpen  int    `env:"MYSQL_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdle  int    `env:"MYSQL_MAX_IDLE_CONNS" envDefault:"5"`
	// DSN overrides the fields above when set.
	RawDSN string `env:"DB_DSN"`
}

func (m MySQL) DSN() string {
	if m.RawDSN != "" {
		return m.RawDSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", m.User, m.Password, m.Host, m.Port, m.DB)
}

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"weatherpro"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort string `env:"APP_PORT" envDefault:"8080"`
	APIKey  string `env:"API_KEY"` // optional X-API-Key for /api

	Store struct {
		Driver         string   `env:"STORE_DRIVER" envDefault:"memory"` // memory | sqlite | mysql | memcached
		SQLitePath     string   `env:"SQLITE_PATH" envDefault:"weatherpro.db"`
		MemcachedAddrs []string `env:"MEMCACHED_ADDRS" envSeparator:"," envDefault:"localhost:11211"`
	}

	MySQL MySQL

	Weather struct {
		APIKey  string        `env:"OPENWEATHER_API_KEY"`
		BaseURL string        `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5"`
		GeoURL  string        `env:"OPENWEATHER_GEO_URL" envDefault:"https://api.openweathermap.org/geo/1.0/direct"`
		Units   string        `env:"OPENWEATHER_UNITS" envDefault:"metric"`
		Timeout time.Duration `env:"OPENWEATHER_TIMEOUT" envDefault:"10s"`
	}

	Cache struct {
		ExpiryTime        time.Duration `env:"CACHE_EXPIRY_TIME" envDefault:"10m"`
		MaxRecentSearches int           `env:"CACHE_MAX_RECENT_SEARCHES" envDefault:"5"`
		MaxFavorites      int           `env:"CACHE_MAX_FAVORITES" envDefault:"5"`
	}

	LLM struct {
		APIKey  string `env:"OPENAI_API_KEY"`
		APIBase string `env:"OPENAI_API_BASE"`
		Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	}

	Admin struct {
		User      string `env:"ADMIN_USER"`
		PassHash  string `env:"ADMIN_PASS_HASH"` // bcrypt
		JWTSecret string `env:"ADMIN_JWT_SECRET"`
	}

	Worker struct {
		Interval time.Duration `env:"WORKER_INTERVAL" envDefault:"5m"`
	}
}

func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	if c.Weather.APIKey == "" {
		log.Println("[WARN] OPENWEATHER_API_KEY is not set, weather lookups will fail")
	}
	if c.LLM.APIKey == "" {
		log.Println("[WARN] OPENAI_API_KEY is not set, briefing endpoint disabled")
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "memory", "sqlite", "mysql", "memcached":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Cache.ExpiryTime <= 0 {
		return fmt.Errorf("CACHE_EXPIRY_TIME must be positive")
	}
	if c.Cache.MaxRecentSearches <= 0 || c.Cache.MaxFavorites <= 0 {
		return fmt.Errorf("cache list sizes must be positive")
	}
	return nil
}
