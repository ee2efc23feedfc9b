// Package quickaccess is the weather cache and quick-access store: cached
// weather payloads with a TTL, the recent-search list, the favorites set and
// the theme preference, all kept as independent records in a kv.Store.
//
// Every operation is a plain read-modify-write of one record. There is no
// isolation against another writer touching the same key; the last write wins.
package quickaccess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weatherpro/internal/kv"
	"weatherpro/internal/util"
)

// ErrEmptyCity is returned when a city name is blank after trimming.
var ErrEmptyCity = errors.New("quickaccess: city name is empty")

// Store bundles the quick-access subsystems over one kv.Store.
type Store struct {
	Cache     *Cache
	Recents   *Recents
	Favorites *Favorites
	Theme     *ThemePref

	cfg Config
	kv  kv.Store
}

func New(cfg Config, store kv.Store, clock util.Clock) *Store {
	cfg = cfg.withDefaults()
	if clock == nil {
		clock = util.RealClock{}
	}
	return &Store{
		Cache:     &Cache{kv: store, clock: clock, prefix: cfg.Keys.CachePrefix, ttl: cfg.ExpiryTime},
		Recents:   &Recents{kv: store, key: cfg.Keys.RecentSearches, max: cfg.MaxRecentSearches},
		Favorites: &Favorites{kv: store, key: cfg.Keys.Favorites, max: cfg.MaxFavorites},
		Theme:     &ThemePref{kv: store, key: cfg.Keys.Theme},
		cfg:       cfg,
		kv:        store,
	}
}

func (s *Store) Config() Config { return s.cfg }

// KV exposes the backing store for health checks.
func (s *Store) KV() kv.Store { return s.kv }

func normalizeCity(city string) (string, error) {
	c := strings.TrimSpace(city)
	if c == "" {
		return "", ErrEmptyCity
	}
	return c, nil
}

func sameCity(a, b string) bool {
	// Casers keep state, so one per call.
	f := cases.Fold()
	return f.String(a) == f.String(b)
}

func lowerCity(city string) string {
	return cases.Lower(language.Und).String(city)
}

// readList reads a JSON string array. Absent or corrupt data reads as empty;
// any other backend error is returned so callers do not overwrite a list
// they could not see.
func readList(ctx context.Context, store kv.Store, key string) ([]string, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("[WARN] quickaccess: corrupt list %s, treating as empty: %v", key, err)
		return []string{}, nil
	}
	if list == nil {
		return []string{}, nil
	}
	return list, nil
}

// loadList is readList for display paths: backend errors read as empty.
func loadList(ctx context.Context, store kv.Store, key string) []string {
	list, err := readList(ctx, store, key)
	if err != nil {
		log.Printf("[WARN] quickaccess: %v", err)
		return []string{}
	}
	return list
}

func saveList(ctx context.Context, store kv.Store, key string, list []string) error {
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
