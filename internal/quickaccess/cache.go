// internal/quickaccess/cache.go
// Cache cuaca per kota dengan TTL; expired dihapus saat dibaca (lazy)

package quickaccess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"weatherpro/internal/kv"
	"weatherpro/internal/util"
)

// Entry is one cached weather + forecast pair. Payloads are provider JSON
// passed through untouched.
type Entry struct {
	Current   json.RawMessage `json:"current"`
	Forecast  json.RawMessage `json:"forecast"`
	Timestamp int64           `json:"timestamp"` // epoch ms
}

func (e Entry) CreatedAt() time.Time { return time.UnixMilli(e.Timestamp) }

type LookupStatus int

const (
	NotFound LookupStatus = iota
	Found
	Corrupt
)

func (s LookupStatus) String() string {
	switch s {
	case Found:
		return "found"
	case Corrupt:
		return "corrupt"
	default:
		return "not_found"
	}
}

// Lookup is the outcome of Cache.Get. Corrupt is reported separately so the
// caller can log it, but it must be handled like NotFound.
type Lookup struct {
	Status LookupStatus
	Entry  Entry
}

func (l Lookup) Hit() bool { return l.Status == Found }

type Cache struct {
	kv     kv.Store
	clock  util.Clock
	prefix string
	ttl    time.Duration
}

// Key returns the namespaced storage key for city.
func (c *Cache) Key(city string) string {
	return c.prefix + lowerCity(city)
}

func (c *Cache) TTL() time.Duration { return c.ttl }

func (c *Cache) Get(ctx context.Context, city string) Lookup {
	city, err := normalizeCity(city)
	if err != nil {
		return Lookup{Status: NotFound}
	}
	key := c.Key(city)

	raw, err := c.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Printf("[WARN] cache: read %s: %v", key, err)
		}
		return Lookup{Status: NotFound}
	}

	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil || e.Timestamp <= 0 {
		log.Printf("[WARN] cache: corrupt record %s, treating as miss", key)
		return Lookup{Status: Corrupt}
	}

	age := c.clock.Now().Sub(e.CreatedAt())
	if age > c.ttl {
		if err := c.kv.Remove(ctx, key); err != nil {
			log.Printf("[WARN] cache: remove expired %s: %v", key, err)
		}
		return Lookup{Status: NotFound}
	}
	return Lookup{Status: Found, Entry: e}
}

// Put overwrites the record for city with timestamp = now. Storage failures
// are returned to the caller unretried.
func (c *Cache) Put(ctx context.Context, city string, current, forecast json.RawMessage) error {
	city, err := normalizeCity(city)
	if err != nil {
		return err
	}
	e := Entry{
		Current:   current,
		Forecast:  forecast,
		Timestamp: c.clock.Now().UnixMilli(),
	}
	if len(e.Current) == 0 {
		e.Current = json.RawMessage("null")
	}
	if len(e.Forecast) == 0 {
		e.Forecast = json.RawMessage("null")
	}
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	key := c.Key(city)
	if err := c.kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("persist cache %s: %w", key, err)
	}
	return nil
}

// Invalidate removes the record for city regardless of age.
func (c *Cache) Invalidate(ctx context.Context, city string) error {
	city, err := normalizeCity(city)
	if err != nil {
		return err
	}
	if err := c.kv.Remove(ctx, c.Key(city)); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	return nil
}

// Cities lists the lower-cased city keys currently stored (expired included).
func (c *Cache) Cities(ctx context.Context) ([]string, error) {
	keys, err := c.kv.Keys(ctx, c.prefix)
	if err != nil {
		return nil, fmt.Errorf("list cache keys: %w", err)
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k[len(c.prefix):])
	}
	return out, nil
}
