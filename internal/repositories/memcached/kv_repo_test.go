package memcached

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"weatherpro/internal/kv"
)

// Needs a running memcached; set MEMCACHED_ADDR (e.g. localhost:11211).
func TestKVRepo_RoundTrip(t *testing.T) {
	addr := os.Getenv("MEMCACHED_ADDR")
	if addr == "" {
		t.Skip("MEMCACHED_ADDR not set")
	}
	ctx := context.Background()
	r := New(addr)
	defer r.Close()

	if err := r.Set(ctx, "weather_app_test", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := r.Get(ctx, "weather_app_test")
	if err != nil || got != "v1" {
		t.Fatalf("expected v1, got %q (%v)", got, err)
	}
	if err := r.Remove(ctx, "weather_app_test"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := r.Remove(ctx, "weather_app_test"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
	if _, err := r.Get(ctx, "weather_app_test"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// multi-word and non-ASCII city keys
	for _, key := range []string{"weather_cache_new york", "weather_cache_são paulo"} {
		if err := r.Set(ctx, key, "v2"); err != nil {
			t.Fatalf("set %q: %v", key, err)
		}
		got, err := r.Get(ctx, key)
		if err != nil || got != "v2" {
			t.Fatalf("%q: expected v2, got %q (%v)", key, got, err)
		}
		if err := r.Remove(ctx, key); err != nil {
			t.Fatalf("remove %q: %v", key, err)
		}
	}
}

// legal mirrors the memcached protocol rule: at most 250 bytes, no
// whitespace or control characters.
func legal(key string) bool {
	if len(key) == 0 || len(key) > 250 {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] <= ' ' || key[i] == 0x7f {
			return false
		}
	}
	return true
}

func TestItemKey_Legal(t *testing.T) {
	long := "weather_cache_" + strings.Repeat("llanfair ", 40)
	cases := []string{
		"weather_app_recent",
		"weather_cache_new york",
		"weather_cache_san francisco",
		"weather_cache_são paulo",
		"weather_cache_tab\tcity",
		"weather_cache_line\nbreak",
		long,
	}
	seen := map[string]string{}
	for _, k := range cases {
		got := itemKey(k)
		if !legal(got) {
			t.Fatalf("itemKey(%q) = %q is not a legal memcached key", k, got)
		}
		if prev, ok := seen[got]; ok {
			t.Fatalf("itemKey collision: %q and %q both map to %q", prev, k, got)
		}
		seen[got] = k
	}
	if itemKey("weather_app_recent") != "weather_app_recent" {
		t.Fatalf("plain keys should pass through, got %q", itemKey("weather_app_recent"))
	}
	if itemKey(long) != itemKey(long) {
		t.Fatal("hashed key is not stable")
	}
}

func TestKVRepo_KeysUnsupported(t *testing.T) {
	r := New("127.0.0.1:1")
	if _, err := r.Keys(context.Background(), "x"); !errors.Is(err, kv.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
