package quickaccess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"weatherpro/internal/kv"
	"weatherpro/internal/util"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *kv.Memory, *util.FakeClock) {
	t.Helper()
	mem := kv.NewMemory()
	clock := util.NewFakeClock(t0)
	return New(DefaultConfig(), mem, clock), mem, clock
}

// failingKV reads from an embedded Memory but refuses every write.
type failingKV struct {
	*kv.Memory
}

var errQuota = errors.New("quota exceeded")

func (failingKV) Set(context.Context, string, string) error { return errQuota }

// unreadableKV fails every Get while broken is set; writes go through.
type unreadableKV struct {
	*kv.Memory
	broken bool
}

var errConnReset = errors.New("connection reset")

func (u *unreadableKV) Get(ctx context.Context, key string) (string, error) {
	if u.broken {
		return "", errConnReset
	}
	return u.Memory.Get(ctx, key)
}

func TestCache_PutThenGetBeforeExpiry(t *testing.T) {
	ctx := context.Background()
	s, _, clock := newTestStore(t)

	cur := json.RawMessage(`{"name":"Paris","main":{"temp":18.2}}`)
	fc := json.RawMessage(`{"list":[{"dt":1}]}`)
	if err := s.Cache.Put(ctx, "Paris", cur, fc); err != nil {
		t.Fatalf("put: %v", err)
	}

	clock.Advance(10 * time.Minute) // exactly at the limit is still fresh
	got := s.Cache.Get(ctx, "PARIS")
	if !got.Hit() {
		t.Fatalf("expected hit, got %s", got.Status)
	}
	if string(got.Entry.Current) != string(cur) || string(got.Entry.Forecast) != string(fc) {
		t.Fatalf("payload mismatch: %s / %s", got.Entry.Current, got.Entry.Forecast)
	}
	if got.Entry.Timestamp != t0.UnixMilli() {
		t.Fatalf("expected timestamp %d, got %d", t0.UnixMilli(), got.Entry.Timestamp)
	}
}

func TestCache_ExpiredIsDeletedOnRead(t *testing.T) {
	ctx := context.Background()
	s, mem, clock := newTestStore(t)

	if err := s.Cache.Put(ctx, "Lima", json.RawMessage(`{}`), json.RawMessage(`{}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	clock.Advance(10*time.Minute + time.Millisecond)

	if got := s.Cache.Get(ctx, "Lima"); got.Status != NotFound {
		t.Fatalf("expected NotFound after expiry, got %s", got.Status)
	}
	if _, err := mem.Get(ctx, "weather_cache_lima"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected record removed, got %v", err)
	}
	if got := s.Cache.Get(ctx, "Lima"); got.Status != NotFound {
		t.Fatalf("expected NotFound on second read, got %s", got.Status)
	}
}

func TestCache_CorruptRecordIsAMiss(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)

	for _, raw := range []string{"{not json", `{"current":{},"forecast":{}}`, `[]`} {
		_ = mem.Set(ctx, "weather_cache_oslo", raw)
		got := s.Cache.Get(ctx, "Oslo")
		if got.Hit() {
			t.Fatalf("%q: expected miss", raw)
		}
		if got.Status != Corrupt {
			t.Fatalf("%q: expected Corrupt, got %s", raw, got.Status)
		}
	}
}

func TestCache_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	s, _, clock := newTestStore(t)

	_ = s.Cache.Put(ctx, "Rome", json.RawMessage(`1`), json.RawMessage(`1`))
	clock.Advance(9 * time.Minute)
	_ = s.Cache.Put(ctx, "rome", json.RawMessage(`2`), json.RawMessage(`2`))
	clock.Advance(9 * time.Minute)

	got := s.Cache.Get(ctx, "Rome")
	if !got.Hit() || string(got.Entry.Current) != "2" {
		t.Fatalf("expected fresh overwrite, got %s %s", got.Status, got.Entry.Current)
	}
}

func TestCache_PutSurfacesWriteFailure(t *testing.T) {
	s := New(DefaultConfig(), failingKV{kv.NewMemory()}, util.NewFakeClock(t0))
	err := s.Cache.Put(context.Background(), "Oslo", json.RawMessage(`{}`), json.RawMessage(`{}`))
	if !errors.Is(err, errQuota) {
		t.Fatalf("expected quota error, got %v", err)
	}
}

func TestCache_EmptyCity(t *testing.T) {
	s, _, _ := newTestStore(t)
	if err := s.Cache.Put(context.Background(), "  ", nil, nil); !errors.Is(err, ErrEmptyCity) {
		t.Fatalf("expected ErrEmptyCity, got %v", err)
	}
	if got := s.Cache.Get(context.Background(), ""); got.Status != NotFound {
		t.Fatalf("expected NotFound, got %s", got.Status)
	}
}

func TestCache_InvalidateAndCities(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	_ = s.Cache.Put(ctx, "Oslo", json.RawMessage(`{}`), json.RawMessage(`{}`))
	_ = s.Cache.Put(ctx, "Lima", json.RawMessage(`{}`), json.RawMessage(`{}`))

	cities, err := s.Cache.Cities(ctx)
	if err != nil {
		t.Fatalf("cities: %v", err)
	}
	if !reflect.DeepEqual(cities, []string{"lima", "oslo"}) {
		t.Fatalf("unexpected cities %v", cities)
	}
	if err := s.Cache.Invalidate(ctx, "OSLO"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if s.Cache.Get(ctx, "Oslo").Hit() {
		t.Fatal("expected miss after invalidate")
	}
}

func TestRecents_CaseInsensitiveDedupLatestCasingWins(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	_ = s.Recents.Record(ctx, "Paris")
	_ = s.Recents.Record(ctx, "paris")

	if got := s.Recents.List(ctx); !reflect.DeepEqual(got, []string{"paris"}) {
		t.Fatalf("expected [paris], got %v", got)
	}
}

func TestRecents_CappedMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	for _, c := range []string{"A", "B", "C", "D", "E", "F"} {
		if err := s.Recents.Record(ctx, c); err != nil {
			t.Fatalf("record %s: %v", c, err)
		}
	}
	want := []string{"F", "E", "D", "C", "B"}
	if got := s.Recents.List(ctx); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecents_RepeatMovesToFront(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	for _, c := range []string{"Oslo", "Lima", "Oslo", "Oslo"} {
		_ = s.Recents.Record(ctx, c)
	}
	if got := s.Recents.List(ctx); !reflect.DeepEqual(got, []string{"Oslo", "Lima"}) {
		t.Fatalf("unexpected list %v", got)
	}
}

func TestRecents_CorruptListReadsEmpty(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)

	if got := s.Recents.List(ctx); len(got) != 0 || got == nil {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
	_ = mem.Set(ctx, "weather_app_recent", `{"oops":true}`)
	if got := s.Recents.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
	// next write replaces the corrupt record
	if err := s.Recents.Record(ctx, "Oslo"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := s.Recents.List(ctx); !reflect.DeepEqual(got, []string{"Oslo"}) {
		t.Fatalf("unexpected list %v", got)
	}
}

func TestRecents_WriteFailure(t *testing.T) {
	s := New(DefaultConfig(), failingKV{kv.NewMemory()}, nil)
	if err := s.Recents.Record(context.Background(), "Oslo"); !errors.Is(err, errQuota) {
		t.Fatalf("expected quota error, got %v", err)
	}
}

func TestRecents_ReadFailureKeepsList(t *testing.T) {
	ctx := context.Background()
	u := &unreadableKV{Memory: kv.NewMemory()}
	s := New(DefaultConfig(), u, nil)
	for _, c := range []string{"Oslo", "Lima"} {
		if err := s.Recents.Record(ctx, c); err != nil {
			t.Fatalf("record %s: %v", c, err)
		}
	}

	u.broken = true
	if err := s.Recents.Record(ctx, "Rome"); !errors.Is(err, errConnReset) {
		t.Fatalf("expected read error, got %v", err)
	}
	if got := s.Recents.List(ctx); len(got) != 0 {
		t.Fatalf("List should read as empty while the backend fails, got %v", got)
	}

	u.broken = false
	want := []string{"Lima", "Oslo"}
	if got := s.Recents.List(ctx); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFavorites_ToggleAddRemove(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	res, err := s.Favorites.Toggle(ctx, "Tokyo")
	if err != nil || res != Added {
		t.Fatalf("expected Added, got %s (%v)", res, err)
	}
	if !s.Favorites.Contains(ctx, "tokyo") {
		t.Fatal("expected Tokyo in favorites")
	}
	res, err = s.Favorites.Toggle(ctx, "TOKYO")
	if err != nil || res != Removed {
		t.Fatalf("expected Removed, got %s (%v)", res, err)
	}
	if got := s.Favorites.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty favorites, got %v", got)
	}
}

func TestFavorites_CapacityLeavesSetUnchanged(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	initial := []string{"Oslo", "Lima", "Rome", "Cairo", "Quito"}
	for _, c := range initial {
		if res, _ := s.Favorites.Toggle(ctx, c); res != Added {
			t.Fatalf("expected Added for %s, got %s", c, res)
		}
	}
	res, err := s.Favorites.Toggle(ctx, "Tokyo")
	if err != nil || res != CapacityExceeded {
		t.Fatalf("expected CapacityExceeded, got %s (%v)", res, err)
	}
	if got := s.Favorites.List(ctx); !reflect.DeepEqual(got, initial) {
		t.Fatalf("expected %v, got %v", initial, got)
	}

	// removing at capacity still works and keeps order
	if res, _ := s.Favorites.Toggle(ctx, "rome"); res != Removed {
		t.Fatalf("expected Removed, got %s", res)
	}
	want := []string{"Oslo", "Lima", "Cairo", "Quito"}
	if got := s.Favorites.List(ctx); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFavorites_CapacityDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	full, _ := json.Marshal([]string{"A", "B", "C", "D", "E"})
	_ = mem.Set(ctx, "weather_app_favorites", string(full))

	s := New(DefaultConfig(), failingKV{mem}, nil)
	res, err := s.Favorites.Toggle(ctx, "F")
	if err != nil {
		t.Fatalf("capacity path must not write, got %v", err)
	}
	if res != CapacityExceeded {
		t.Fatalf("expected CapacityExceeded, got %s", res)
	}
}

func TestFavorites_ReadFailureKeepsSet(t *testing.T) {
	ctx := context.Background()
	u := &unreadableKV{Memory: kv.NewMemory()}
	s := New(DefaultConfig(), u, nil)
	initial := []string{"Oslo", "Lima", "Rome", "Cairo", "Quito"}
	for _, c := range initial {
		if _, err := s.Favorites.Toggle(ctx, c); err != nil {
			t.Fatalf("toggle %s: %v", c, err)
		}
	}

	u.broken = true
	for _, c := range []string{"Tokyo", "Oslo"} {
		if _, err := s.Favorites.Toggle(ctx, c); !errors.Is(err, errConnReset) {
			t.Fatalf("toggle %s: expected read error, got %v", c, err)
		}
	}

	u.broken = false
	if got := s.Favorites.List(ctx); !reflect.DeepEqual(got, initial) {
		t.Fatalf("expected %v, got %v", initial, got)
	}
}

func TestToggleResultJSON(t *testing.T) {
	b, err := json.Marshal(map[string]ToggleResult{"result": CapacityExceeded})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"result":"capacity_exceeded"}` {
		t.Fatalf("unexpected json %s", b)
	}
}

func TestTheme_DefaultAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)

	if got := s.Theme.Get(ctx); got != ThemeLight {
		t.Fatalf("expected light default, got %s", got)
	}
	if err := s.Theme.Set(ctx, ThemeDark); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.Theme.Get(ctx); got != ThemeDark {
		t.Fatalf("expected dark, got %s", got)
	}
	if err := s.Theme.Set(ctx, Theme("sepia")); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
	_ = mem.Set(ctx, "weather_app_theme", "garbage")
	if got := s.Theme.Get(ctx); got != ThemeLight {
		t.Fatalf("expected light fallback, got %s", got)
	}
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	_, _ = s.Favorites.Toggle(ctx, "Paris")
	for _, c := range []string{"paris", "Parma", "Lima", "Sparta"} {
		_ = s.Recents.Record(ctx, c)
	}

	if got := s.Suggest(ctx, "p"); len(got) != 0 {
		t.Fatalf("short query should not suggest, got %v", got)
	}
	got := s.Suggest(ctx, "PAR")
	want := []string{"Paris", "Sparta", "Parma"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSuggest_AtMostFive(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	for i := 0; i < 5; i++ {
		_, _ = s.Favorites.Toggle(ctx, fmt.Sprintf("Town%d", i))
		_ = s.Recents.Record(ctx, fmt.Sprintf("Townsville%d", i))
	}
	if got := s.Suggest(ctx, "town"); len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %v", got)
	}
}

func TestConfigDefaultsFillZeroValues(t *testing.T) {
	s := New(Config{MaxFavorites: 2}, kv.NewMemory(), nil)
	cfg := s.Config()
	if cfg.MaxFavorites != 2 || cfg.MaxRecentSearches != 5 || cfg.ExpiryTime != 10*time.Minute {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Keys.CachePrefix != "weather_cache_" {
		t.Fatalf("unexpected prefix %q", cfg.Keys.CachePrefix)
	}
}
