package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemory_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := m.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "1" {
		t.Errorf("expected 1, got %s", got)
	}

	if err := m.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := m.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after remove, got %v", err)
	}
	// removing twice is fine
	if err := m.Remove(ctx, "a"); err != nil {
		t.Errorf("second Remove failed: %v", err)
	}
}

func TestMemory_KeysByPrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_ = m.Set(ctx, "weather_cache_oslo", "{}")
	_ = m.Set(ctx, "weather_cache_lima", "{}")
	_ = m.Set(ctx, "weather_app_theme", "dark")

	keys, err := m.Keys(ctx, "weather_cache_")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "weather_cache_lima" || keys[1] != "weather_cache_oslo" {
		t.Errorf("unexpected keys: %v", keys)
	}
}
