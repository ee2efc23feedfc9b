// internal/quickaccess/favorites.go
package quickaccess

import (
	"context"
	"fmt"

	"weatherpro/internal/kv"
)

type ToggleResult int

const (
	Added ToggleResult = iota + 1
	Removed
	CapacityExceeded
)

func (r ToggleResult) String() string {
	switch r {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case CapacityExceeded:
		return "capacity_exceeded"
	default:
		return fmt.Sprintf("ToggleResult(%d)", int(r))
	}
}

func (r ToggleResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Favorites is a bounded set of cities kept in insertion order.
type Favorites struct {
	kv  kv.Store
	key string
	max int
}

func (f *Favorites) Max() int { return f.max }

// Toggle removes city if present, otherwise adds it unless the set is full.
// CapacityExceeded leaves the stored set untouched.
func (f *Favorites) Toggle(ctx context.Context, city string) (ToggleResult, error) {
	city, err := normalizeCity(city)
	if err != nil {
		return 0, err
	}
	cur, err := readList(ctx, f.kv, f.key)
	if err != nil {
		return 0, err
	}

	idx := -1
	for i, c := range cur {
		if sameCity(c, city) {
			idx = i
			break
		}
	}

	if idx >= 0 {
		next := append(cur[:idx:idx], cur[idx+1:]...)
		if err := saveList(ctx, f.kv, f.key, next); err != nil {
			return 0, err
		}
		return Removed, nil
	}
	if len(cur) >= f.max {
		return CapacityExceeded, nil
	}
	if err := saveList(ctx, f.kv, f.key, append(cur, city)); err != nil {
		return 0, err
	}
	return Added, nil
}

func (f *Favorites) List(ctx context.Context) []string {
	return loadList(ctx, f.kv, f.key)
}

func (f *Favorites) Contains(ctx context.Context, city string) bool {
	for _, c := range f.List(ctx) {
		if sameCity(c, city) {
			return true
		}
	}
	return false
}
