// internal/quickaccess/recent.go
package quickaccess

import (
	"context"

	"weatherpro/internal/kv"
)

// Recents is the most-recent-first search list, case-insensitively unique.
type Recents struct {
	kv  kv.Store
	key string
	max int
}

// Record moves city to the front, dropping any earlier spelling of it and
// anything beyond the cap. The latest casing wins.
func (r *Recents) Record(ctx context.Context, city string) error {
	city, err := normalizeCity(city)
	if err != nil {
		return err
	}
	cur, err := readList(ctx, r.kv, r.key)
	if err != nil {
		return err
	}

	next := make([]string, 0, len(cur)+1)
	next = append(next, city)
	for _, c := range cur {
		if !sameCity(c, city) {
			next = append(next, c)
		}
	}
	if len(next) > r.max {
		next = next[:r.max]
	}
	return saveList(ctx, r.kv, r.key, next)
}

func (r *Recents) List(ctx context.Context) []string {
	return loadList(ctx, r.kv, r.key)
}
