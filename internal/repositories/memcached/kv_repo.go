// Package memcached stores quick-access records in memcached.
package memcached

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"

	"github.com/bradfitz/gomemcache/memcache"

	"weatherpro/internal/kv"
)

// KVRepo is a memcached implementation of kv.Store.
// Memcached cannot enumerate keys, so Keys returns kv.ErrUnsupported.
type KVRepo struct {
	client *memcache.Client
}

// New creates a memcached client.
// The serverList should contain memcached server addresses like ["localhost:11211"].
func New(serverList ...string) *KVRepo {
	return &KVRepo{client: memcache.New(serverList...)}
}

// maxKeyLen is memcached's protocol limit.
const maxKeyLen = 250

// itemKey maps a store key onto a legal memcached key (no spaces or control
// characters, at most maxKeyLen bytes). QueryEscape never emits ':', so
// hashed keys cannot collide with escaped ones.
func itemKey(key string) string {
	k := url.QueryEscape(key)
	if len(k) <= maxKeyLen {
		return k
	}
	sum := sha1.Sum([]byte(key))
	return "h:" + hex.EncodeToString(sum[:])
}

func (r *KVRepo) Get(_ context.Context, key string) (string, error) {
	item, err := r.client.Get(itemKey(key))
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			return "", kv.ErrNotFound
		}
		return "", fmt.Errorf("memcache get %q: %w", key, err)
	}
	return string(item.Value), nil
}

// Set stores without expiration; TTL is enforced by the reader.
func (r *KVRepo) Set(_ context.Context, key, value string) error {
	if err := r.client.Set(&memcache.Item{Key: itemKey(key), Value: []byte(value)}); err != nil {
		return fmt.Errorf("memcache set %q: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Remove(_ context.Context, key string) error {
	err := r.client.Delete(itemKey(key))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return fmt.Errorf("memcache delete %q: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Keys(context.Context, string) ([]string, error) {
	return nil, kv.ErrUnsupported
}

func (r *KVRepo) Ping(context.Context) error {
	return r.client.Ping()
}

// Close is a no-op; the client keeps a pool of idle connections per server.
func (r *KVRepo) Close() error {
	return nil
}

var _ kv.Store = (*KVRepo)(nil)
