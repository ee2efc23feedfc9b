// internal/kv/kv.go
// Kontrak key-value store yang dipakai quickaccess (pengganti localStorage)

package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key is absent.
	ErrNotFound = errors.New("kv: key not found")
	// ErrUnsupported is returned by backends that cannot serve an operation.
	ErrUnsupported = errors.New("kv: operation not supported")
)

// Store is a string key-value store. Each call is atomic for a single key only.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key; removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Keys lists keys starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Pinger is implemented by backends that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
