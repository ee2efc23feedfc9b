// internal/quickaccess/theme.go
package quickaccess

import (
	"context"
	"errors"
	"fmt"
	"log"

	"weatherpro/internal/kv"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("quickaccess: theme must be light or dark")

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", ErrInvalidTheme
}

type ThemePref struct {
	kv  kv.Store
	key string
}

// Get returns the saved theme, light when unset or unreadable.
func (p *ThemePref) Get(ctx context.Context) Theme {
	raw, err := p.kv.Get(ctx, p.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Printf("[WARN] theme: read %s: %v", p.key, err)
		}
		return ThemeLight
	}
	t, err := ParseTheme(raw)
	if err != nil {
		return ThemeLight
	}
	return t
}

func (p *ThemePref) Set(ctx context.Context, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := p.kv.Set(ctx, p.key, string(t)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}
