// pkg/db/mysql.go
// Helper koneksi MySQL (menggunakan database/sql)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

type Options struct {
	DSN     string
	MaxOpen int
	MaxIdle int
	// retry ping agar tahan saat container DB baru up
	PingAttempts int
	PingDelay    time.Duration
}

func NewMySQL(ctx context.Context, o Options) (*sql.DB, error) {
	db, err := sql.Open("mysql", o.DSN)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if o.MaxOpen > 0 {
		db.SetMaxOpenConns(o.MaxOpen)
	}
	if o.MaxIdle > 0 {
		db.SetMaxIdleConns(o.MaxIdle)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	attempts := o.PingAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var pingErr error
	for i := 0; i < attempts; i++ {
		pingErr = db.PingContext(ctx)
		if pingErr == nil {
			return db, nil
		}
		log.Printf("[WARN] ping mysql failed (try %d): %v", i+1, pingErr)
		if i+1 < attempts {
			select {
			case <-ctx.Done():
				db.Close()
				return nil, ctx.Err()
			case <-time.After(o.PingDelay):
			}
		}
	}
	db.Close()
	return nil, fmt.Errorf("mysql not ready after %d tries: %w", attempts, pingErr)
}
