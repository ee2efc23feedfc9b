// internal/app/store.go
// Pilih backend key-value sesuai STORE_DRIVER

package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"weatherpro/internal/config"
	"weatherpro/internal/kv"
	memcachedrepo "weatherpro/internal/repositories/memcached"
	mysqlrepo "weatherpro/internal/repositories/mysql"
	sqliterepo "weatherpro/internal/repositories/sqlite"
	"weatherpro/pkg/db"
)

// OpenStore opens the kv.Store named by cfg.Store.Driver.
func OpenStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Store.Driver {
	case "memory":
		log.Println("[WARN] using in-memory store; quick-access data is lost on restart")
		return kv.NewMemory(), nil
	case "sqlite":
		return sqliterepo.Open(cfg.Store.SQLitePath)
	case "mysql":
		sqlDB, err := db.NewMySQL(ctx, db.Options{
			DSN:          cfg.MySQL.DSN(),
			MaxOpen:      cfg.MySQL.MaxOpen,
			MaxIdle:      cfg.MySQL.MaxIdle,
			PingAttempts: 20,
			PingDelay:    3 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		repo := &mysqlrepo.KVRepo{DB: sqlDB}
		if err := repo.Migrate(ctx); err != nil {
			sqlDB.Close()
			return nil, err
		}
		return repo, nil
	case "memcached":
		return memcachedrepo.New(cfg.Store.MemcachedAddrs...), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
