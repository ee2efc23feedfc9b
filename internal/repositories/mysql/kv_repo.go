// internal/repositories/mysql/kv_repo.go
// Repo key-value di MySQL: satu baris per key (recent, favorites, cache per kota)

package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"weatherpro/internal/kv"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv_store (
	k          VARCHAR(191) COLLATE utf8mb4_bin NOT NULL PRIMARY KEY,
	v          MEDIUMTEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

type KVRepo struct {
	DB *sql.DB
}

// Migrate creates the kv_store table when missing.
func (r *KVRepo) Migrate(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, kvSchema); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

func (r *KVRepo) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := r.DB.QueryRowContext(ctx, `SELECT v FROM kv_store WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select kv %q: %w", key, err)
	}
	return v, nil
}

func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO kv_store (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)`, key, value)
	if err != nil {
		return fmt.Errorf("upsert kv %q: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Remove(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE k = ?`, key); err != nil {
		return fmt.Errorf("delete kv %q: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT k FROM kv_store WHERE k LIKE ? ORDER BY k`, likePrefix(prefix))
	if err != nil {
		return nil, fmt.Errorf("query kv keys: %w", err)
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan kv key: %w", err)
		}
		list = append(list, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}

func (r *KVRepo) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func (r *KVRepo) Close() error {
	return r.DB.Close()
}

var _ kv.Store = (*KVRepo)(nil)
