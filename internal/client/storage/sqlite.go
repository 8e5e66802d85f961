// Package storage is the client's keychain analog: a sqlite-backed
// key-value store whose values are sealed with a key derived from a
// per-device secret. The session store mirrors credentials into it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/forkedapp/forked/internal/dbx"
)

// Repository is a raw key-value store. Get returns (nil, nil) for an absent
// key. Apply performs a batch of writes and deletes as a single atomic unit.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Apply(ctx context.Context, set map[string][]byte, del []string) error
	Clear(ctx context.Context) error
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credentials[%s]: %w", key, err)
	}
	return nil
}

// Apply writes and deletes a batch of keys in one transaction, so a failure
// mid-batch leaves the table exactly as it was. When the repository is
// already bound to a transaction, the batch runs on it directly.
func (r *SQLiteRepository) Apply(ctx context.Context, set map[string][]byte, del []string) error {
	db, ok := r.db.(*sql.DB)
	if !ok {
		return r.apply(ctx, r, set, del)
	}
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return r.apply(ctx, &SQLiteRepository{db: tx}, set, del)
	})
}

func (r *SQLiteRepository) apply(ctx context.Context, repo *SQLiteRepository, set map[string][]byte, del []string) error {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := repo.Set(ctx, key, set[key]); err != nil {
			return err
		}
	}
	for _, key := range del {
		if err := repo.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
