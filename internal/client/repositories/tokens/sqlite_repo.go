package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/common"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/dbx"
)

// SQLiteRepository stores the pair as two rows of the credentials
// key-value table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (Pair, error) {
	access, err := r.get(ctx, r.db, common.AccessTokenKey)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := r.get(ctx, r.db, common.RefreshTokenKey)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, pair Pair) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, common.AccessTokenKey, pair.Access); err != nil {
			return err
		}
		return set(ctx, tx, common.RefreshTokenKey, pair.Refresh)
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key IN (?, ?)`,
			common.AccessTokenKey, common.RefreshTokenKey)
		if err != nil {
			return fmt.Errorf("clear credentials: %w", err)
		}
		return nil
	})
}
