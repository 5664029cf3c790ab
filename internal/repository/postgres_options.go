package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const createOptionsTable = `
	CREATE TABLE IF NOT EXISTS coupon_options (
		option_name  TEXT PRIMARY KEY,
		option_value JSONB NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type PostgresOptions struct {
	db *sql.DB
}

func NewPostgresOptions(db *sql.DB) *PostgresOptions {
	return &PostgresOptions{db: db}
}

// EnsureSchema creates the option table when it does not exist yet.
func (r *PostgresOptions) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createOptionsTable); err != nil {
		return fmt.Errorf("create coupon_options: %w", err)
	}
	return nil
}

func (r *PostgresOptions) GetOptions(ctx context.Context, names ...string) (map[string][]byte, error) {
	query := `
		SELECT option_name, option_value
		FROM coupon_options
		WHERE option_name = ANY($1)
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(names))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42P01" {
			return nil, ErrNoSchema
		}
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]byte, len(names))
	for rows.Next() {
		var name string
		var value []byte
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		out[name] = value
	}
	return out, rows.Err()
}

// SetOptions upserts every slot inside one transaction.
func (r *PostgresOptions) SetOptions(ctx context.Context, values map[string][]byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	upsert := `
		INSERT INTO coupon_options (option_name, option_value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (option_name)
		DO UPDATE SET option_value = EXCLUDED.option_value, updated_at = EXCLUDED.updated_at
	`
	for name, value := range values {
		// jsonb wants text; lib/pq would send []byte as bytea.
		if _, err := tx.ExecContext(ctx, upsert, name, string(value)); err != nil {
			return fmt.Errorf("upsert %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}
	committed = true
	return nil
}

var _ OptionStore = (*PostgresOptions)(nil)
