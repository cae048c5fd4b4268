package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// SeedPostgres creates fixtures for local development. Registration and address
// provisioning are owned by other services, so the API never calls it.
type SeedPostgres struct {
	db *sqlx.DB
}

func NewSeedPostgres(db *sqlx.DB) *SeedPostgres {
	return &SeedPostgres{db: db}
}

// UpsertUser creates the user or resets its balance when tgID already exists.
// Negative balances are stored as zero.
func (r *SeedPostgres) UpsertUser(ctx context.Context, tgID int64, balance float64) (int64, error) {
	if balance < 0 {
		balance = 0
	}

	var id int64
	query := `
        INSERT INTO users (tg_id, balance_usdt)
        VALUES ($1, $2)
        ON CONFLICT (tg_id) DO UPDATE SET balance_usdt = EXCLUDED.balance_usdt
        RETURNING id
    `
	if err := r.db.QueryRowxContext(ctx, query, tgID, balance).Scan(&id); err != nil {
		return 0, errors.Wrapf(err, "upsert user tg_id=%d", tgID)
	}
	return id, nil
}

func (r *SeedPostgres) AssignDepositAddress(ctx context.Context, userID int64, address string) error {
	query := `INSERT INTO deposit_addresses (user_id, address, assigned_at) VALUES ($1, $2, NOW())`
	if _, err := r.db.ExecContext(ctx, query, userID, address); err != nil {
		return errors.Wrapf(err, "assign deposit address user_id=%d", userID)
	}
	return nil
}
