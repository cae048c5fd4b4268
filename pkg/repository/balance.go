package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type BalancePostgres struct {
	db *sqlx.DB
}

func NewBalancePostgres(db *sqlx.DB) *BalancePostgres {
	return &BalancePostgres{db: db}
}

// GetBalance returns sql.ErrNoRows as the cause when tgID is unknown.
func (r *BalancePostgres) GetBalance(ctx context.Context, tgID int64) (float64, error) {
	var balance float64
	query := `SELECT balance_usdt FROM users WHERE tg_id = $1`
	if err := r.db.GetContext(ctx, &balance, query, tgID); err != nil {
		return 0, errors.Wrapf(err, "get balance tg_id=%d", tgID)
	}
	return balance, nil
}

// ChangeBalance applies delta and clamps the result at zero in the same statement,
// so concurrent writers never observe or store a negative balance.
func (r *BalancePostgres) ChangeBalance(ctx context.Context, tgID int64, delta float64) (float64, error) {
	var balance float64
	query := `
        UPDATE users
        SET balance_usdt = GREATEST(0, balance_usdt + $1)
        WHERE tg_id = $2
        RETURNING balance_usdt
    `
	if err := r.db.QueryRowxContext(ctx, query, delta, tgID).Scan(&balance); err != nil {
		return 0, errors.Wrapf(err, "change balance tg_id=%d", tgID)
	}
	return balance, nil
}
