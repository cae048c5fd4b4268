package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"wallet_api_back/models"
)

type DepositAddressPostgres struct {
	db *sqlx.DB
}

func NewDepositAddressPostgres(db *sqlx.DB) *DepositAddressPostgres {
	return &DepositAddressPostgres{db: db}
}

func (r *DepositAddressPostgres) GetLatestDepositAddress(ctx context.Context, tgID int64) (models.DepositAddress, error) {
	var address models.DepositAddress
	query := `
        SELECT da.user_id, da.address, da.assigned_at
        FROM deposit_addresses da
        JOIN users u ON da.user_id = u.id
        WHERE u.tg_id = $1
        ORDER BY da.assigned_at DESC
        LIMIT 1
    `
	if err := r.db.GetContext(ctx, &address, query, tgID); err != nil {
		return address, errors.Wrapf(err, "get deposit address tg_id=%d", tgID)
	}
	return address, nil
}
