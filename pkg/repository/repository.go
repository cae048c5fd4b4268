package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"wallet_api_back/models"
)

type Balance interface {
	GetBalance(ctx context.Context, tgID int64) (float64, error)
	ChangeBalance(ctx context.Context, tgID int64, delta float64) (float64, error)
}

type DepositAddress interface {
	GetLatestDepositAddress(ctx context.Context, tgID int64) (models.DepositAddress, error)
}

type Profile interface {
	SaveProfile(ctx context.Context, tgID int64, profile models.Profile) (models.Profile, error)
	GetProfile(ctx context.Context, tgID int64) (models.Profile, error)
}

type Health interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	Balance
	DepositAddress
	Profile
	Health
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Balance:        NewBalancePostgres(db),
		DepositAddress: NewDepositAddressPostgres(db),
		Profile:        NewProfilePostgres(db),
		Health:         NewHealthPostgres(db),
	}
}
