package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"wallet_api_back/models"
)

type ProfilePostgres struct {
	db *sqlx.DB
}

func NewProfilePostgres(db *sqlx.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

// SaveProfile overwrites all four personal columns, including with NULL,
// and returns what was stored.
func (r *ProfilePostgres) SaveProfile(ctx context.Context, tgID int64, profile models.Profile) (models.Profile, error) {
	var saved models.Profile
	query := `
        UPDATE users
        SET first_name = $1,
            last_name = $2,
            birth_date = $3,
            gender = $4
        WHERE tg_id = $5
        RETURNING first_name, last_name, birth_date, gender
    `
	err := r.db.QueryRowxContext(
		ctx,
		query,
		profile.FirstName,
		profile.LastName,
		profile.BirthDate,
		profile.Gender,
		tgID,
	).StructScan(&saved)
	if err != nil {
		return saved, errors.Wrapf(err, "save profile tg_id=%d", tgID)
	}
	return saved, nil
}

func (r *ProfilePostgres) GetProfile(ctx context.Context, tgID int64) (models.Profile, error) {
	var profile models.Profile
	query := `SELECT first_name, last_name, birth_date, gender FROM users WHERE tg_id = $1`
	if err := r.db.GetContext(ctx, &profile, query, tgID); err != nil {
		return profile, errors.Wrapf(err, "get profile tg_id=%d", tgID)
	}
	return profile, nil
}
