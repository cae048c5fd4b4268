package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type HealthPostgres struct {
	db *sqlx.DB
}

func NewHealthPostgres(db *sqlx.DB) *HealthPostgres {
	return &HealthPostgres{db: db}
}

func (r *HealthPostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
