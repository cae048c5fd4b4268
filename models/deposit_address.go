package models

import "time"

// DepositAddress is an address assigned to a user for incoming funds.
// A user may hold several; the latest assigned_at wins.
type DepositAddress struct {
	UserID     int64     `db:"user_id" json:"-"`
	Address    string    `db:"address" json:"address"`
	AssignedAt time.Time `db:"assigned_at" json:"-"`
}

type DepositAddressResponse struct {
	Address string `json:"address"`
}
