package service

import (
	"database/sql"

	"github.com/pkg/errors"
)

var (
	ErrUserNotFound           = errors.New("User not found")
	ErrDepositAddressNotFound = errors.New("Deposit address not found")
	ErrInvalidDateFormat      = errors.New("Invalid date format, expected YYYY-MM-DD")
)

// notFound replaces a missing-row error with target and passes anything else through.
func notFound(err error, target error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return target
	}
	return err
}
