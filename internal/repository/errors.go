package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when an insert or update violates a unique
// index (mobile number, email, one-profile-per-worker).
var ErrDuplicateKey = errors.New("duplicate key")

// translateError normalizes driver-specific unique-violation errors. Postgres
// reports SQLSTATE 23505 through pgconn; the sqlite driver is translated by
// gorm itself.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateKey
	}
	return err
}
