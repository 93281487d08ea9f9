package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	assert.ErrorIs(t, translateError(gorm.ErrDuplicatedKey), ErrDuplicateKey)
	assert.ErrorIs(t, translateError(&pgconn.PgError{Code: "23505"}), ErrDuplicateKey)

	// other constraint violations pass through untouched
	other := &pgconn.PgError{Code: "23503"}
	assert.NotErrorIs(t, translateError(other), ErrDuplicateKey)

	plain := errors.New("boom")
	assert.Equal(t, plain, translateError(plain))
}
