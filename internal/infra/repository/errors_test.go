package repository

import (
	"errors"
	"fmt"
	"testing"

	repo "catalog/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError_Nil(t *testing.T) {
	assert.NoError(t, translateError(nil))
}

func TestTranslateError_RecordNotFound(t *testing.T) {
	err := translateError(fmt.Errorf("query: %w", gorm.ErrRecordNotFound))
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTranslateError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:   "23505",
		Detail: "Key (title)=(Shirt) already exists.",
	}

	err := translateError(fmt.Errorf("insert: %w", pgErr))

	de, ok := repo.AsDuplicateError(err)
	assert.True(t, ok)
	assert.Equal(t, "Key (title)=(Shirt) already exists.", de.Detail)
	assert.ErrorIs(t, err, pgErr)
}

func TestTranslateError_OtherPgErrorPassesThrough(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", Detail: "null value"}

	err := translateError(pgErr)

	_, ok := repo.AsDuplicateError(err)
	assert.False(t, ok)
	assert.Same(t, pgErr, err)
}

func TestTranslateError_Unknown(t *testing.T) {
	base := errors.New("connection reset")
	assert.Equal(t, base, translateError(base))
}
