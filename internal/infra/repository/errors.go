package repository

import (
	"errors"

	repo "catalog/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQLのunique_violation
const pgUniqueViolation = "23505"

// gorm/pgxのエラーをrepositoryのエラーへ寄せる
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return repo.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &repo.DuplicateError{Detail: pgErr.Detail, Err: err}
	}
	return err
}
