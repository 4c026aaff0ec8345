// Package repository implements the storage ports with hand-written SQL on
// pgx. Constraint violations are translated into RepositoryError kinds so the
// usecase layer never inspects postgres error codes.
package repository

import (
	"errors"

	"parklot/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
	pgErrCodeForeignKeyViolated = "23503"
)

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgErrCodeForeignKeyViolated:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}

func wrapReadErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
