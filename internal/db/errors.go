package db

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

const pgUniqueViolation = "23505"

// isDuplicate reports whether err is a unique constraint violation from any
// of the supported drivers.
func isDuplicate(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

// translate maps driver errors onto the store's sentinel errors.
func translate(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return errors.Wrap(ErrNotFound, msg)
	case isDuplicate(err):
		return errors.Wrapf(ErrDuplicate, "%s: %v", msg, err)
	default:
		return errors.Wrap(err, msg)
	}
}

func requireAffected(res sql.Result, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, msg)
	}
	if n == 0 {
		return errors.Wrap(ErrNotFound, msg)
	}
	return nil
}
