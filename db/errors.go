package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a row looked up by id does not exist.
var ErrNotFound = errors.New("db: record not found")

// ErrorCode returns the SQLSTATE carried by err, or "" when err did not come from postgres.
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term anywhere, with LIKE
// wildcards in term matched literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
