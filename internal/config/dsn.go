package config

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// DialectFromDSN tells which database a connection string points to
func DialectFromDSN(dsn string) (string, error) {
	switch {
	case dsn == ":memory:",
		strings.HasPrefix(dsn, "file:"),
		strings.HasPrefix(dsn, "sqlite:"),
		strings.HasSuffix(dsn, ".db"),
		strings.HasSuffix(dsn, ".sqlite"),
		strings.HasSuffix(dsn, ".sqlite3"):
		return "sqlite", nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		if _, err := pgconn.ParseConfig(dsn); err != nil {
			return "", fmt.Errorf("parsing postgres dsn: %w", err)
		}
		return "psql", nil

	case strings.HasPrefix(dsn, "mysql://"):
		if _, err := mysql.ParseDSN(strings.TrimPrefix(dsn, "mysql://")); err != nil {
			return "", fmt.Errorf("parsing mysql dsn: %w", err)
		}
		return "mysql", nil
	}

	if _, err := mysql.ParseDSN(dsn); err == nil {
		return "mysql", nil
	}

	// keyword/value form, e.g. "host=localhost dbname=app"
	if _, err := pgconn.ParseConfig(dsn); err == nil {
		return "psql", nil
	}

	return "", fmt.Errorf("%w: cannot tell the database of dsn %q", ErrUnknownDialect, dsn)
}
