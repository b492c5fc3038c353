package main

import (
	"fmt"

	"github.com/stephenafamo/sqlprep"
	mysql "github.com/stephenafamo/sqlprep/dialect/mysql/dialect"
	psql "github.com/stephenafamo/sqlprep/dialect/psql/dialect"
	sqlite "github.com/stephenafamo/sqlprep/dialect/sqlite/dialect"
	"github.com/stephenafamo/sqlprep/internal/config"
)

func queryBuilder(name string) (sqlprep.QueryBuilder, error) {
	switch name {
	case "psql":
		return psql.Dialect, nil
	case "mysql":
		return mysql.Dialect, nil
	case "sqlite":
		return sqlite.Dialect, nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownDialect, name)
	}
}
