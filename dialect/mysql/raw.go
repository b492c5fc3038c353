package mysql

import (
	"github.com/stephenafamo/sqlprep"
	"github.com/stephenafamo/sqlprep/dialect/mysql/dialect"
	"github.com/stephenafamo/sqlprep/expr"
)

// Inject returns query with every ? placeholder replaced by the MySQL literal of its argument
func Inject(query string, args ...any) (string, error) {
	return sqlprep.InjectArgs(query, args, dialect.Dialect)
}

func RawQuery(q string, args ...any) expr.Clause {
	return expr.RawQuery(q, args...)
}

// Build returns the query and its arguments ready for a database/sql driver
func Build(e sqlprep.Expression) (string, []any, error) {
	sql, values, err := sqlprep.Build(e, dialect.Dialect)
	if err != nil {
		return "", nil, err
	}

	return sql, values.Args(), nil
}

func BuildInline(e sqlprep.Expression) (string, error) {
	return sqlprep.BuildInline(e, dialect.Dialect)
}
