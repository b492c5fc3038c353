package expr

import (
	"github.com/stephenafamo/sqlprep"
)

// Comma separated list of arguments
func Arg(vals ...any) sqlprep.Expression {
	return args{vals: vals}
}

// Like Arg, but wraps in parentheses
func ArgGroup(vals ...any) sqlprep.Expression {
	return args{vals: vals, grouped: true}
}

type args struct {
	vals    []any
	grouped bool
}

func (a args) WriteSQL(w sqlprep.SQLWriter, qb sqlprep.QueryBuilder) error {
	prefix, suffix := "", ""
	if a.grouped {
		prefix, suffix = "(", ")"
	}

	values := make([]sqlprep.Value, len(a.vals))
	for k, v := range a.vals {
		val, err := sqlprep.ValueOf(v)
		if err != nil {
			return err
		}
		values[k] = val
	}

	return sqlprep.ExpressSlice(w, qb, values, prefix, ", ", suffix)
}
