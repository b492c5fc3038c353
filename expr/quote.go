package expr

import (
	"github.com/stephenafamo/sqlprep"
)

// Quote writes the names as a quoted and dot-joined identifier,
// something like "users"."id"
func Quote(ss ...string) sqlprep.Expression {
	return quoted(ss)
}

type quoted []string

func (q quoted) WriteSQL(w sqlprep.SQLWriter, qb sqlprep.QueryBuilder) error {
	for k, s := range q {
		if k != 0 {
			if _, err := w.WriteString("."); err != nil {
				return err
			}
		}

		if _, err := w.WriteString(quoteIdentifier(qb, s)); err != nil {
			return err
		}
	}

	return nil
}

func quoteIdentifier(qb sqlprep.QueryBuilder, s string) string {
	if q, ok := qb.(sqlprep.IdentifierQuoter); ok {
		return q.QuoteIdentifier(s)
	}

	return `"` + s + `"`
}

// S writes s as a string literal of the dialect, never as a bound value
func S(s string) sqlprep.Expression {
	return rawString(s)
}

type rawString string

func (s rawString) WriteSQL(w sqlprep.SQLWriter, qb sqlprep.QueryBuilder) error {
	_, err := w.WriteString(qb.ValueToString(sqlprep.String(string(s))))
	return err
}
