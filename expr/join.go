package expr

import (
	"github.com/stephenafamo/sqlprep"
)

// Join writes the expressions separated by Sep, a space by default
type Join struct {
	Exprs []any
	Sep   string
}

func (s Join) WriteSQL(w sqlprep.SQLWriter, qb sqlprep.QueryBuilder) error {
	sep := s.Sep
	if sep == "" {
		sep = " "
	}

	return sqlprep.ExpressSlice(w, qb, s.Exprs, "", sep, "")
}
