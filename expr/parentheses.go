package expr

import (
	"github.com/stephenafamo/sqlprep"
)

// Add parentheses around an expression
func P(exp any) sqlprep.Expression {
	return parentheses{inside: exp}
}

type parentheses struct {
	inside any
}

func (p parentheses) WriteSQL(w sqlprep.SQLWriter, qb sqlprep.QueryBuilder) error {
	return sqlprep.ExpressIf(w, qb, p.inside, p.inside != nil, "(", ")")
}
