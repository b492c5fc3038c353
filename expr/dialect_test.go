package expr

import (
	"strconv"

	"github.com/stephenafamo/sqlprep"
	"github.com/stephenafamo/sqlprep/token"
)

// a numbered ?N dialect with single quoted strings
type dialect struct{}

func (d dialect) Placeholder() (string, bool) {
	return "?", true
}

func (d dialect) Syntax() token.Syntax {
	return token.Syntax{Quotes: `'"`}
}

func (d dialect) ValueToString(v sqlprep.Value) string {
	switch v.Kind() {
	case sqlprep.KindNull:
		return "NULL"
	case sqlprep.KindInt:
		return strconv.FormatInt(v.AsInt(), 10)
	default:
		return "'" + v.AsString() + "'"
	}
}
