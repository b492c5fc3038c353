package dialect

import (
	"strconv"
	"time"

	"github.com/stephenafamo/sqlprep"
	"github.com/stephenafamo/sqlprep/internal/literal"
	"github.com/stephenafamo/sqlprep/token"
)

//nolint:gochecknoglobals
var (
	Dialect dialect

	syntax = token.Syntax{
		Quotes:             "'\"`",
		Backslash:          token.EscapeAlways,
		LineComments:       []string{"--", "#"},
		SpacedDashComments: true,
		BlockComments:      true,
	}
)

type dialect struct{}

func (d dialect) Placeholder() (string, bool) {
	return "?", false
}

func (d dialect) Syntax() token.Syntax {
	return syntax
}

func (d dialect) QuoteIdentifier(s string) string {
	return literal.QuoteIdent(s, "`")
}

// Strings are written with backslash escapes, which assumes the server does
// not run with NO_BACKSLASH_ESCAPES.
func (d dialect) ValueToString(v sqlprep.Value) string {
	switch v.Kind() {
	case sqlprep.KindBool:
		return literal.Bool(v.AsBool())
	case sqlprep.KindInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case sqlprep.KindUint:
		return strconv.FormatUint(v.AsUint(), 10)
	case sqlprep.KindFloat:
		// MySQL has no NaN or infinity
		if _, ok := literal.NonFinite(v.AsFloat()); ok {
			return literal.Null
		}
		return literal.Float(v.AsFloat(), v.Bits())
	case sqlprep.KindString:
		return "'" + literal.MySQLEscape(v.AsString()) + "'"
	case sqlprep.KindBytes:
		return "x'" + literal.Hex(v.AsBytes()) + "'"
	case sqlprep.KindDate:
		return "'" + v.AsTime().Format(literal.DateLayout) + "'"
	case sqlprep.KindTime:
		return "'" + v.AsTime().Format(literal.TimeLayout) + "'"
	case sqlprep.KindDateTime:
		return "'" + v.AsTime().Format(literal.DateTimeLayout) + "'"
	case sqlprep.KindDateTimeTZ:
		return "'" + v.AsTime().In(time.UTC).Format(literal.DateTimeLayout) + "'"
	case sqlprep.KindUUID:
		return "'" + v.AsUUID().String() + "'"
	case sqlprep.KindJSON:
		return "'" + literal.MySQLEscape(string(v.AsJSON())) + "'"
	default:
		return literal.Null
	}
}
